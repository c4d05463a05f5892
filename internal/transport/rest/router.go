package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/vidstream-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Health        *HealthHandler
	Videos        *VideoHandler
	Content       *ContentHandler
	Engagement    *EngagementHandler
	Playlists     *PlaylistHandler
	SearchHistory *SearchHistoryHandler
}

// NewRouter builds the HTTP surface. root wraps every route; api wraps only
// the /api/v1 group.
func NewRouter(h Handlers, root, api []middleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(root...))

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Chain(api...))

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.Videos.List)
			r.Post("/", h.Videos.Publish)
			r.Route("/{videoID}", func(r chi.Router) {
				r.Get("/", h.Videos.Get)
				r.Patch("/", h.Videos.Update)
				r.Delete("/", h.Videos.Delete)
				r.Patch("/publish", h.Videos.TogglePublish)
				r.Get("/comments", h.Content.ListComments)
				r.Post("/comments", h.Content.AddComment)
			})
		})

		r.Patch("/comments/{commentID}", h.Content.UpdateComment)
		r.Delete("/comments/{commentID}", h.Content.DeleteComment)

		r.Route("/tweets", func(r chi.Router) {
			r.Get("/", h.Content.ListTweets)
			r.Post("/", h.Content.CreateTweet)
			r.Patch("/{tweetID}", h.Content.UpdateTweet)
			r.Delete("/{tweetID}", h.Content.DeleteTweet)
		})

		r.Get("/likes/videos", h.Engagement.LikedVideos)
		r.Post("/likes/{kind}/{targetID}", h.Engagement.ToggleLike)
		r.Post("/subscriptions/{channelID}", h.Engagement.ToggleSubscription)
		r.Get("/subscriptions/{channelID}/subscribers", h.Engagement.Subscribers)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/subscriptions", h.Engagement.SubscribedChannels)
			r.Get("/playlists", h.Playlists.UserPlaylists)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Post("/", h.Playlists.Create)
			r.Route("/{playlistID}", func(r chi.Router) {
				r.Get("/", h.Playlists.Detail)
				r.Patch("/", h.Playlists.Update)
				r.Delete("/", h.Playlists.Delete)
				r.Put("/videos/{videoID}", h.Playlists.AddVideo)
				r.Delete("/videos/{videoID}", h.Playlists.RemoveVideo)
			})
		})

		r.Get("/dashboard/stats", h.Playlists.ChannelStats)
		r.Get("/dashboard/videos", h.Videos.Dashboard)
		r.Get("/history", h.Videos.History)

		r.Route("/search-history", func(r chi.Router) {
			r.Get("/", h.SearchHistory.List)
			r.Post("/", h.SearchHistory.Record)
			r.Delete("/", h.SearchHistory.Clear)
			r.Delete("/{entryID}", h.SearchHistory.Delete)
		})
	})

	return r
}
