package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Comment inputs
// ---------------------------------------------------------------------------

// AddCommentInput holds the parameters for commenting on a video.
type AddCommentInput struct {
	VideoID uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.VideoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "videoId", Message: "required"})
	}
	errs = appendContentErrors(errs, i.Content, MaxCommentLength)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCommentInput holds the parameters for editing a comment.
type UpdateCommentInput struct {
	CommentID uuid.UUID
	Content   string
}

// Validate checks all fields and collects all errors.
func (i UpdateCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "commentId", Message: "required"})
	}
	errs = appendContentErrors(errs, i.Content, MaxCommentLength)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tweet inputs
// ---------------------------------------------------------------------------

// CreateTweetInput holds the parameters for posting a tweet.
type CreateTweetInput struct {
	Content string
}

// Validate checks all fields and collects all errors.
func (i CreateTweetInput) Validate() error {
	if errs := appendContentErrors(nil, i.Content, MaxTweetLength); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTweetInput holds the parameters for editing a tweet.
type UpdateTweetInput struct {
	TweetID uuid.UUID
	Content string
}

// Validate checks all fields and collects all errors.
func (i UpdateTweetInput) Validate() error {
	var errs []domain.FieldError

	if i.TweetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "tweetId", Message: "required"})
	}
	errs = appendContentErrors(errs, i.Content, MaxTweetLength)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendContentErrors(errs []domain.FieldError, content string, maxLen int) []domain.FieldError {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("too long (max %d)", maxLen)})
	}
	return errs
}
