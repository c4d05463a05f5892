package stats

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that playlistRepoMock does implement playlistRepo.
// If this is not the case, regenerate this file with moq.
var _ playlistRepo = &playlistRepoMock{}

type playlistRepoMock struct {
	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Playlist, error)

	// ListByOwnerFunc mocks the ListByOwner method.
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID, includePrivate bool) ([]domain.Playlist, error)

	// PublishedVideosFunc mocks the PublishedVideos method.
	PublishedVideosFunc func(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error)

	// TotalsByPlaylistsFunc mocks the TotalsByPlaylists method.
	TotalsByPlaylistsFunc func(ctx context.Context, playlistIDs []uuid.UUID) (map[uuid.UUID]domain.PlaylistTotals, error)

	// calls tracks calls to the methods.
	calls struct {
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		// ListByOwner holds details about calls to the ListByOwner method.
		ListByOwner []struct {
			Ctx            context.Context
			OwnerID        uuid.UUID
			IncludePrivate bool
		}
		// PublishedVideos holds details about calls to the PublishedVideos method.
		PublishedVideos []struct {
			Ctx        context.Context
			PlaylistID uuid.UUID
		}
		// TotalsByPlaylists holds details about calls to the TotalsByPlaylists method.
		TotalsByPlaylists []struct {
			Ctx         context.Context
			PlaylistIDs []uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockListByOwner sync.RWMutex
	lockPublishedVideos sync.RWMutex
	lockTotalsByPlaylists sync.RWMutex
}

// GetByID calls GetByIDFunc.
func (mock *playlistRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Playlist, error) {
	if mock.GetByIDFunc == nil {
		panic("playlistRepoMock.GetByIDFunc: method is nil but playlistRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
// Check the length with:
//
//	len(mockedPlaylistRepo.GetByIDCalls())
func (mock *playlistRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// ListByOwner calls ListByOwnerFunc.
func (mock *playlistRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID, includePrivate bool) ([]domain.Playlist, error) {
	if mock.ListByOwnerFunc == nil {
		panic("playlistRepoMock.ListByOwnerFunc: method is nil but playlistRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		OwnerID        uuid.UUID
		IncludePrivate bool
	}{
		Ctx:            ctx,
		OwnerID:        ownerID,
		IncludePrivate: includePrivate,
	}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, includePrivate)
}

// ListByOwnerCalls gets all the calls that were made to ListByOwner.
// Check the length with:
//
//	len(mockedPlaylistRepo.ListByOwnerCalls())
func (mock *playlistRepoMock) ListByOwnerCalls() []struct {
	Ctx            context.Context
	OwnerID        uuid.UUID
	IncludePrivate bool
} {
	var calls []struct {
		Ctx            context.Context
		OwnerID        uuid.UUID
		IncludePrivate bool
	}
	mock.lockListByOwner.RLock()
	calls = mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

// PublishedVideos calls PublishedVideosFunc.
func (mock *playlistRepoMock) PublishedVideos(ctx context.Context, playlistID uuid.UUID) ([]domain.Video, error) {
	if mock.PublishedVideosFunc == nil {
		panic("playlistRepoMock.PublishedVideosFunc: method is nil but playlistRepo.PublishedVideos was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		PlaylistID uuid.UUID
	}{
		Ctx:        ctx,
		PlaylistID: playlistID,
	}
	mock.lockPublishedVideos.Lock()
	mock.calls.PublishedVideos = append(mock.calls.PublishedVideos, callInfo)
	mock.lockPublishedVideos.Unlock()
	return mock.PublishedVideosFunc(ctx, playlistID)
}

// PublishedVideosCalls gets all the calls that were made to PublishedVideos.
// Check the length with:
//
//	len(mockedPlaylistRepo.PublishedVideosCalls())
func (mock *playlistRepoMock) PublishedVideosCalls() []struct {
	Ctx        context.Context
	PlaylistID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		PlaylistID uuid.UUID
	}
	mock.lockPublishedVideos.RLock()
	calls = mock.calls.PublishedVideos
	mock.lockPublishedVideos.RUnlock()
	return calls
}

// TotalsByPlaylists calls TotalsByPlaylistsFunc.
func (mock *playlistRepoMock) TotalsByPlaylists(ctx context.Context, playlistIDs []uuid.UUID) (map[uuid.UUID]domain.PlaylistTotals, error) {
	if mock.TotalsByPlaylistsFunc == nil {
		panic("playlistRepoMock.TotalsByPlaylistsFunc: method is nil but playlistRepo.TotalsByPlaylists was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		PlaylistIDs []uuid.UUID
	}{
		Ctx:         ctx,
		PlaylistIDs: playlistIDs,
	}
	mock.lockTotalsByPlaylists.Lock()
	mock.calls.TotalsByPlaylists = append(mock.calls.TotalsByPlaylists, callInfo)
	mock.lockTotalsByPlaylists.Unlock()
	return mock.TotalsByPlaylistsFunc(ctx, playlistIDs)
}

// TotalsByPlaylistsCalls gets all the calls that were made to TotalsByPlaylists.
// Check the length with:
//
//	len(mockedPlaylistRepo.TotalsByPlaylistsCalls())
func (mock *playlistRepoMock) TotalsByPlaylistsCalls() []struct {
	Ctx         context.Context
	PlaylistIDs []uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		PlaylistIDs []uuid.UUID
	}
	mock.lockTotalsByPlaylists.RLock()
	calls = mock.calls.TotalsByPlaylists
	mock.lockTotalsByPlaylists.RUnlock()
	return calls
}
