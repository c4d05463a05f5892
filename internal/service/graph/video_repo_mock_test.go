package graph

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that videoRepoMock does implement videoRepo.
// If this is not the case, regenerate this file with moq.
var _ videoRepo = &videoRepoMock{}

type videoRepoMock struct {
	// LatestPublishedByOwnersFunc mocks the LatestPublishedByOwners method.
	LatestPublishedByOwnersFunc func(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.Video, error)

	// calls tracks calls to the methods.
	calls struct {
		// LatestPublishedByOwners holds details about calls to the LatestPublishedByOwners method.
		LatestPublishedByOwners []struct {
			Ctx      context.Context
			OwnerIDs []uuid.UUID
		}
	}
	lockLatestPublishedByOwners sync.RWMutex
}

// LatestPublishedByOwners calls LatestPublishedByOwnersFunc.
func (mock *videoRepoMock) LatestPublishedByOwners(ctx context.Context, ownerIDs []uuid.UUID) (map[uuid.UUID]domain.Video, error) {
	if mock.LatestPublishedByOwnersFunc == nil {
		panic("videoRepoMock.LatestPublishedByOwnersFunc: method is nil but videoRepo.LatestPublishedByOwners was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OwnerIDs []uuid.UUID
	}{
		Ctx:      ctx,
		OwnerIDs: ownerIDs,
	}
	mock.lockLatestPublishedByOwners.Lock()
	mock.calls.LatestPublishedByOwners = append(mock.calls.LatestPublishedByOwners, callInfo)
	mock.lockLatestPublishedByOwners.Unlock()
	return mock.LatestPublishedByOwnersFunc(ctx, ownerIDs)
}

// LatestPublishedByOwnersCalls gets all the calls that were made to LatestPublishedByOwners.
// Check the length with:
//
//	len(mockedVideoRepo.LatestPublishedByOwnersCalls())
func (mock *videoRepoMock) LatestPublishedByOwnersCalls() []struct {
	Ctx      context.Context
	OwnerIDs []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		OwnerIDs []uuid.UUID
	}
	mock.lockLatestPublishedByOwners.RLock()
	calls = mock.calls.LatestPublishedByOwners
	mock.lockLatestPublishedByOwners.RUnlock()
	return calls
}
