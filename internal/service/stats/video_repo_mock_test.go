package stats

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
	// ViewsByOwnerFunc mocks the ViewsByOwner method.
	ViewsByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.VideoViews, error)

	// calls tracks calls to the methods.
	calls struct {
		// ViewsByOwner holds details about calls to the ViewsByOwner method.
		ViewsByOwner []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
	}
	lockViewsByOwner sync.RWMutex
}

// ViewsByOwner calls ViewsByOwnerFunc.
func (mock *videoRepoMock) ViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.VideoViews, error) {
	if mock.ViewsByOwnerFunc == nil {
		panic("videoRepoMock.ViewsByOwnerFunc: method is nil but videoRepo.ViewsByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockViewsByOwner.Lock()
	mock.calls.ViewsByOwner = append(mock.calls.ViewsByOwner, callInfo)
	mock.lockViewsByOwner.Unlock()
	return mock.ViewsByOwnerFunc(ctx, ownerID)
}

// ViewsByOwnerCalls gets all the calls that were made to ViewsByOwner.
// Check the length with:
//
//	len(mockedVideoRepo.ViewsByOwnerCalls())
func (mock *videoRepoMock) ViewsByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockViewsByOwner.RLock()
	calls = mock.calls.ViewsByOwner
	mock.lockViewsByOwner.RUnlock()
	return calls
}
