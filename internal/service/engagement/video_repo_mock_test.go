package engagement

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
	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Video, error)

	// calls tracks calls to the methods.
	calls struct {
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

// GetByID calls GetByIDFunc.
func (mock *videoRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	if mock.GetByIDFunc == nil {
		panic("videoRepoMock.GetByIDFunc: method is nil but videoRepo.GetByID was just called")
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
//	len(mockedVideoRepo.GetByIDCalls())
func (mock *videoRepoMock) GetByIDCalls() []struct {
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
