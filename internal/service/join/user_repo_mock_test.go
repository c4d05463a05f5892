package join

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that userRepoMock does implement userRepo.
// If this is not the case, regenerate this file with moq.
var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	// GetPublicByIDsFunc mocks the GetPublicByIDs method.
	GetPublicByIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Owner, error)

	// calls tracks calls to the methods.
	calls struct {
		// GetPublicByIDs holds details about calls to the GetPublicByIDs method.
		GetPublicByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
	}
	lockGetPublicByIDs sync.RWMutex
}

// GetPublicByIDs calls GetPublicByIDsFunc.
func (mock *userRepoMock) GetPublicByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Owner, error) {
	if mock.GetPublicByIDsFunc == nil {
		panic("userRepoMock.GetPublicByIDsFunc: method is nil but userRepo.GetPublicByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetPublicByIDs.Lock()
	mock.calls.GetPublicByIDs = append(mock.calls.GetPublicByIDs, callInfo)
	mock.lockGetPublicByIDs.Unlock()
	return mock.GetPublicByIDsFunc(ctx, ids)
}

// GetPublicByIDsCalls gets all the calls that were made to GetPublicByIDs.
// Check the length with:
//
//	len(mockedUserRepo.GetPublicByIDsCalls())
func (mock *userRepoMock) GetPublicByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockGetPublicByIDs.RLock()
	calls = mock.calls.GetPublicByIDs
	mock.lockGetPublicByIDs.RUnlock()
	return calls
}
