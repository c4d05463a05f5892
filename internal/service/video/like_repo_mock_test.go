package video

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that likeRepoMock does implement likeRepo.
// If this is not the case, regenerate this file with moq.
var _ likeRepo = &likeRepoMock{}

type likeRepoMock struct {
	// DeleteByTargetsFunc mocks the DeleteByTargets method.
	DeleteByTargetsFunc func(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (int64, error)

	// calls tracks calls to the methods.
	calls struct {
		// DeleteByTargets holds details about calls to the DeleteByTargets method.
		DeleteByTargets []struct {
			Ctx       context.Context
			Kind      domain.LikeTarget
			TargetIDs []uuid.UUID
		}
	}
	lockDeleteByTargets sync.RWMutex
}

// DeleteByTargets calls DeleteByTargetsFunc.
func (mock *likeRepoMock) DeleteByTargets(ctx context.Context, kind domain.LikeTarget, targetIDs []uuid.UUID) (int64, error) {
	if mock.DeleteByTargetsFunc == nil {
		panic("likeRepoMock.DeleteByTargetsFunc: method is nil but likeRepo.DeleteByTargets was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Kind      domain.LikeTarget
		TargetIDs []uuid.UUID
	}{
		Ctx:       ctx,
		Kind:      kind,
		TargetIDs: targetIDs,
	}
	mock.lockDeleteByTargets.Lock()
	mock.calls.DeleteByTargets = append(mock.calls.DeleteByTargets, callInfo)
	mock.lockDeleteByTargets.Unlock()
	return mock.DeleteByTargetsFunc(ctx, kind, targetIDs)
}

// DeleteByTargetsCalls gets all the calls that were made to DeleteByTargets.
// Check the length with:
//
//	len(mockedLikeRepo.DeleteByTargetsCalls())
func (mock *likeRepoMock) DeleteByTargetsCalls() []struct {
	Ctx       context.Context
	Kind      domain.LikeTarget
	TargetIDs []uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		Kind      domain.LikeTarget
		TargetIDs []uuid.UUID
	}
	mock.lockDeleteByTargets.RLock()
	calls = mock.calls.DeleteByTargets
	mock.lockDeleteByTargets.RUnlock()
	return calls
}
