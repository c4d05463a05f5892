package feed

import (
	"context"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that commentRepoMock does implement commentRepo.
// If this is not the case, regenerate this file with moq.
var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	// ScanFunc mocks the Scan method.
	ScanFunc func(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, int64, error)

	// calls tracks calls to the methods.
	calls struct {
		// Scan holds details about calls to the Scan method.
		Scan []struct {
			Ctx context.Context
			F   domain.CommentFilter
		}
	}
	lockScan sync.RWMutex
}

// Scan calls ScanFunc.
func (mock *commentRepoMock) Scan(ctx context.Context, f domain.CommentFilter) ([]domain.Comment, int64, error) {
	if mock.ScanFunc == nil {
		panic("commentRepoMock.ScanFunc: method is nil but commentRepo.Scan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.CommentFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockScan.Lock()
	mock.calls.Scan = append(mock.calls.Scan, callInfo)
	mock.lockScan.Unlock()
	return mock.ScanFunc(ctx, f)
}

// ScanCalls gets all the calls that were made to Scan.
// Check the length with:
//
//	len(mockedCommentRepo.ScanCalls())
func (mock *commentRepoMock) ScanCalls() []struct {
	Ctx context.Context
	F   domain.CommentFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.CommentFilter
	}
	mock.lockScan.RLock()
	calls = mock.calls.Scan
	mock.lockScan.RUnlock()
	return calls
}
