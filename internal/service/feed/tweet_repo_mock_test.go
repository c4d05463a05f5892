package feed

import (
	"context"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that tweetRepoMock does implement tweetRepo.
// If this is not the case, regenerate this file with moq.
var _ tweetRepo = &tweetRepoMock{}

type tweetRepoMock struct {
	// ScanFunc mocks the Scan method.
	ScanFunc func(ctx context.Context, f domain.TweetFilter) ([]domain.Tweet, int64, error)

	// calls tracks calls to the methods.
	calls struct {
		// Scan holds details about calls to the Scan method.
		Scan []struct {
			Ctx context.Context
			F   domain.TweetFilter
		}
	}
	lockScan sync.RWMutex
}

// Scan calls ScanFunc.
func (mock *tweetRepoMock) Scan(ctx context.Context, f domain.TweetFilter) ([]domain.Tweet, int64, error) {
	if mock.ScanFunc == nil {
		panic("tweetRepoMock.ScanFunc: method is nil but tweetRepo.Scan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TweetFilter
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
//	len(mockedTweetRepo.ScanCalls())
func (mock *tweetRepoMock) ScanCalls() []struct {
	Ctx context.Context
	F   domain.TweetFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.TweetFilter
	}
	mock.lockScan.RLock()
	calls = mock.calls.Scan
	mock.lockScan.RUnlock()
	return calls
}
