package video

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

// Ensure, that commentRepoMock does implement commentRepo.
// If this is not the case, regenerate this file with moq.
var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	// IDsByVideoFunc mocks the IDsByVideo method.
	IDsByVideoFunc func(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error)

	// calls tracks calls to the methods.
	calls struct {
		// IDsByVideo holds details about calls to the IDsByVideo method.
		IDsByVideo []struct {
			Ctx     context.Context
			VideoID uuid.UUID
		}
	}
	lockIDsByVideo sync.RWMutex
}

// IDsByVideo calls IDsByVideoFunc.
func (mock *commentRepoMock) IDsByVideo(ctx context.Context, videoID uuid.UUID) ([]uuid.UUID, error) {
	if mock.IDsByVideoFunc == nil {
		panic("commentRepoMock.IDsByVideoFunc: method is nil but commentRepo.IDsByVideo was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VideoID uuid.UUID
	}{
		Ctx:     ctx,
		VideoID: videoID,
	}
	mock.lockIDsByVideo.Lock()
	mock.calls.IDsByVideo = append(mock.calls.IDsByVideo, callInfo)
	mock.lockIDsByVideo.Unlock()
	return mock.IDsByVideoFunc(ctx, videoID)
}

// IDsByVideoCalls gets all the calls that were made to IDsByVideo.
// Check the length with:
//
//	len(mockedCommentRepo.IDsByVideoCalls())
func (mock *commentRepoMock) IDsByVideoCalls() []struct {
	Ctx     context.Context
	VideoID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		VideoID uuid.UUID
	}
	mock.lockIDsByVideo.RLock()
	calls = mock.calls.IDsByVideo
	mock.lockIDsByVideo.RUnlock()
	return calls
}
