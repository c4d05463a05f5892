package video

import (
	"context"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that mediaStoreMock does implement mediaStore.
// If this is not the case, regenerate this file with moq.
var _ mediaStore = &mediaStoreMock{}

type mediaStoreMock struct {
	// StoreFunc mocks the Store method.
	StoreFunc func(ctx context.Context, blob domain.MediaBlob) (domain.StoredMedia, error)

	// RemoveFunc mocks the Remove method.
	RemoveFunc func(ctx context.Context, url string) error

	// calls tracks calls to the methods.
	calls struct {
		// Store holds details about calls to the Store method.
		Store []struct {
			Ctx  context.Context
			Blob domain.MediaBlob
		}
		// Remove holds details about calls to the Remove method.
		Remove []struct {
			Ctx context.Context
			Url string
		}
	}
	lockStore sync.RWMutex
	lockRemove sync.RWMutex
}

// Store calls StoreFunc.
func (mock *mediaStoreMock) Store(ctx context.Context, blob domain.MediaBlob) (domain.StoredMedia, error) {
	if mock.StoreFunc == nil {
		panic("mediaStoreMock.StoreFunc: method is nil but mediaStore.Store was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Blob domain.MediaBlob
	}{
		Ctx:  ctx,
		Blob: blob,
	}
	mock.lockStore.Lock()
	mock.calls.Store = append(mock.calls.Store, callInfo)
	mock.lockStore.Unlock()
	return mock.StoreFunc(ctx, blob)
}

// StoreCalls gets all the calls that were made to Store.
// Check the length with:
//
//	len(mockedMediaStore.StoreCalls())
func (mock *mediaStoreMock) StoreCalls() []struct {
	Ctx  context.Context
	Blob domain.MediaBlob
} {
	var calls []struct {
		Ctx  context.Context
		Blob domain.MediaBlob
	}
	mock.lockStore.RLock()
	calls = mock.calls.Store
	mock.lockStore.RUnlock()
	return calls
}

// Remove calls RemoveFunc.
func (mock *mediaStoreMock) Remove(ctx context.Context, url string) error {
	if mock.RemoveFunc == nil {
		panic("mediaStoreMock.RemoveFunc: method is nil but mediaStore.Remove was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Url string
	}{
		Ctx: ctx,
		Url: url,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, url)
}

// RemoveCalls gets all the calls that were made to Remove.
// Check the length with:
//
//	len(mockedMediaStore.RemoveCalls())
func (mock *mediaStoreMock) RemoveCalls() []struct {
	Ctx context.Context
	Url string
} {
	var calls []struct {
		Ctx context.Context
		Url string
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}
