package feed

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
	// AddToWatchHistoryFunc mocks the AddToWatchHistory method.
	AddToWatchHistoryFunc func(ctx context.Context, userID uuid.UUID, videoID uuid.UUID) error

	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Video, error)

	// GetByIDsFunc mocks the GetByIDs method.
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Video, error)

	// IncrementViewsFunc mocks the IncrementViews method.
	IncrementViewsFunc func(ctx context.Context, id uuid.UUID) error

	// ScanFunc mocks the Scan method.
	ScanFunc func(ctx context.Context, f domain.VideoFilter) ([]domain.Video, int64, error)

	// WatchedIDsFunc mocks the WatchedIDs method.
	WatchedIDsFunc func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]uuid.UUID, int64, error)

	// calls tracks calls to the methods.
	calls struct {
		// AddToWatchHistory holds details about calls to the AddToWatchHistory method.
		AddToWatchHistory []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			VideoID uuid.UUID
		}
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		// GetByIDs holds details about calls to the GetByIDs method.
		GetByIDs []struct {
			Ctx context.Context
			Ids []uuid.UUID
		}
		// IncrementViews holds details about calls to the IncrementViews method.
		IncrementViews []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		// Scan holds details about calls to the Scan method.
		Scan []struct {
			Ctx context.Context
			F   domain.VideoFilter
		}
		// WatchedIDs holds details about calls to the WatchedIDs method.
		WatchedIDs []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockAddToWatchHistory sync.RWMutex
	lockGetByID sync.RWMutex
	lockGetByIDs sync.RWMutex
	lockIncrementViews sync.RWMutex
	lockScan sync.RWMutex
	lockWatchedIDs sync.RWMutex
}

// AddToWatchHistory calls AddToWatchHistoryFunc.
func (mock *videoRepoMock) AddToWatchHistory(ctx context.Context, userID uuid.UUID, videoID uuid.UUID) error {
	if mock.AddToWatchHistoryFunc == nil {
		panic("videoRepoMock.AddToWatchHistoryFunc: method is nil but videoRepo.AddToWatchHistory was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VideoID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		VideoID: videoID,
	}
	mock.lockAddToWatchHistory.Lock()
	mock.calls.AddToWatchHistory = append(mock.calls.AddToWatchHistory, callInfo)
	mock.lockAddToWatchHistory.Unlock()
	return mock.AddToWatchHistoryFunc(ctx, userID, videoID)
}

// AddToWatchHistoryCalls gets all the calls that were made to AddToWatchHistory.
// Check the length with:
//
//	len(mockedVideoRepo.AddToWatchHistoryCalls())
func (mock *videoRepoMock) AddToWatchHistoryCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	VideoID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VideoID uuid.UUID
	}
	mock.lockAddToWatchHistory.RLock()
	calls = mock.calls.AddToWatchHistory
	mock.lockAddToWatchHistory.RUnlock()
	return calls
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

// GetByIDs calls GetByIDsFunc.
func (mock *videoRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Video, error) {
	if mock.GetByIDsFunc == nil {
		panic("videoRepoMock.GetByIDsFunc: method is nil but videoRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ids []uuid.UUID
	}{
		Ctx: ctx,
		Ids: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

// GetByIDsCalls gets all the calls that were made to GetByIDs.
// Check the length with:
//
//	len(mockedVideoRepo.GetByIDsCalls())
func (mock *videoRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	Ids []uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Ids []uuid.UUID
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

// IncrementViews calls IncrementViewsFunc.
func (mock *videoRepoMock) IncrementViews(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementViewsFunc == nil {
		panic("videoRepoMock.IncrementViewsFunc: method is nil but videoRepo.IncrementViews was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockIncrementViews.Lock()
	mock.calls.IncrementViews = append(mock.calls.IncrementViews, callInfo)
	mock.lockIncrementViews.Unlock()
	return mock.IncrementViewsFunc(ctx, id)
}

// IncrementViewsCalls gets all the calls that were made to IncrementViews.
// Check the length with:
//
//	len(mockedVideoRepo.IncrementViewsCalls())
func (mock *videoRepoMock) IncrementViewsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockIncrementViews.RLock()
	calls = mock.calls.IncrementViews
	mock.lockIncrementViews.RUnlock()
	return calls
}

// Scan calls ScanFunc.
func (mock *videoRepoMock) Scan(ctx context.Context, f domain.VideoFilter) ([]domain.Video, int64, error) {
	if mock.ScanFunc == nil {
		panic("videoRepoMock.ScanFunc: method is nil but videoRepo.Scan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.VideoFilter
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
//	len(mockedVideoRepo.ScanCalls())
func (mock *videoRepoMock) ScanCalls() []struct {
	Ctx context.Context
	F   domain.VideoFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.VideoFilter
	}
	mock.lockScan.RLock()
	calls = mock.calls.Scan
	mock.lockScan.RUnlock()
	return calls
}

// WatchedIDs calls WatchedIDsFunc.
func (mock *videoRepoMock) WatchedIDs(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]uuid.UUID, int64, error) {
	if mock.WatchedIDsFunc == nil {
		panic("videoRepoMock.WatchedIDsFunc: method is nil but videoRepo.WatchedIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockWatchedIDs.Lock()
	mock.calls.WatchedIDs = append(mock.calls.WatchedIDs, callInfo)
	mock.lockWatchedIDs.Unlock()
	return mock.WatchedIDsFunc(ctx, userID, limit, offset)
}

// WatchedIDsCalls gets all the calls that were made to WatchedIDs.
// Check the length with:
//
//	len(mockedVideoRepo.WatchedIDsCalls())
func (mock *videoRepoMock) WatchedIDsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockWatchedIDs.RLock()
	calls = mock.calls.WatchedIDs
	mock.lockWatchedIDs.RUnlock()
	return calls
}
