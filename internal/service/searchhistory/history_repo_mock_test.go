package searchhistory

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that historyRepoMock does implement historyRepo.
// If this is not the case, regenerate this file with moq.
var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	// CreateFunc mocks the Create method.
	CreateFunc func(ctx context.Context, ownerID uuid.UUID, query string) (*domain.SearchHistoryEntry, error)

	// DeleteFunc mocks the Delete method.
	DeleteFunc func(ctx context.Context, id uuid.UUID) error

	// DeleteAllFunc mocks the DeleteAll method.
	DeleteAllFunc func(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// GetByIDFunc mocks the GetByID method.
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.SearchHistoryEntry, error)

	// ListFunc mocks the List method.
	ListFunc func(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]domain.SearchHistoryEntry, int64, error)

	// calls tracks calls to the methods.
	calls struct {
		// Create holds details about calls to the Create method.
		Create []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Query   string
		}
		// Delete holds details about calls to the Delete method.
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		// DeleteAll holds details about calls to the DeleteAll method.
		DeleteAll []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
		}
		// GetByID holds details about calls to the GetByID method.
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		// List holds details about calls to the List method.
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
			Offset  int
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockDeleteAll sync.RWMutex
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
}

// Create calls CreateFunc.
func (mock *historyRepoMock) Create(ctx context.Context, ownerID uuid.UUID, query string) (*domain.SearchHistoryEntry, error) {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Query   string
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Query:   query,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ownerID, query)
}

// CreateCalls gets all the calls that were made to Create.
// Check the length with:
//
//	len(mockedHistoryRepo.CreateCalls())
func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Query   string
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Query   string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

// Delete calls DeleteFunc.
func (mock *historyRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("historyRepoMock.DeleteFunc: method is nil but historyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

// DeleteCalls gets all the calls that were made to Delete.
// Check the length with:
//
//	len(mockedHistoryRepo.DeleteCalls())
func (mock *historyRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// DeleteAll calls DeleteAllFunc.
func (mock *historyRepoMock) DeleteAll(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("historyRepoMock.DeleteAllFunc: method is nil but historyRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, ownerID)
}

// DeleteAllCalls gets all the calls that were made to DeleteAll.
// Check the length with:
//
//	len(mockedHistoryRepo.DeleteAllCalls())
func (mock *historyRepoMock) DeleteAllCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
	}
	mock.lockDeleteAll.RLock()
	calls = mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

// GetByID calls GetByIDFunc.
func (mock *historyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.SearchHistoryEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("historyRepoMock.GetByIDFunc: method is nil but historyRepo.GetByID was just called")
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
//	len(mockedHistoryRepo.GetByIDCalls())
func (mock *historyRepoMock) GetByIDCalls() []struct {
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

// List calls ListFunc.
func (mock *historyRepoMock) List(ctx context.Context, ownerID uuid.UUID, limit int, offset int) ([]domain.SearchHistoryEntry, int64, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
		Offset  int
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, limit, offset)
}

// ListCalls gets all the calls that were made to List.
// Check the length with:
//
//	len(mockedHistoryRepo.ListCalls())
func (mock *historyRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
	Offset  int
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
		Offset  int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
