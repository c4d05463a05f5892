package graph

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/service/join"
	"sync"
)

// Ensure, that joinResolverMock does implement joinResolver.
// If this is not the case, regenerate this file with moq.
var _ joinResolver = &joinResolverMock{}

type joinResolverMock struct {
	// ResolveFunc mocks the Resolve method.
	ResolveFunc func(ctx context.Context, spec join.Spec, rows []join.Ref) (map[uuid.UUID]join.Resolved, error)

	// calls tracks calls to the methods.
	calls struct {
		// Resolve holds details about calls to the Resolve method.
		Resolve []struct {
			Ctx  context.Context
			Spec join.Spec
			Rows []join.Ref
		}
	}
	lockResolve sync.RWMutex
}

// Resolve calls ResolveFunc.
func (mock *joinResolverMock) Resolve(ctx context.Context, spec join.Spec, rows []join.Ref) (map[uuid.UUID]join.Resolved, error) {
	if mock.ResolveFunc == nil {
		panic("joinResolverMock.ResolveFunc: method is nil but joinResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Spec join.Spec
		Rows []join.Ref
	}{
		Ctx:  ctx,
		Spec: spec,
		Rows: rows,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, spec, rows)
}

// ResolveCalls gets all the calls that were made to Resolve.
// Check the length with:
//
//	len(mockedJoinResolver.ResolveCalls())
func (mock *joinResolverMock) ResolveCalls() []struct {
	Ctx  context.Context
	Spec join.Spec
	Rows []join.Ref
} {
	var calls []struct {
		Ctx  context.Context
		Spec join.Spec
		Rows []join.Ref
	}
	mock.lockResolve.RLock()
	calls = mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
