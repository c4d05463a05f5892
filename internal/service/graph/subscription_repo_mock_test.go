package graph

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/vidstream-backend/internal/domain"
	"sync"
)

// Ensure, that subscriptionRepoMock does implement subscriptionRepo.
// If this is not the case, regenerate this file with moq.
var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	// ListChannelsFunc mocks the ListChannels method.
	ListChannelsFunc func(ctx context.Context, subscriberID uuid.UUID, limit int, offset int) ([]domain.SubscriberEdge, int64, error)

	// ListSubscribersFunc mocks the ListSubscribers method.
	ListSubscribersFunc func(ctx context.Context, channelID uuid.UUID, limit int, offset int) ([]domain.SubscriberEdge, int64, error)

	// calls tracks calls to the methods.
	calls struct {
		// ListChannels holds details about calls to the ListChannels method.
		ListChannels []struct {
			Ctx          context.Context
			SubscriberID uuid.UUID
			Limit        int
			Offset       int
		}
		// ListSubscribers holds details about calls to the ListSubscribers method.
		ListSubscribers []struct {
			Ctx       context.Context
			ChannelID uuid.UUID
			Limit     int
			Offset    int
		}
	}
	lockListChannels sync.RWMutex
	lockListSubscribers sync.RWMutex
}

// ListChannels calls ListChannelsFunc.
func (mock *subscriptionRepoMock) ListChannels(ctx context.Context, subscriberID uuid.UUID, limit int, offset int) ([]domain.SubscriberEdge, int64, error) {
	if mock.ListChannelsFunc == nil {
		panic("subscriptionRepoMock.ListChannelsFunc: method is nil but subscriptionRepo.ListChannels was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SubscriberID uuid.UUID
		Limit        int
		Offset       int
	}{
		Ctx:          ctx,
		SubscriberID: subscriberID,
		Limit:        limit,
		Offset:       offset,
	}
	mock.lockListChannels.Lock()
	mock.calls.ListChannels = append(mock.calls.ListChannels, callInfo)
	mock.lockListChannels.Unlock()
	return mock.ListChannelsFunc(ctx, subscriberID, limit, offset)
}

// ListChannelsCalls gets all the calls that were made to ListChannels.
// Check the length with:
//
//	len(mockedSubscriptionRepo.ListChannelsCalls())
func (mock *subscriptionRepoMock) ListChannelsCalls() []struct {
	Ctx          context.Context
	SubscriberID uuid.UUID
	Limit        int
	Offset       int
} {
	var calls []struct {
		Ctx          context.Context
		SubscriberID uuid.UUID
		Limit        int
		Offset       int
	}
	mock.lockListChannels.RLock()
	calls = mock.calls.ListChannels
	mock.lockListChannels.RUnlock()
	return calls
}

// ListSubscribers calls ListSubscribersFunc.
func (mock *subscriptionRepoMock) ListSubscribers(ctx context.Context, channelID uuid.UUID, limit int, offset int) ([]domain.SubscriberEdge, int64, error) {
	if mock.ListSubscribersFunc == nil {
		panic("subscriptionRepoMock.ListSubscribersFunc: method is nil but subscriptionRepo.ListSubscribers was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChannelID uuid.UUID
		Limit     int
		Offset    int
	}{
		Ctx:       ctx,
		ChannelID: channelID,
		Limit:     limit,
		Offset:    offset,
	}
	mock.lockListSubscribers.Lock()
	mock.calls.ListSubscribers = append(mock.calls.ListSubscribers, callInfo)
	mock.lockListSubscribers.Unlock()
	return mock.ListSubscribersFunc(ctx, channelID, limit, offset)
}

// ListSubscribersCalls gets all the calls that were made to ListSubscribers.
// Check the length with:
//
//	len(mockedSubscriptionRepo.ListSubscribersCalls())
func (mock *subscriptionRepoMock) ListSubscribersCalls() []struct {
	Ctx       context.Context
	ChannelID uuid.UUID
	Limit     int
	Offset    int
} {
	var calls []struct {
		Ctx       context.Context
		ChannelID uuid.UUID
		Limit     int
		Offset    int
	}
	mock.lockListSubscribers.RLock()
	calls = mock.calls.ListSubscribers
	mock.lockListSubscribers.RUnlock()
	return calls
}
