package join

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

// Ensure, that subscriptionRepoMock does implement subscriptionRepo.
// If this is not the case, regenerate this file with moq.
var _ subscriptionRepo = &subscriptionRepoMock{}

type subscriptionRepoMock struct {
	// CountByChannelsFunc mocks the CountByChannels method.
	CountByChannelsFunc func(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// SubscribedChannelsFunc mocks the SubscribedChannels method.
	SubscribedChannelsFunc func(ctx context.Context, subscriberID uuid.UUID, channelIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	// calls tracks calls to the methods.
	calls struct {
		// CountByChannels holds details about calls to the CountByChannels method.
		CountByChannels []struct {
			Ctx        context.Context
			ChannelIDs []uuid.UUID
		}
		// SubscribedChannels holds details about calls to the SubscribedChannels method.
		SubscribedChannels []struct {
			Ctx          context.Context
			SubscriberID uuid.UUID
			ChannelIDs   []uuid.UUID
		}
	}
	lockCountByChannels sync.RWMutex
	lockSubscribedChannels sync.RWMutex
}

// CountByChannels calls CountByChannelsFunc.
func (mock *subscriptionRepoMock) CountByChannels(ctx context.Context, channelIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if mock.CountByChannelsFunc == nil {
		panic("subscriptionRepoMock.CountByChannelsFunc: method is nil but subscriptionRepo.CountByChannels was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ChannelIDs []uuid.UUID
	}{
		Ctx:        ctx,
		ChannelIDs: channelIDs,
	}
	mock.lockCountByChannels.Lock()
	mock.calls.CountByChannels = append(mock.calls.CountByChannels, callInfo)
	mock.lockCountByChannels.Unlock()
	return mock.CountByChannelsFunc(ctx, channelIDs)
}

// CountByChannelsCalls gets all the calls that were made to CountByChannels.
// Check the length with:
//
//	len(mockedSubscriptionRepo.CountByChannelsCalls())
func (mock *subscriptionRepoMock) CountByChannelsCalls() []struct {
	Ctx        context.Context
	ChannelIDs []uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		ChannelIDs []uuid.UUID
	}
	mock.lockCountByChannels.RLock()
	calls = mock.calls.CountByChannels
	mock.lockCountByChannels.RUnlock()
	return calls
}

// SubscribedChannels calls SubscribedChannelsFunc.
func (mock *subscriptionRepoMock) SubscribedChannels(ctx context.Context, subscriberID uuid.UUID, channelIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if mock.SubscribedChannelsFunc == nil {
		panic("subscriptionRepoMock.SubscribedChannelsFunc: method is nil but subscriptionRepo.SubscribedChannels was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SubscriberID uuid.UUID
		ChannelIDs   []uuid.UUID
	}{
		Ctx:          ctx,
		SubscriberID: subscriberID,
		ChannelIDs:   channelIDs,
	}
	mock.lockSubscribedChannels.Lock()
	mock.calls.SubscribedChannels = append(mock.calls.SubscribedChannels, callInfo)
	mock.lockSubscribedChannels.Unlock()
	return mock.SubscribedChannelsFunc(ctx, subscriberID, channelIDs)
}

// SubscribedChannelsCalls gets all the calls that were made to SubscribedChannels.
// Check the length with:
//
//	len(mockedSubscriptionRepo.SubscribedChannelsCalls())
func (mock *subscriptionRepoMock) SubscribedChannelsCalls() []struct {
	Ctx          context.Context
	SubscriberID uuid.UUID
	ChannelIDs   []uuid.UUID
} {
	var calls []struct {
		Ctx          context.Context
		SubscriberID uuid.UUID
		ChannelIDs   []uuid.UUID
	}
	mock.lockSubscribedChannels.RLock()
	calls = mock.calls.SubscribedChannels
	mock.lockSubscribedChannels.RUnlock()
	return calls
}
