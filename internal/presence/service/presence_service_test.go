package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gochat/internal/common"
	"gochat/internal/events"
	"gochat/internal/presence/service/mocks"
)

type testDeps struct {
	store     *mocks.MockPresenceRepository
	members   *mocks.MockMembershipRepository
	publisher *mocks.MockPublisher
	service   PresenceService
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		store:     mocks.NewMockPresenceRepository(ctrl),
		members:   mocks.NewMockMembershipRepository(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	d.service = NewPresenceService(d.store, d.members, d.publisher, time.Minute, discardLogger())
	return d
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPresenceService_SetOnline(t *testing.T) {
	tests := []struct {
		name        string
		userID      int64
		ttl         time.Duration
		mockSetup   func(d *testDeps)
		expectError bool
		errorMsg    string
	}{
		{
			name:   "publishes online to chat partners",
			userID: 1,
			ttl:    30 * time.Second,
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().SetOnline(gomock.Any(), int64(1), 30*time.Second).Return(nil)
				d.members.EXPECT().Relations(gomock.Any(), int64(1)).Return([]int64{2, 3}, nil)
				d.publisher.EXPECT().
					Publish(gomock.Any(), "1", events.UserStatusChanged{UserID: 1, Status: "online", Recipients: []int64{2, 3}}).
					Return(nil)
			},
		},
		{
			name:   "zero ttl falls back to default",
			userID: 1,
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().SetOnline(gomock.Any(), int64(1), time.Minute).Return(nil)
				d.members.EXPECT().Relations(gomock.Any(), int64(1)).Return([]int64{2}, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), "1", gomock.Any()).Return(nil)
			},
		},
		{
			name:   "store unavailable is not fatal and publishes nothing",
			userID: 1,
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().SetOnline(gomock.Any(), int64(1), time.Minute).Return(errors.New("connection refused"))
			},
		},
		{
			name:   "no chat partners publishes nothing",
			userID: 5,
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().SetOnline(gomock.Any(), int64(5), time.Minute).Return(nil)
				d.members.EXPECT().Relations(gomock.Any(), int64(5)).Return(nil, nil)
			},
		},
		{
			name:   "relations failure publishes nothing",
			userID: 1,
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().SetOnline(gomock.Any(), int64(1), time.Minute).Return(nil)
				d.members.EXPECT().Relations(gomock.Any(), int64(1)).Return(nil, errors.New("pg down"))
			},
		},
		{
			name:   "publish failure is swallowed",
			userID: 1,
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().SetOnline(gomock.Any(), int64(1), time.Minute).Return(nil)
				d.members.EXPECT().Relations(gomock.Any(), int64(1)).Return([]int64{2}, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), "1", gomock.Any()).Return(errors.New("nats: connection closed"))
			},
		},
		{
			name:        "invalid user id",
			userID:      0,
			mockSetup:   func(d *testDeps) {},
			expectError: true,
			errorMsg:    "user_id must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			tt.mockSetup(d)

			err := d.service.SetOnline(context.Background(), tt.userID, tt.ttl)
			if tt.expectError {
				require.Error(t, err)
				assert.True(t, common.IsValidation(err))
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPresenceService_RefreshOnline(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(d *testDeps)
	}{
		{
			name: "live key is only extended",
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().Refresh(gomock.Any(), int64(1), time.Minute).Return(true, nil)
			},
		},
		{
			name: "expired key goes through full online path",
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().Refresh(gomock.Any(), int64(1), time.Minute).Return(false, nil)
				d.store.EXPECT().SetOnline(gomock.Any(), int64(1), time.Minute).Return(nil)
				d.members.EXPECT().Relations(gomock.Any(), int64(1)).Return([]int64{2}, nil)
				d.publisher.EXPECT().
					Publish(gomock.Any(), "1", events.UserStatusChanged{UserID: 1, Status: "online", Recipients: []int64{2}}).
					Return(nil)
			},
		},
		{
			name: "store error is not fatal",
			mockSetup: func(d *testDeps) {
				d.store.EXPECT().Refresh(gomock.Any(), int64(1), time.Minute).Return(false, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			tt.mockSetup(d)
			assert.NoError(t, d.service.RefreshOnline(context.Background(), 1, 0))
		})
	}
}

func TestPresenceService_SetOffline(t *testing.T) {
	d := newTestDeps(t)
	gomock.InOrder(
		d.store.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
		d.members.EXPECT().Relations(gomock.Any(), int64(1)).Return([]int64{2, 3}, nil),
		d.publisher.EXPECT().
			Publish(gomock.Any(), "1", events.UserStatusChanged{UserID: 1, Status: "offline", Recipients: []int64{2, 3}}).
			Return(nil),
	)

	require.NoError(t, d.service.SetOffline(context.Background(), 1))
}

func TestPresenceService_SetOfflineStoreDown(t *testing.T) {
	d := newTestDeps(t)
	d.store.EXPECT().Delete(gomock.Any(), int64(1)).Return(errors.New("connection refused"))

	assert.NoError(t, d.service.SetOffline(context.Background(), 1))
}

func TestPresenceService_GetStatus(t *testing.T) {
	d := newTestDeps(t)
	d.store.EXPECT().IsOnline(gomock.Any(), int64(1)).Return(true, nil)
	d.store.EXPECT().IsOnline(gomock.Any(), int64(2)).Return(false, nil)
	d.store.EXPECT().IsOnline(gomock.Any(), int64(3)).Return(false, errors.New("timeout"))

	status, err := d.service.GetStatus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOnline, status)

	status, err = d.service.GetStatus(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, common.StatusOffline, status)

	_, err = d.service.GetStatus(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, common.KindInternal, common.KindOf(err))
}

func TestPresenceService_GetStatuses(t *testing.T) {
	d := newTestDeps(t)
	d.store.EXPECT().
		OnlineMany(gomock.Any(), []int64{1, 2, 3}).
		Return(map[int64]bool{1: true, 2: false}, nil)

	statuses, err := d.service.GetStatuses(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]common.PresenceStatus{
		1: common.StatusOnline,
		2: common.StatusOffline,
		3: common.StatusOffline,
	}, statuses)

	_, err = d.service.GetStatuses(context.Background(), []int64{1, -1})
	assert.True(t, common.IsValidation(err))
}
