package service

import (
	"context"
	"testing"
	"time"

	"clickgate/internal/mocks"
	"clickgate/internal/model"
	"clickgate/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClickMessage(eventID string, retry bool) *model.ClickMessage {
	return model.NewClickMessage(eventID, "ABCD", "https://news.example.com", model.ClickContext{
		Fingerprint: "fp-1",
		DeviceType:  model.DeviceMobile,
		BrowserName: model.BrowserSafari,
		Country:     "Japan",
		ClickedAt:   time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
	}, retry)
}

func TestClickEventService_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("plain event is logged only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository.NewMemoryRepository()
		svc := NewClickEventService(repo, mocks.NewMockRecorderInterface(ctrl))

		require.NoError(t, svc.Handle(ctx, newClickMessage("evt-1", false)))
		exists, _ := repo.ClickLogExists(ctx, "evt-1")
		assert.True(t, exists)
	})

	t.Run("retry event is recorded with its original time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository.NewMemoryRepository()
		rec := mocks.NewMockRecorderInterface(ctrl)
		msg := newClickMessage("evt-2", true)
		rec.EXPECT().Record(gomock.Any(), "ABCD", msg.ClickContext()).Return(nil)

		svc := NewClickEventService(repo, rec)
		require.NoError(t, svc.Handle(ctx, msg))

		exists, _ := repo.ClickLogExists(ctx, "evt-2")
		assert.True(t, exists)
	})

	t.Run("redelivered retry event is not recorded twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository.NewMemoryRepository()
		rec := mocks.NewMockRecorderInterface(ctrl)
		rec.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(nil).Times(1)

		svc := NewClickEventService(repo, rec)
		msg := newClickMessage("evt-3", true)
		require.NoError(t, svc.Handle(ctx, msg))
		require.NoError(t, svc.Handle(ctx, msg))
	})

	t.Run("failed replay is returned for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository.NewMemoryRepository()
		rec := mocks.NewMockRecorderInterface(ctrl)
		rec.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(assert.AnError)

		svc := NewClickEventService(repo, rec)
		err := svc.Handle(ctx, newClickMessage("evt-4", true))
		assert.ErrorIs(t, err, assert.AnError)

		exists, _ := repo.ClickLogExists(ctx, "evt-4")
		assert.False(t, exists)
	})

	t.Run("replay for a deleted link is dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository.NewMemoryRepository()
		rec := mocks.NewMockRecorderInterface(ctrl)
		rec.EXPECT().Record(gomock.Any(), "ABCD", gomock.Any()).Return(ErrAnalyticsMissing)

		svc := NewClickEventService(repo, rec)
		assert.NoError(t, svc.Handle(ctx, newClickMessage("evt-5", true)))
	})
}

func TestClickEventService_ReplayIntoStore(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.CreateLink(ctx,
		&model.Link{ShortCode: "ABCD", WorkspaceID: "ws-1", DestinationURL: "https://example.com", IsActive: true},
		model.NewAnalytics("ABCD", "ws-1")))

	svc := NewClickEventService(repo, NewRecorder(repo, nil, time.UTC))
	require.NoError(t, svc.Handle(ctx, newClickMessage("evt-9", true)))

	a, err := repo.GetAnalyticsByCode(ctx, "ABCD")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.TotalClicks)
	assert.Equal(t, int64(1), a.HourlyStats[10])
	assert.Equal(t, int64(1), a.LocationStats["Japan"])
}
