package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T, confirmDelay time.Duration) (*BookingService, *mocks.MockCatalogRepo, *mocks.MockOrderRepo, *mocks.MockOrderNotifier) {
	t.Helper()

	catalogRepo := mocks.NewMockCatalogRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(catalogRepo, orderRepo, notifier, confirmDelay, 30*time.Minute, log)
	return svc, catalogRepo, orderRepo, notifier
}

func TestBookingService_Select_Activity(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	activity := &domain.Activity{ID: "a1", Title: "亲子自然探索营", Price: 299}
	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(activity, nil)

	snap, err := svc.Select(context.Background(), "s1", domain.OrderTypeActivity, "a1")

	require.NoError(t, err)
	assert.Equal(t, FlowItemSelected, snap.State)
	assert.Equal(t, domain.ScreenActivityDetail, snap.Screen.Name)
	assert.Equal(t, "a1", snap.Screen.ItemID)
	assert.Equal(t, "亲子自然探索营", snap.ItemTitle)
	assert.Equal(t, 299.0, snap.ItemAmount)
}

func TestBookingService_Select_Venue(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	venue := &domain.Venue{ID: "v1", Name: "阳光多功能厅", PricePerHour: 200}
	catalogRepo.EXPECT().GetVenue(mock.Anything, "v1").Return(venue, nil)

	snap, err := svc.Select(context.Background(), "s1", domain.OrderTypeVenue, "v1")

	require.NoError(t, err)
	assert.Equal(t, FlowItemSelected, snap.State)
	assert.Equal(t, domain.ScreenVenueDetail, snap.Screen.Name)
	assert.Equal(t, "阳光多功能厅", snap.ItemTitle)
	assert.Equal(t, 200.0, snap.ItemAmount)
}

func TestBookingService_Select_UnknownItem(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "missing").Return(nil, domain.ErrActivityNotFound)

	_, err := svc.Select(context.Background(), "s1", domain.OrderTypeActivity, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestBookingService_Select_UnknownKind(t *testing.T) {
	svc, _, _, _ := newBookingService(t, time.Second)

	_, err := svc.Select(context.Background(), "s1", domain.OrderType("hotel"), "x")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_OpenForm_PrefillsActivityDate(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "T", Price: 299}, nil)

	_, err := svc.Select(context.Background(), "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)

	snap, err := svc.OpenForm(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, FlowForm, snap.State)
	assert.Equal(t, "2024-11-15", snap.Date)
}

func TestBookingService_OpenForm_PrefillsVenueSlot(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetVenue(mock.Anything, "v1").Return(&domain.Venue{ID: "v1", Name: "N", PricePerHour: 150}, nil)

	_, err := svc.Select(context.Background(), "s1", domain.OrderTypeVenue, "v1")
	require.NoError(t, err)

	snap, err := svc.OpenForm(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "09:00 - 12:00", snap.Date)
}

func TestBookingService_OpenForm_NoFlow(t *testing.T) {
	svc, _, _, _ := newBookingService(t, time.Second)

	_, err := svc.OpenForm(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrNoBookingFlow)
}

func TestBookingService_Submit_CreatesOrder(t *testing.T) {
	svc, catalogRepo, orderRepo, notifier := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "亲子自然探索营", Price: 299}, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)
	_, err = svc.OpenForm(ctx, "s1")
	require.NoError(t, err)

	order, err := svc.Submit(ctx, "s1", SubmitBookingInput{Name: "张三", Phone: "123", Date: "2024-12-01"})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, domain.OrderTypeActivity, order.Type)
	assert.Equal(t, "a1", order.ItemID)
	assert.Equal(t, "亲子自然探索营", order.Title)
	assert.Equal(t, 299.0, order.Amount)
	assert.Equal(t, "2024-12-01", order.Date)
	assert.Equal(t, domain.OrderStatusPendingParticipation, order.Status)
	assert.Equal(t, "张三", order.UserName)
	assert.NotEmpty(t, order.BookingTime)

	snap, err := svc.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, FlowConfirmation, snap.State)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_EmptyDateUsesPrefill(t *testing.T) {
	svc, catalogRepo, orderRepo, notifier := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetVenue(mock.Anything, "v1").Return(&domain.Venue{ID: "v1", Name: "N", PricePerHour: 150}, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeVenue, "v1")
	require.NoError(t, err)
	_, err = svc.OpenForm(ctx, "s1")
	require.NoError(t, err)

	order, err := svc.Submit(ctx, "s1", SubmitBookingInput{Name: "李四", Phone: "456"})

	require.NoError(t, err)
	assert.Equal(t, "09:00 - 12:00", order.Date)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_MissingFields(t *testing.T) {
	svc, _, _, _ := newBookingService(t, time.Second)

	_, err := svc.Submit(context.Background(), "s1", SubmitBookingInput{Phone: "123"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Submit(context.Background(), "s1", SubmitBookingInput{Name: "张三"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Submit_WrongState(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "T", Price: 1}, nil)

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)

	// Still on the detail view, form never opened.
	_, err = svc.Submit(ctx, "s1", SubmitBookingInput{Name: "n", Phone: "p"})

	assert.ErrorIs(t, err, domain.ErrFlowConflict)
}

func TestBookingService_ConfirmationAutoDismissesToProfile(t *testing.T) {
	svc, catalogRepo, orderRepo, notifier := newBookingService(t, 30*time.Millisecond)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "T", Price: 1}, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)
	_, err = svc.OpenForm(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "s1", SubmitBookingInput{Name: "n", Phone: "p"})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	snap, err := svc.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, FlowIdle, snap.State)
	assert.Equal(t, domain.ScreenProfile, snap.Screen.Name)
	assert.Empty(t, snap.ItemID)
}

func TestBookingService_CloseDuringConfirmationBeatsTimer(t *testing.T) {
	svc, catalogRepo, orderRepo, notifier := newBookingService(t, 30*time.Millisecond)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "T", Price: 1}, nil)
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)
	_, err = svc.OpenForm(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "s1", SubmitBookingInput{Name: "n", Phone: "p"})
	require.NoError(t, err)

	snap, err := svc.Close(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.ScreenHome, snap.Screen.Name)

	// The cancelled timer must not land the screen on profile.
	time.Sleep(100 * time.Millisecond)

	snap, err = svc.State(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, FlowIdle, snap.State)
	assert.Equal(t, domain.ScreenHome, snap.Screen.Name)
}

func TestBookingService_CancelForm_ReturnsToDetail(t *testing.T) {
	svc, catalogRepo, _, _ := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "T", Price: 99}, nil)

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)
	_, err = svc.OpenForm(ctx, "s1")
	require.NoError(t, err)

	snap, err := svc.CancelForm(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, FlowItemSelected, snap.State)
	assert.Equal(t, domain.ScreenActivityDetail, snap.Screen.Name)
	assert.Equal(t, "a1", snap.ItemID)
	assert.Equal(t, "T", snap.ItemTitle)
}

func TestBookingService_SnapshotSurvivesCatalogChange(t *testing.T) {
	svc, catalogRepo, orderRepo, notifier := newBookingService(t, time.Second)

	catalogRepo.EXPECT().GetActivity(mock.Anything, "a1").Return(&domain.Activity{ID: "a1", Title: "原价活动", Price: 299}, nil).Once()
	orderRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyOrderCreated(mock.Anything, mock.Anything).Return()

	ctx := context.Background()
	_, err := svc.Select(ctx, "s1", domain.OrderTypeActivity, "a1")
	require.NoError(t, err)
	_, err = svc.OpenForm(ctx, "s1")
	require.NoError(t, err)

	// The catalog is never consulted again: even if the item was
	// deleted or the language toggled after selection, the order uses
	// the snapshot taken at Select time.
	order, err := svc.Submit(ctx, "s1", SubmitBookingInput{Name: "n", Phone: "p"})

	require.NoError(t, err)
	assert.Equal(t, "原价活动", order.Title)
	assert.Equal(t, 299.0, order.Amount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_State_NewSessionIsIdle(t *testing.T) {
	svc, _, _, _ := newBookingService(t, time.Second)

	snap, err := svc.State(context.Background(), "fresh")

	require.NoError(t, err)
	assert.Equal(t, FlowIdle, snap.State)
	assert.Equal(t, domain.ScreenHome, snap.Screen.Name)
}

func TestBookingService_PurgeIdle(t *testing.T) {
	catalogRepo := mocks.NewMockCatalogRepo(t)
	orderRepo := mocks.NewMockOrderRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(catalogRepo, orderRepo, notifier, time.Second, time.Nanosecond, log)

	_, err := svc.State(context.Background(), "s1")
	require.NoError(t, err)
	_, err = svc.State(context.Background(), "s2")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	purged, err := svc.PurgeIdle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, purged)
}
