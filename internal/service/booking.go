package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/1739467001-svg/kaiyan/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type FlowState string

const (
	FlowIdle         FlowState = "idle"
	FlowItemSelected FlowState = "item_selected"
	FlowForm         FlowState = "form"
	FlowConfirmation FlowState = "confirmation"
)

// Static form defaults, one per item kind. These are fixed literals,
// not computed from availability.
const (
	defaultActivityDate = "2024-11-15"
	defaultVenueSlot    = "09:00 - 12:00"
)

const bookingTimeLayout = "2006-01-02 15:04:05"

// bookingFlow is one client's position in the linear booking process:
// idle -> item selected -> form -> confirmation -> idle. The item
// fields are a snapshot taken at selection time. gen guards the
// confirmation timer: any transition bumps it, so a timer that fires
// after its flow moved on does nothing.
type bookingFlow struct {
	state      FlowState
	screen     domain.Screen
	itemType   domain.OrderType
	itemID     string
	itemTitle  string
	itemAmount float64
	date       string
	gen        uint64
	timer      *time.Timer
	touchedAt  time.Time
}

// FlowSnapshot is the read-only view of a flow handed to clients.
type FlowSnapshot struct {
	State      FlowState
	Screen     domain.Screen
	ItemType   domain.OrderType
	ItemID     string
	ItemTitle  string
	ItemAmount float64
	Date       string
}

type SubmitBookingInput struct {
	Name  string
	Phone string
	Date  string
}

type BookingService struct {
	catalogRepo ports.CatalogRepo
	orderRepo   ports.OrderRepo
	notifier    ports.OrderNotifier
	logger      logger.Logger

	confirmDelay time.Duration
	flowTTL      time.Duration

	mu    sync.Mutex
	flows map[string]*bookingFlow
}

func NewBookingService(
	catalogRepo ports.CatalogRepo,
	orderRepo ports.OrderRepo,
	notifier ports.OrderNotifier,
	confirmDelay time.Duration,
	flowTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		catalogRepo:  catalogRepo,
		orderRepo:    orderRepo,
		notifier:     notifier,
		confirmDelay: confirmDelay,
		flowTTL:      flowTTL,
		logger:       logger,
		flows:        make(map[string]*bookingFlow),
	}
}

func (s *BookingService) flow(sessionID string) *bookingFlow {
	f, ok := s.flows[sessionID]
	if !ok {
		f = &bookingFlow{
			state:  FlowIdle,
			screen: domain.Screen{Name: domain.ScreenHome},
		}
		s.flows[sessionID] = f
	}
	f.touchedAt = time.Now()
	return f
}

// transition bumps the flow's generation and stops any pending timer,
// invalidating callbacks scheduled for the previous state.
func (f *bookingFlow) transition(state FlowState) {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.state = state
}

// Select opens a catalog item's detail view and snapshots its id,
// title and price into the flow.
func (s *BookingService) Select(ctx context.Context, sessionID string, kind domain.OrderType, itemID string) (*FlowSnapshot, error) {
	var (
		title  string
		amount float64
		screen domain.Screen
	)

	switch kind {
	case domain.OrderTypeActivity:
		activity, err := s.catalogRepo.GetActivity(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("get activity: %w", err)
		}
		title, amount = activity.Title, activity.Price
		screen = domain.Screen{Name: domain.ScreenActivityDetail, ItemID: itemID}
	case domain.OrderTypeVenue:
		venue, err := s.catalogRepo.GetVenue(ctx, itemID)
		if err != nil {
			return nil, fmt.Errorf("get venue: %w", err)
		}
		title, amount = venue.Name, venue.PricePerHour
		screen = domain.Screen{Name: domain.ScreenVenueDetail, ItemID: itemID}
	default:
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.flow(sessionID)
	f.transition(FlowItemSelected)
	f.itemType = kind
	f.itemID = itemID
	f.itemTitle = title
	f.itemAmount = amount
	f.date = ""
	f.screen = screen

	return snapshotLocked(f), nil
}

// OpenForm moves a selected flow into the form state and pre-fills the
// default date string for the item kind.
func (s *BookingService) OpenForm(_ context.Context, sessionID string) (*FlowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok || f.state == FlowIdle {
		return nil, domain.ErrNoBookingFlow
	}
	if f.state != FlowItemSelected {
		return nil, domain.ErrFlowConflict
	}

	f.touchedAt = time.Now()
	f.transition(FlowForm)
	if f.itemType == domain.OrderTypeActivity {
		f.date = defaultActivityDate
	} else {
		f.date = defaultVenueSlot
	}

	return snapshotLocked(f), nil
}

// Submit synthesizes an order from the flow snapshot and the form
// fields, prepends it to the order store and enters the confirmation
// state. After the confirmation delay the flow returns to idle with
// the screen on the profile view.
func (s *BookingService) Submit(ctx context.Context, sessionID string, input SubmitBookingInput) (*domain.Order, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}

	s.mu.Lock()

	f, ok := s.flows[sessionID]
	if !ok || f.state == FlowIdle {
		s.mu.Unlock()
		return nil, domain.ErrNoBookingFlow
	}
	if f.state != FlowForm {
		s.mu.Unlock()
		return nil, domain.ErrFlowConflict
	}

	date := input.Date
	if date == "" {
		date = f.date
	}

	// Order ids are uuid-backed: collisions are not a practical
	// concern, unlike the short random suffixes of a demo id.
	order := &domain.Order{
		ID:          "ORD-" + uuid.New().String(),
		Type:        f.itemType,
		ItemID:      f.itemID,
		Title:       f.itemTitle,
		Amount:      f.itemAmount,
		Date:        date,
		Status:      domain.OrderStatusPendingParticipation,
		UserName:    input.Name,
		UserPhone:   input.Phone,
		BookingTime: time.Now().Format(bookingTimeLayout),
	}

	f.touchedAt = time.Now()
	f.transition(FlowConfirmation)
	f.date = ""
	gen := f.gen
	f.timer = time.AfterFunc(s.confirmDelay, func() {
		s.dismissConfirmation(sessionID, gen)
	})

	s.mu.Unlock()

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created",
		logger.String("order_id", order.ID),
		logger.String("item_id", order.ItemID),
		logger.String("type", string(order.Type)),
	)

	go s.notifier.NotifyOrderCreated(context.WithoutCancel(ctx), order)

	return order, nil
}

// dismissConfirmation is the confirmation timer callback. A stale
// generation means the flow was cancelled, purged or resubmitted in
// the meantime; the callback's effect is simply dropped.
func (s *BookingService) dismissConfirmation(sessionID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok || f.state != FlowConfirmation || f.gen != gen {
		return
	}

	f.transition(FlowIdle)
	f.itemType = ""
	f.itemID = ""
	f.itemTitle = ""
	f.itemAmount = 0
	f.screen = domain.Screen{Name: domain.ScreenProfile}
}

// CancelForm closes the form and returns to the item's detail view
// without side effects.
func (s *BookingService) CancelForm(_ context.Context, sessionID string) (*FlowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok || f.state == FlowIdle {
		return nil, domain.ErrNoBookingFlow
	}
	if f.state != FlowForm {
		return nil, domain.ErrFlowConflict
	}

	f.touchedAt = time.Now()
	f.transition(FlowItemSelected)

	return snapshotLocked(f), nil
}

// Close deselects whatever the flow holds and returns it to idle.
func (s *BookingService) Close(_ context.Context, sessionID string) (*FlowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flows[sessionID]
	if !ok {
		return nil, domain.ErrNoBookingFlow
	}

	f.touchedAt = time.Now()
	f.transition(FlowIdle)
	f.itemType = ""
	f.itemID = ""
	f.itemTitle = ""
	f.itemAmount = 0
	f.date = ""
	f.screen = domain.Screen{Name: domain.ScreenHome}

	return snapshotLocked(f), nil
}

// State returns the client's current flow snapshot, creating an idle
// flow for first-time sessions.
func (s *BookingService) State(_ context.Context, sessionID string) (*FlowSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshotLocked(s.flow(sessionID)), nil
}

func (s *BookingService) Orders(ctx context.Context) ([]*domain.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *BookingService) OrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// PurgeIdle drops flows that have not been touched within the flow
// TTL, stopping their timers so no callback outlives its flow.
func (s *BookingService) PurgeIdle(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, f := range s.flows {
		if time.Since(f.touchedAt) <= s.flowTTL {
			continue
		}
		if f.timer != nil {
			f.timer.Stop()
		}
		delete(s.flows, id)
		purged++
	}

	return purged, nil
}

func snapshotLocked(f *bookingFlow) *FlowSnapshot {
	return &FlowSnapshot{
		State:      f.state,
		Screen:     f.screen,
		ItemType:   f.itemType,
		ItemID:     f.itemID,
		ItemTitle:  f.itemTitle,
		ItemAmount: f.itemAmount,
		Date:       f.date,
	}
}
