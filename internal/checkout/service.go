package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/nataliebakery/storefront/internal/cart"
	"github.com/nataliebakery/storefront/internal/catalog"
	"github.com/nataliebakery/storefront/pkg/errors"
	"github.com/nataliebakery/storefront/pkg/logger"
	"github.com/nataliebakery/storefront/pkg/metrics"
)

const (
	// Pickup counter hours, inclusive on both ends.
	pickupOpenHour  = 10
	pickupCloseHour = 18

	// Lead times before a pickup slot becomes bookable.
	standardLeadTime   = 24 * time.Hour
	customCakeLeadTime = 72 * time.Hour
)

// CustomerDetails is the contact information collected at checkout.
type CustomerDetails struct {
	Name  string
	Email string
	Phone string
}

// PickupSlot is the requested pickup date and time as the customer entered
// them, date as "2006-01-02" and time as "15:04".
type PickupSlot struct {
	Date string
	Time string
}

type orderSubmitter interface {
	SubmitOrder(ctx context.Context, submission catalog.OrderSubmission) (*catalog.OrderConfirmation, error)
}

type cartStore interface {
	Lines(ctx context.Context, sessionID string) cart.Lines
	ClearCart(ctx context.Context, sessionID string)
}

// Service turns a session's cart plus customer details into an upstream
// order. The cart is cleared only after the upstream accepts the order; any
// failure leaves it untouched so the customer can retry.
type Service struct {
	orders  orderSubmitter
	carts   cartStore
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
	now     func() time.Time
}

// NewService builds the checkout service.
func NewService(orders orderSubmitter, carts cartStore, logg *logger.Logger, m *metrics.StorefrontMetrics) (*Service, error) {
	if orders == nil {
		return nil, fmt.Errorf("order submitter required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &Service{
		orders:  orders,
		carts:   carts,
		logg:    logg,
		metrics: m,
		now:     time.Now,
	}, nil
}

// PlaceOrder validates the pickup slot against the cart's lead time, submits
// the order upstream and clears the cart on success.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, details CustomerDetails, slot PickupSlot) (*catalog.OrderConfirmation, error) {
	lines := s.carts.Lines(ctx, sessionID)
	if len(lines) == 0 {
		return nil, errors.New(errors.CodeValidation, "cart is empty")
	}

	pickupAt, err := parsePickup(slot)
	if err != nil {
		return nil, err
	}
	if err := s.validatePickup(pickupAt, lines.HasCustomCake()); err != nil {
		return nil, err
	}

	submission := buildSubmission(details, pickupAt, lines)
	confirmation, err := s.orders.SubmitOrder(ctx, submission)
	if err != nil {
		s.metrics.IncOrder("failure")
		return nil, err
	}

	s.carts.ClearCart(ctx, sessionID)
	s.metrics.IncOrder("success")

	if s.logg != nil {
		lctx := s.logg.WithSessionID(ctx, sessionID)
		lctx = s.logg.WithFields(lctx, map[string]any{
			"order_id":    confirmation.ID,
			"total_price": submission.TotalPrice,
			"pickup_at":   submission.PickupDatetime,
			"custom_cake": lines.HasCustomCake(),
			"line_count":  len(lines),
		})
		s.logg.Info(lctx, "order placed")
	}
	return confirmation, nil
}

func parsePickup(slot PickupSlot) (time.Time, error) {
	pickupAt, err := time.Parse("2006-01-02 15:04", slot.Date+" "+slot.Time)
	if err != nil {
		return time.Time{}, errors.New(errors.CodeValidation, "invalid pickup date or time")
	}
	return pickupAt.UTC(), nil
}

func (s *Service) validatePickup(pickupAt time.Time, hasCustomCake bool) error {
	hour := pickupAt.Hour()
	if hour < pickupOpenHour || hour > pickupCloseHour || (hour == pickupCloseHour && pickupAt.Minute() > 0) {
		return errors.New(errors.CodeValidation, "pickup must be between 10:00 and 18:00").
			WithDetails(map[string]any{"pickup_datetime": pickupAt.Format(time.RFC3339)})
	}

	leadTime := standardLeadTime
	message := "pickup must be at least 1 day from now"
	if hasCustomCake {
		leadTime = customCakeLeadTime
		message = "custom cakes need at least 3 days notice"
	}
	if pickupAt.Before(s.now().UTC().Add(leadTime)) {
		return errors.New(errors.CodeValidation, message).
			WithDetails(map[string]any{"pickup_datetime": pickupAt.Format(time.RFC3339)})
	}
	return nil
}

func buildSubmission(details CustomerDetails, pickupAt time.Time, lines cart.Lines) catalog.OrderSubmission {
	items := make([]catalog.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, catalog.OrderItem{
			Product:  line.ProductID,
			Quantity: line.Quantity,
			Flavor:   selectedOption(line, "flavor"),
			Filling:  selectedOption(line, "filling"),
			Size:     selectedOption(line, "size"),
			Price:    line.UnitPrice,
		})
	}
	return catalog.OrderSubmission{
		CustomerName:   details.Name,
		Email:          details.Email,
		Phone:          details.Phone,
		TotalPrice:     lines.TotalPrice(),
		PickupDatetime: pickupAt.Format(time.RFC3339),
		Items:          items,
	}
}

func selectedOption(line cart.Line, key string) *string {
	value, ok := line.SelectedOptions[key]
	if !ok {
		return nil
	}
	return &value
}
