package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	deliverycontext "github.com/Hritik000/valentine-gifts-hub/internal/delivery/context"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/constants"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/repository"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	pricer         cartPricer
	orderRepo      repository.OrderRepository
	paymentGateway service.PaymentGateway
	rateLimiter    service.RateLimiter
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	ProductRepo    repository.ProductRepository
	OrderRepo      repository.OrderRepository
	PaymentGateway service.PaymentGateway
	RateLimiter    service.RateLimiter
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		pricer:         cartPricer{productRepo: params.ProductRepo},
		orderRepo:      params.OrderRepo,
		paymentGateway: params.PaymentGateway,
		rateLimiter:    params.RateLimiter,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateOrder prices the cart against the catalog and persists a demo-mode
// order. Payment is assumed to have happened out of band; operators can
// tell these orders apart by their payment method tag.
func (s *checkoutService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.CreateOrderOutput, error) {
	email, err := validateEmail(input.CustomerEmail)
	if err != nil {
		return nil, err
	}

	items := input.Items
	if len(items) == 0 && input.ProductID != "" {
		// Legacy single-product form.
		items = []usecase.CartItemInput{{ID: input.ProductID, Quantity: 1}}
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	decision, err := s.rateLimiter.Allow(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "rate limit check failed")
	}
	if !decision.Allowed {
		return nil, domainerrors.NewRateLimitError(int(math.Ceil(decision.RetryIn.Seconds())))
	}

	cart, err := s.pricer.Price(ctx, items)
	if err != nil {
		return nil, err
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = constants.PaymentMethodDemo
	}
	paymentID := input.PaymentID
	if paymentID == "" {
		paymentID = demoPaymentID()
	}

	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        input.UserID,
		CustomerEmail: email,
		CustomerName:  input.CustomerName,
		Items:         cart.Items,
		Total:         cart.Total,
		Status:        entity.OrderStatusPaid,
		PaymentMethod: paymentMethod,
		PaymentID:     paymentID,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(ctx, order, input.RequestID)

	return &usecase.CreateOrderOutput{
		OrderID:   order.ID,
		ItemCount: len(cart.Items),
		Total:     cart.Total,
	}, nil
}

// CreatePaymentOrder creates a gateway-side payment intent
func (s *checkoutService) CreatePaymentOrder(ctx context.Context, input *usecase.CreatePaymentOrderInput) (*usecase.CreatePaymentOrderOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	if !s.paymentGateway.Configured() {
		return nil, domainerrors.ErrGatewayNotConfigured
	}

	gatewayOrder, err := s.paymentGateway.CreateOrder(ctx, service.GatewayOrderRequest{
		Amount:   input.Amount,
		Currency: input.Currency,
		Receipt:  input.Receipt,
		Notes:    input.Notes,
	})
	if err != nil {
		return nil, domainerrors.NewGatewayError(err, err.Error())
	}

	return &usecase.CreatePaymentOrderOutput{
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
		KeyID:          s.paymentGateway.KeyID(),
	}, nil
}

// VerifyPayment checks the gateway's signed proof and only then prices and
// persists the order. A signature mismatch is terminal: no order row is
// written and the response never says which component was wrong.
func (s *checkoutService) VerifyPayment(ctx context.Context, input *usecase.VerifyPaymentInput) (*usecase.VerifyPaymentOutput, error) {
	if input.GatewayOrderID == "" || input.GatewayPaymentID == "" || input.GatewaySignature == "" {
		return nil, domainerrors.ErrMissingPaymentProof
	}
	if !s.paymentGateway.Configured() {
		return nil, domainerrors.ErrGatewayNotConfigured
	}

	if !s.paymentGateway.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.GatewaySignature) {
		s.log(ctx).Warn("payment signature mismatch",
			slog.String("gateway_order_id", input.GatewayOrderID),
		)

		return nil, domainerrors.ErrSignatureMismatch
	}

	email, err := validateEmail(input.CustomerEmail)
	if err != nil {
		return nil, err
	}

	cart, err := s.pricer.Price(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        input.UserID,
		CustomerEmail: email,
		CustomerName:  input.CustomerName,
		Items:         cart.Items,
		Total:         cart.Total,
		Status:        entity.OrderStatusPaid,
		PaymentMethod: constants.PaymentMethodRazorpay,
		PaymentID:     input.GatewayPaymentID,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publishOrderCreated(ctx, order, input.RequestID)

	return &usecase.VerifyPaymentOutput{
		OrderID:   order.ID,
		ItemCount: len(cart.Items),
		Total:     cart.Total,
	}, nil
}

// publishOrderCreated emits the order-created event. Publishing is best
// effort; a broker outage must not fail a paid order.
func (s *checkoutService) publishOrderCreated(ctx context.Context, order *entity.Order, requestID string) {
	event := &service.OrderCreatedEvent{
		RequestID:     requestID,
		OrderID:       order.ID.String(),
		CustomerEmail: order.CustomerEmail,
		Total:         order.Total,
		ItemCount:     len(order.Items),
		PaymentMethod: order.PaymentMethod,
	}

	if err := s.eventPublisher.PublishOrderCreated(ctx, event); err != nil {
		s.log(ctx).Warn("failed to publish order created event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

// demoPaymentID synthesizes a transaction id for demo-mode orders.
func demoPaymentID() string {
	return fmt.Sprintf("demo_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
