package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/constants"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"
	mockRepo "github.com/Hritik000/valentine-gifts-hub/internal/mocks/repository"
	mockSvc "github.com/Hritik000/valentine-gifts-hub/internal/mocks/service"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutMocks struct {
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	gateway     *mockSvc.MockPaymentGateway
	rateLimiter *mockSvc.MockRateLimiter
	publisher   *mockSvc.MockEventPublisher
}

func newCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutMocks) {
	t.Helper()

	m := &checkoutMocks{
		productRepo: mockRepo.NewMockProductRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		gateway:     mockSvc.NewMockPaymentGateway(t),
		rateLimiter: mockSvc.NewMockRateLimiter(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewCheckoutService(CheckoutServiceParams{
		ProductRepo:    m.productRepo,
		OrderRepo:      m.orderRepo,
		PaymentGateway: m.gateway,
		RateLimiter:    m.rateLimiter,
		EventPublisher: m.publisher,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

func allowAll(m *checkoutMocks) {
	m.rateLimiter.EXPECT().
		Allow(mock.Anything, mock.AnythingOfType("string")).
		Return(service.Decision{Allowed: true, Remaining: 4}, nil)
}

func publishOK(m *checkoutMocks) {
	m.publisher.EXPECT().
		PublishOrderCreated(mock.Anything, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(nil)
}

func testProduct(price int64) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Title:    "Love Letters Bundle",
		Price:    price,
		IsActive: true,
	}
}

func TestCheckoutService_CreateOrder_PricesFromCatalog(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	product := testProduct(299)

	allowAll(m)
	publishOK(m)
	m.productRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	var created *entity.Order
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)

	out, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items:         []usecase.CartItemInput{{ID: product.ID.String(), Quantity: 2}},
		CustomerEmail: "Buyer@Example.COM ",
	})
	require.NoError(t, err)

	// 299 x 2, whatever total the client claimed.
	assert.Equal(t, int64(598), out.Total)
	assert.Equal(t, 1, out.ItemCount)

	require.NotNil(t, created)
	assert.Equal(t, int64(598), created.Total)
	assert.Equal(t, "buyer@example.com", created.CustomerEmail)
	assert.Equal(t, entity.OrderStatusPaid, created.Status)
	assert.Equal(t, constants.PaymentMethodDemo, created.PaymentMethod)
	assert.True(t, strings.HasPrefix(created.PaymentID, "demo_"))
	require.Len(t, created.Items, 1)
	assert.Equal(t, int64(299), created.Items[0].Price)
	assert.Equal(t, 2, created.Items[0].Quantity)
}

func TestCheckoutService_CreateOrder_LegacySingleProduct(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	product := testProduct(499)

	allowAll(m)
	publishOK(m)
	m.productRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	out, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		ProductID:     product.ID.String(),
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(499), out.Total)
	assert.Equal(t, 1, out.ItemCount)
}

func TestCheckoutService_CreateOrder_EmailValidation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "missing", email: "", wantErr: domainerrors.ErrEmailRequired},
		{name: "whitespace only", email: "   ", wantErr: domainerrors.ErrEmailRequired},
		{name: "no at sign", email: "buyer.example.com", wantErr: domainerrors.ErrInvalidEmail},
		{name: "no domain dot", email: "buyer@example", wantErr: domainerrors.ErrInvalidEmail},
		{name: "embedded space", email: "buy er@example.com", wantErr: domainerrors.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCheckoutService(t)

			_, err := svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
				Items:         []usecase.CartItemInput{{ID: uuid.NewString()}},
				CustomerEmail: tt.email,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutService_CreateOrder_EmptyCart(t *testing.T) {
	svc, _ := newCheckoutService(t)

	_, err := svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		CustomerEmail: "buyer@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_CreateOrder_RateLimited(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	m.rateLimiter.EXPECT().
		Allow(ctx, "buyer@example.com").
		Return(service.Decision{Allowed: false, RetryIn: 90 * time.Second}, nil)

	_, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items:         []usecase.CartItemInput{{ID: uuid.NewString()}},
		CustomerEmail: "buyer@example.com",
	})
	require.Error(t, err)

	var rateErr *domainerrors.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 90, rateErr.RetryAfterSeconds())
}

func TestCheckoutService_CreateOrder_ProductUnavailable(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	known := testProduct(199)
	missingID := uuid.New()

	allowAll(m)
	m.productRepo.EXPECT().
		FindActiveByIDs(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Product{known}, nil)

	_, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items: []usecase.CartItemInput{
			{ID: known.ID.String()},
			{ID: missingID.String()},
		},
		CustomerEmail: "buyer@example.com",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_UNAVAILABLE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), missingID.String())
	assert.NotContains(t, appErr.Details(), known.ID.String())
}

func TestCheckoutService_CreateOrder_MalformedProductID(t *testing.T) {
	svc, m := newCheckoutService(t)

	allowAll(m)

	_, err := svc.CreateOrder(context.Background(), &usecase.CreateOrderInput{
		Items:         []usecase.CartItemInput{{ID: "not-a-uuid"}},
		CustomerEmail: "buyer@example.com",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_UNAVAILABLE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "not-a-uuid")
}

func TestCheckoutService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	product := testProduct(299)

	allowAll(m)
	m.productRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	m.publisher.EXPECT().
		PublishOrderCreated(mock.Anything, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(errors.New("broker down"))

	out, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		Items:         []usecase.CartItemInput{{ID: product.ID.String()}},
		CustomerEmail: "buyer@example.com",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.OrderID)
}

func TestCheckoutService_CreatePaymentOrder(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().Configured().Return(true)
	m.gateway.EXPECT().KeyID().Return("rzp_test_key")
	m.gateway.EXPECT().
		CreateOrder(ctx, service.GatewayOrderRequest{
			Amount:   499.0,
			Currency: "INR",
			Receipt:  "order_ref_1",
		}).
		Return(&service.GatewayOrder{
			ID:       "order_Nq3xyz",
			Amount:   49900,
			Currency: "INR",
			Status:   "created",
		}, nil)

	out, err := svc.CreatePaymentOrder(ctx, &usecase.CreatePaymentOrderInput{
		Amount:   499.0,
		Currency: "INR",
		Receipt:  "order_ref_1",
	})
	require.NoError(t, err)

	assert.Equal(t, "order_Nq3xyz", out.GatewayOrderID)
	assert.Equal(t, int64(49900), out.Amount)
	assert.Equal(t, "rzp_test_key", out.KeyID)
}

func TestCheckoutService_CreatePaymentOrder_InvalidAmount(t *testing.T) {
	svc, _ := newCheckoutService(t)

	for _, amount := range []float64{0, -1} {
		_, err := svc.CreatePaymentOrder(context.Background(), &usecase.CreatePaymentOrderInput{Amount: amount})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
	}
}

func TestCheckoutService_CreatePaymentOrder_NotConfigured(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.gateway.EXPECT().Configured().Return(false)

	_, err := svc.CreatePaymentOrder(context.Background(), &usecase.CreatePaymentOrderInput{Amount: 499})
	assert.ErrorIs(t, err, domainerrors.ErrGatewayNotConfigured)
}

func TestCheckoutService_CreatePaymentOrder_GatewayFailure(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().Configured().Return(true)
	m.gateway.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("service.GatewayOrderRequest")).
		Return(nil, errors.New("gateway returned status 502"))

	_, err := svc.CreatePaymentOrder(ctx, &usecase.CreatePaymentOrderInput{Amount: 499})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GATEWAY_ERROR", appErr.ErrorCode())
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestCheckoutService_VerifyPayment_CreatesVerifiedOrder(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	product := testProduct(299)

	m.gateway.EXPECT().Configured().Return(true)
	m.gateway.EXPECT().
		VerifySignature("order_abc", "pay_def", "valid-signature").
		Return(true)
	m.productRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)
	publishOK(m)

	var created *entity.Order
	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)

	out, err := svc.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_def",
		GatewaySignature: "valid-signature",
		Items:            []usecase.CartItemInput{{ID: product.ID.String(), Quantity: 2}},
		CustomerEmail:    "buyer@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(598), out.Total)
	require.NotNil(t, created)
	assert.Equal(t, constants.PaymentMethodRazorpay, created.PaymentMethod)
	assert.Equal(t, "pay_def", created.PaymentID)
	assert.Equal(t, entity.OrderStatusPaid, created.Status)
}

func TestCheckoutService_VerifyPayment_SignatureMismatch(t *testing.T) {
	svc, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().Configured().Return(true)
	m.gateway.EXPECT().
		VerifySignature("order_abc", "pay_def", "tampered").
		Return(false)

	// No order row: the order repo has no expectations, so any
	// CreateOrder call would fail the test.
	_, err := svc.VerifyPayment(ctx, &usecase.VerifyPaymentInput{
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_def",
		GatewaySignature: "tampered",
		Items:            []usecase.CartItemInput{{ID: uuid.NewString()}},
		CustomerEmail:    "buyer@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrSignatureMismatch)
}

func TestCheckoutService_VerifyPayment_MissingProof(t *testing.T) {
	svc, _ := newCheckoutService(t)

	tests := []usecase.VerifyPaymentInput{
		{GatewayPaymentID: "pay_def", GatewaySignature: "sig"},
		{GatewayOrderID: "order_abc", GatewaySignature: "sig"},
		{GatewayOrderID: "order_abc", GatewayPaymentID: "pay_def"},
	}

	for _, input := range tests {
		input.CustomerEmail = "buyer@example.com"
		input.Items = []usecase.CartItemInput{{ID: uuid.NewString()}}

		_, err := svc.VerifyPayment(context.Background(), &input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingPaymentProof)
	}
}

func TestCheckoutService_VerifyPayment_NotConfigured(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.gateway.EXPECT().Configured().Return(false)

	_, err := svc.VerifyPayment(context.Background(), &usecase.VerifyPaymentInput{
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_def",
		GatewaySignature: "sig",
		Items:            []usecase.CartItemInput{{ID: uuid.NewString()}},
		CustomerEmail:    "buyer@example.com",
	})
	assert.ErrorIs(t, err, domainerrors.ErrGatewayNotConfigured)
}
