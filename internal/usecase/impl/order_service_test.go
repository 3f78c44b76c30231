package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/repository"
	mockRepo "github.com/Hritik000/valentine-gifts-hub/internal/mocks/repository"
	mockSvc "github.com/Hritik000/valentine-gifts-hub/internal/mocks/service"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderMocks struct {
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
	fileVault   *mockSvc.MockFileVault
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderMocks) {
	t.Helper()

	m := &orderMocks{
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		fileVault:   mockSvc.NewMockFileVault(t),
	}

	svc := NewOrderService(OrderServiceParams{
		OrderRepo:   m.orderRepo,
		ProductRepo: m.productRepo,
		FileVault:   m.fileVault,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, m
}

// paidOrder builds a paid guest order containing the given product at the
// frozen price 299 x 2.
func paidOrder(productID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		CustomerEmail: "buyer@example.com",
		Items: []entity.OrderItem{
			{ProductID: productID, Title: "Love Letters Bundle", Price: 299, Quantity: 2},
		},
		Total:         598,
		Status:        entity.OrderStatusPaid,
		PaymentMethod: "razorpay",
		PaymentID:     "pay_def",
	}
}

func TestOrderService_VerifyOrder_MalformedID(t *testing.T) {
	svc, _ := newOrderService(t)

	// Rejected before any storage access: the order repo has no
	// expectations, so a lookup would fail the test.
	_, err := svc.VerifyOrder(context.Background(), &usecase.VerifyOrderInput{
		OrderID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderID)
}

func TestOrderService_VerifyOrder_NotFoundOrUnpaid(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := svc.VerifyOrder(ctx, &usecase.VerifyOrderInput{OrderID: orderID.String()})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotVerified)
}

func TestOrderService_VerifyOrder_OwnershipIsolation(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	productID := uuid.New()

	order := paidOrder(productID)
	order.UserID = &owner

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)

	_, err := svc.VerifyOrder(ctx, &usecase.VerifyOrderInput{
		OrderID: order.ID.String(),
		UserID:  &stranger,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}

func TestOrderService_VerifyOrder_GuestOrderIsBearerCapability(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID) // UserID nil
	requester := uuid.New()

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return(nil, nil)

	out, err := svc.VerifyOrder(ctx, &usecase.VerifyOrderInput{
		OrderID: order.ID.String(),
		UserID:  &requester,
	})
	require.NoError(t, err)
	assert.Equal(t, order.ID.String(), out.Order.ID)
}

func TestOrderService_VerifyOrder_FrozenTotalWithRefreshedDisplay(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID)

	// The catalog price went up since purchase.
	current := &entity.Product{
		ID:       productID,
		Title:    "Love Letters Bundle (2nd Edition)",
		Price:    399,
		ImageURL: "https://cdn.example.com/bundle.jpg",
		FileURL:  "guides/love-letters.pdf",
		IsActive: true,
	}

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{current}, nil)

	out, err := svc.VerifyOrder(ctx, &usecase.VerifyOrderInput{OrderID: order.ID.String()})
	require.NoError(t, err)

	// Charged total is the frozen one, not 399 x 2.
	assert.Equal(t, int64(598), out.Order.Total)
	assert.True(t, out.Order.HasFiles)

	require.Len(t, out.Order.Items, 1)
	item := out.Order.Items[0]
	assert.Equal(t, "Love Letters Bundle (2nd Edition)", item.Title)
	assert.Equal(t, "https://cdn.example.com/bundle.jpg", item.ImageURL)
	// The line price stays the frozen snapshot price.
	assert.Equal(t, int64(299), item.Price)
	assert.Equal(t, 2, item.Quantity)
}

func TestOrderService_VerifyOrder_Idempotent(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID)

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return(nil, nil)

	input := &usecase.VerifyOrderInput{OrderID: order.ID.String()}

	first, err := svc.VerifyOrder(ctx, input)
	require.NoError(t, err)
	second, err := svc.VerifyOrder(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first.Order.Total, second.Order.Total)
	assert.Equal(t, first.Order.Items, second.Order.Items)
}

func TestOrderService_VerifyOrder_DisplayLookupFailureDegrades(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID)

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return(nil, errors.New("connection refused"))

	out, err := svc.VerifyOrder(ctx, &usecase.VerifyOrderInput{OrderID: order.ID.String()})
	require.NoError(t, err)

	// Snapshot data still served; file availability unknown.
	assert.Equal(t, "Love Letters Bundle", out.Order.Items[0].Title)
	assert.False(t, out.Order.HasFiles)
}

func TestOrderService_DownloadURL_MintsSignedURL(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID)
	product := &entity.Product{
		ID:      productID,
		Title:   "Love Letters Bundle",
		FileURL: "guides/love-letters.pdf",
	}

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{product}, nil)
	m.fileVault.EXPECT().
		SignedDownloadURL(ctx, "guides/love-letters.pdf").
		Return("https://storage.example.com/signed?sig=abc", nil)

	out, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   order.ID.String(),
		ProductID: productID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://storage.example.com/signed?sig=abc", out.DownloadURL)
	assert.Equal(t, "love-letters.pdf", out.FileName)
}

func TestOrderService_DownloadURL_UnpaidOrderNeverDownloads(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	// Pending and absent orders are the same ErrOrderNotFound from the
	// paid-filtered lookup.
	m.orderRepo.EXPECT().
		FindPaidByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   orderID.String(),
		ProductID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotVerified)
}

func TestOrderService_DownloadURL_ProductNotInOrder(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	order := paidOrder(uuid.New())
	otherProduct := uuid.New()

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)

	_, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   order.ID.String(),
		ProductID: otherProduct.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotInOrder)
}

func TestOrderService_DownloadURL_MalformedProductID(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	order := paidOrder(uuid.New())

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)

	_, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   order.ID.String(),
		ProductID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotInOrder)
}

func TestOrderService_DownloadURL_FileNotAvailable(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID)
	product := &entity.Product{ID: productID, Title: "Love Letters Bundle"} // no file

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{product}, nil)

	_, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   order.ID.String(),
		ProductID: productID.String(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrFileNotAvailable)
}

func TestOrderService_DownloadURL_StorageFailure(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	productID := uuid.New()
	order := paidOrder(productID)
	product := &entity.Product{ID: productID, Title: "Love Letters Bundle", FileURL: "guides/love-letters.pdf"}

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)
	m.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{productID}).
		Return([]*entity.Product{product}, nil)
	m.fileVault.EXPECT().
		SignedDownloadURL(ctx, "guides/love-letters.pdf").
		Return("", errors.New("object not found in any bucket"))

	_, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   order.ID.String(),
		ProductID: productID.String(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_ERROR", appErr.ErrorCode())
	// The client message never names buckets or paths.
	assert.NotContains(t, appErr.Message(), "bucket")
}

func TestOrderService_DownloadURL_OwnershipCheckedPerRequest(t *testing.T) {
	svc, m := newOrderService(t)
	ctx := context.Background()

	owner := uuid.New()
	stranger := uuid.New()
	productID := uuid.New()
	order := paidOrder(productID)
	order.UserID = &owner

	m.orderRepo.EXPECT().
		FindPaidByID(ctx, order.ID).
		Return(order, nil)

	_, err := svc.DownloadURL(ctx, &usecase.DownloadInput{
		OrderID:   order.ID.String(),
		ProductID: productID.String(),
		UserID:    &stranger,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderAccessDenied)
}
