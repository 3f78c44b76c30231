package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "github.com/Hritik000/valentine-gifts-hub/internal/delivery/context"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/entity"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/repository"
	"github.com/Hritik000/valentine-gifts-hub/internal/domain/service"
	"github.com/Hritik000/valentine-gifts-hub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	fileVault   service.FileVault
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	FileVault   service.FileVault
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		fileVault:   params.FileVault,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// VerifyOrder checks the order exists, is paid, and belongs to the
// requester, then returns its display summary. Titles and images refresh
// from the current catalog, but the charged total is always the frozen
// order total.
func (s *orderService) VerifyOrder(ctx context.Context, input *usecase.VerifyOrderInput) (*usecase.VerifyOrderOutput, error) {
	order, err := s.verifyPaidOrder(ctx, input.OrderID, input.UserID)
	if err != nil {
		return nil, err
	}

	products, hasFiles := s.resolveProducts(ctx, order)

	items := make([]usecase.OrderLineView, 0, len(order.Items))
	for _, item := range order.Items {
		view := usecase.OrderLineView{
			ProductID: item.ProductID.String(),
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
		if product, ok := products[item.ProductID]; ok {
			view.Title = product.Title
			view.ImageURL = product.ImageURL
		}
		items = append(items, view)
	}

	return &usecase.VerifyOrderOutput{
		Order: &usecase.OrderView{
			ID:       order.ID.String(),
			Status:   string(order.Status),
			Total:    order.Total,
			Items:    items,
			HasFiles: hasFiles,
		},
	}, nil
}

// DownloadURL re-verifies the order and mints a signed URL for one
// purchased product's file. Every download request is authorized from
// scratch; a prior VerifyOrder call grants nothing.
func (s *orderService) DownloadURL(ctx context.Context, input *usecase.DownloadInput) (*usecase.DownloadOutput, error) {
	order, err := s.verifyPaidOrder(ctx, input.OrderID, input.UserID)
	if err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		// A malformed id is indistinguishable from one outside the order.
		return nil, domainerrors.ErrProductNotInOrder
	}
	if !order.ContainsProduct(productID) {
		return nil, domainerrors.ErrProductNotInOrder
	}

	products, err := s.productRepo.FindByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return nil, domainerrors.ErrCatalogReadFailed.WrapMessage("failed to load product for download")
	}
	if len(products) == 0 || !products[0].HasFile() {
		return nil, domainerrors.ErrFileNotAvailable
	}
	product := products[0]

	downloadURL, err := s.fileVault.SignedDownloadURL(ctx, product.FileURL)
	if err != nil {
		return nil, domainerrors.NewStorageError(err, err.Error())
	}

	s.log(ctx).Info("download URL issued",
		slog.String("order_id", order.ID.String()),
		slog.String("product_id", productID.String()),
	)

	return &usecase.DownloadOutput{
		DownloadURL: downloadURL,
		FileName:    downloadFileName(product),
	}, nil
}

// verifyPaidOrder loads a paid-family order and checks ownership. The
// not-found and not-paid cases are deliberately indistinguishable so
// order ids cannot be enumerated.
func (s *orderService) verifyPaidOrder(ctx context.Context, rawOrderID string, userID *uuid.UUID) (*entity.Order, error) {
	orderID, err := uuid.Parse(rawOrderID)
	if err != nil {
		return nil, domainerrors.ErrInvalidOrderID
	}

	order, err := s.orderRepo.FindPaidByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotVerified
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if !order.OwnedBy(userID) {
		return nil, domainerrors.ErrOrderAccessDenied
	}

	return order, nil
}

// resolveProducts fetches current catalog rows for the order's frozen
// lines. Lookup failures degrade to the snapshot rather than failing a
// read-only verification.
func (s *orderService) resolveProducts(ctx context.Context, order *entity.Order) (map[uuid.UUID]*entity.Product, bool) {
	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.log(ctx).Warn("failed to refresh product display data",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)

		return map[uuid.UUID]*entity.Product{}, false
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	hasFiles := false
	for _, product := range products {
		byID[product.ID] = product
		if product.HasFile() {
			hasFiles = true
		}
	}

	return byID, hasFiles
}

// downloadFileName derives a client-facing file name from the stored
// reference, falling back to the product title.
func downloadFileName(product *entity.Product) string {
	ref := product.FileURL
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}

	name := path.Base(ref)
	if name == "." || name == "/" || name == "" {
		return product.Title
	}

	return name
}
