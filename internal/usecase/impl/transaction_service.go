package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type transactionService struct {
	txManager       repository.TransactionManager
	transactionRepo repository.TransactionRepository
	publisher       service.EventPublisher
	qrCodeService   service.QRCodeService
	cache           service.ProductCache
	logger          *slog.Logger
	now             func() time.Time
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	TransactionRepo repository.TransactionRepository
	Publisher       service.EventPublisher
	QRCodeService   service.QRCodeService
	Cache           service.ProductCache
	Logger          *slog.Logger
}

// NewTransactionService creates a new checkout service
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		txManager:       params.TxManager,
		transactionRepo: params.TransactionRepo,
		publisher:       params.Publisher,
		qrCodeService:   params.QRCodeService,
		cache:           params.Cache,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *transactionService) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Transaction], error) {
	transactions, total, err := srv.transactionRepo.List(ctx, spec, query.Scope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return usecase.NewListOutput(transactions, total, spec), nil
}

func (srv *transactionService) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Transaction, error) {
	transaction, err := srv.transactionRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	return transaction, nil
}

func (srv *transactionService) Checkout(ctx context.Context, callerID int64, input *usecase.CheckoutInput) (*entity.Transaction, error) {
	lines := mergeLines(input.Lines)
	if len(lines) == 0 {
		return nil, domainerrors.NewValidationError().Add("product_transactions", "At least one product is required.")
	}

	transaction := &entity.Transaction{
		UserID:        callerID,
		AddressID:     input.AddressID,
		ShippingCost:  input.ShippingCost,
		Status:        constants.TransactionStatusInProgress,
		InvoiceNumber: entity.NewInvoiceNumber(srv.now()),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		address, err := repoFactory.AddressRepo().FindByID(ctx, input.AddressID)
		if err != nil {
			return errors.Wrap(err, "failed to find shipping address")
		}
		if err := ensureOwner(address, callerID); err != nil {
			return errors.Wrap(err, "address belongs to another user")
		}

		qty, subtotal := 0, 0
		for _, line := range lines {
			price, err := srv.reserve(ctx, repoFactory.ProductRepo(), line)
			if err != nil {
				return err
			}
			qty += line.Qty
			subtotal += price * line.Qty
		}

		transaction.QtyTransaction = valueOr(input.QtyTransaction, qty)
		transaction.SubtotalProducts = valueOr(input.SubtotalProducts, subtotal)
		transaction.TotalPrice = valueOr(input.TotalPrice, subtotal+input.ShippingCost)

		if err := repoFactory.TransactionRepo().Create(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to create transaction")
		}

		items := make([]*entity.ProductTransaction, 0, len(lines))
		for _, line := range lines {
			items = append(items, &entity.ProductTransaction{
				TransactionID: transaction.ID,
				ProductID:     line.ProductID,
				ProductQty:    line.Qty,
			})
		}
		if err := repoFactory.ProductTransactionRepo().CreateBatch(ctx, items); err != nil {
			return errors.Wrap(err, "failed to create product transactions")
		}
		transaction.ProductTransactions = items

		return clearCart(ctx, repoFactory.CartRepo(), callerID, lines)
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Int64("userID", callerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Checkout completed",
		slog.Int64("transactionID", transaction.ID),
		slog.String("invoiceNumber", transaction.InvoiceNumber),
		slog.Int("totalPrice", transaction.TotalPrice),
	)

	for _, line := range lines {
		srv.invalidate(ctx, line.ProductID)
	}
	srv.publish(ctx, constants.EventTransactionCreated, transaction, transaction.ProductTransactions)

	return transaction, nil
}

// reserve takes the line's stock and returns the unit price.
func (srv *transactionService) reserve(ctx context.Context, productRepo repository.ProductRepository, line usecase.CheckoutLine) (int, error) {
	if err := takeStock(ctx, productRepo, line.ProductID, line.Qty); err != nil {
		srv.log(ctx).Warn("Checkout line rejected", slog.Int64("productID", line.ProductID), slog.Int("qty", line.Qty))

		return 0, err
	}

	product, err := productRepo.FindByID(ctx, line.ProductID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find product")
	}

	return product.Price, nil
}

func clearCart(ctx context.Context, cartRepo repository.CartRepository, userID int64, lines []usecase.CheckoutLine) error {
	for _, line := range lines {
		removed, err := cartRepo.DeleteByUserAndProduct(ctx, userID, line.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to remove cart row")
		}
		if removed == 0 {
			return domainerrors.ErrCartItemMissing.WithDetails(map[string]int64{"product_id": line.ProductID})
		}
	}

	return nil
}

// Complete locks the header, swaps the status and creates the rating stubs in
// one database transaction.
func (srv *transactionService) Complete(ctx context.Context, callerID, id int64) (*entity.Transaction, error) {
	var (
		transaction *entity.Transaction
		lines       []*entity.ProductTransaction
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transactionRepo := repoFactory.TransactionRepo()

		var err error
		transaction, err = transactionRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to lock transaction")
		}
		if err := ensureOwner(transaction, callerID); err != nil {
			return errors.Wrap(err, "transaction belongs to another user")
		}
		if transaction.IsComplete() {
			return domainerrors.ErrTransactionAlreadyComplete
		}

		swapped, err := transactionRepo.MarkComplete(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to complete transaction")
		}
		if !swapped {
			return domainerrors.ErrTransactionAlreadyComplete
		}
		transaction.Status = constants.TransactionStatusComplete

		lines, err = repoFactory.ProductTransactionRepo().FindByTransaction(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load product transactions")
		}

		stubs := make([]*entity.Rating, 0, len(lines))
		for _, line := range lines {
			stubs = append(stubs, entity.NewRatingStub(transaction.UserID, line.ProductID, transaction.ID))
		}

		return repoFactory.RatingRepo().CreateBatch(ctx, stubs)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute transaction completion")
	}

	srv.log(ctx).Info("Transaction completed", slog.Int64("transactionID", id), slog.Int("ratingStubs", len(lines)))
	srv.publish(ctx, constants.EventTransactionCompleted, transaction, lines)

	return transaction, nil
}

func (srv *transactionService) Destroy(ctx context.Context, callerID, id int64) (*entity.Transaction, error) {
	transaction, err := srv.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if err := srv.transactionRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete transaction")
	}

	srv.log(ctx).Info("Transaction deleted", slog.Int64("transactionID", id))

	return transaction, nil
}

func (srv *transactionService) InvoiceQR(ctx context.Context, callerID, id int64) ([]byte, error) {
	transaction, err := srv.findOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateInvoiceQR(service.InvoiceQR{
		TransactionID: transaction.ID,
		InvoiceNumber: transaction.InvoiceNumber,
		TotalPrice:    transaction.TotalPrice,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invoice QR code")
	}

	return png, nil
}

func (srv *transactionService) findOwned(ctx context.Context, callerID, id int64) (*entity.Transaction, error) {
	transaction, err := srv.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find transaction")
	}
	if err := ensureOwner(transaction, callerID); err != nil {
		return nil, errors.Wrap(err, "transaction belongs to another user")
	}

	return transaction, nil
}

// publish runs after commit. A failed publish is logged and never undoes the write.
func (srv *transactionService) publish(ctx context.Context, eventType string, transaction *entity.Transaction, lines []*entity.ProductTransaction) {
	productIDs := make([]int64, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	event := &service.TransactionEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		TransactionID: transaction.ID,
		UserID:        transaction.UserID,
		InvoiceNumber: transaction.InvoiceNumber,
		Status:        transaction.Status,
		TotalPrice:    transaction.TotalPrice,
		ProductIDs:    productIDs,
	}

	if err := srv.publisher.PublishTransactionEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish transaction event",
			slog.String("type", eventType),
			slog.Int64("transactionID", transaction.ID),
			slog.Any("error", err),
		)
	}
}

func (srv *transactionService) invalidate(ctx context.Context, productID int64) {
	if err := srv.cache.Invalidate(ctx, productID); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Int64("productID", productID), slog.Any("error", err))
	}
}

// mergeLines sums repeated products so each product is reserved and removed
// from the cart once. Order of first appearance is kept.
func mergeLines(lines []usecase.CheckoutLine) []usecase.CheckoutLine {
	index := make(map[int64]int, len(lines))
	merged := make([]usecase.CheckoutLine, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.ProductID]; ok {
			merged[i].Qty += line.Qty

			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	return merged
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}

	return *v
}
