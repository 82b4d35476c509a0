package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productTransactionService struct {
	txManager repository.TransactionManager
	lineRepo  repository.ProductTransactionRepository
	cache     service.ProductCache
	logger    *slog.Logger
}

// ProductTransactionServiceParams holds dependencies for ProductTransactionService, injected by Fx.
type ProductTransactionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	LineRepo  repository.ProductTransactionRepository
	Cache     service.ProductCache
	Logger    *slog.Logger
}

// NewProductTransactionService creates a new line item service
func NewProductTransactionService(params ProductTransactionServiceParams) usecase.ProductTransactionUsecase {
	return &productTransactionService{
		txManager: params.TxManager,
		lineRepo:  params.LineRepo,
		cache:     params.Cache,
		logger:    params.Logger,
	}
}

func (srv *productTransactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productTransactionService) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.ProductTransaction], error) {
	lines, total, err := srv.lineRepo.List(ctx, spec, query.Scope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product transactions")
	}

	return usecase.NewListOutput(lines, total, spec), nil
}

func (srv *productTransactionService) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.ProductTransaction, error) {
	line, err := srv.lineRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product transaction")
	}

	return line, nil
}

// Store appends a line to the caller's inprogress transaction, taking stock
// the same way checkout does.
func (srv *productTransactionService) Store(ctx context.Context, callerID int64, input *usecase.CreateProductTransactionInput) (*entity.ProductTransaction, error) {
	line := &entity.ProductTransaction{
		TransactionID: input.TransactionID,
		ProductID:     input.ProductID,
		ProductQty:    input.ProductQty,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		transaction, err := repoFactory.TransactionRepo().FindByIDForUpdate(ctx, input.TransactionID)
		if err != nil {
			return errors.Wrap(err, "failed to lock transaction")
		}
		if err := ensureOwner(transaction, callerID); err != nil {
			return errors.Wrap(err, "transaction belongs to another user")
		}
		if transaction.IsComplete() {
			return domainerrors.ErrTransactionAlreadyComplete
		}

		if err := takeStock(ctx, repoFactory.ProductRepo(), input.ProductID, input.ProductQty); err != nil {
			return err
		}

		return repoFactory.ProductTransactionRepo().CreateBatch(ctx, []*entity.ProductTransaction{line})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product transaction store")
	}

	if err := srv.cache.Invalidate(ctx, line.ProductID); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Int64("productID", line.ProductID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Product transaction created",
		slog.Int64("productTransactionID", line.ID),
		slog.Int64("transactionID", line.TransactionID),
		slog.Int64("productID", line.ProductID),
	)

	return line, nil
}

func (srv *productTransactionService) Update(ctx context.Context, _, id int64) (*entity.ProductTransaction, error) {
	return nil, srv.immutable(ctx, id)
}

func (srv *productTransactionService) Destroy(ctx context.Context, _, id int64) (*entity.ProductTransaction, error) {
	return nil, srv.immutable(ctx, id)
}

// immutable reports 404 for unknown rows and a conflict for existing ones.
func (srv *productTransactionService) immutable(ctx context.Context, id int64) error {
	if _, err := srv.lineRepo.FindByID(ctx, id); err != nil {
		return errors.Wrap(err, "failed to find product transaction")
	}

	return domainerrors.ErrLineItemImmutable
}
