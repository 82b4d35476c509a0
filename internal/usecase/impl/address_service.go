package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Logger      *slog.Logger
}

// NewAddressService creates a new address service
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *addressService) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.Address], error) {
	addresses, total, err := srv.addressRepo.List(ctx, spec, query.Scope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return usecase.NewListOutput(addresses, total, spec), nil
}

func (srv *addressService) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.Address, error) {
	address, err := srv.addressRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get address")
	}

	return address, nil
}

func (srv *addressService) Store(ctx context.Context, callerID int64, input *usecase.CreateAddressInput) (*entity.Address, error) {
	address := &entity.Address{
		UserID:     callerID,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created", slog.Int64("addressID", address.ID), slog.Int64("userID", callerID))

	return address, nil
}

func (srv *addressService) Update(ctx context.Context, callerID, id int64, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}
	if err := ensureOwner(address, callerID); err != nil {
		return nil, errors.Wrap(err, "address belongs to another user")
	}

	changed := dirty(
		apply(&address.Street, input.Street),
		apply(&address.City, input.City),
		apply(&address.PostalCode, input.PostalCode),
	)
	if !changed {
		return address, nil
	}

	if err := srv.addressRepo.Update(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

func (srv *addressService) Destroy(ctx context.Context, callerID, id int64) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}
	if err := ensureOwner(address, callerID); err != nil {
		return nil, errors.Wrap(err, "address belongs to another user")
	}

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("Address deleted", slog.Int64("addressID", id))

	return address, nil
}
