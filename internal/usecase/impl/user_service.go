package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/query"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) List(ctx context.Context, spec *query.Spec) (*usecase.ListOutput[*entity.User], error) {
	users, total, err := srv.userRepo.List(ctx, spec, query.Scope{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.NewListOutput(users, total, spec), nil
}

func (srv *userService) Show(ctx context.Context, id int64, spec *query.Spec) (*entity.User, error) {
	user, err := srv.userRepo.Get(ctx, id, spec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

func (srv *userService) Store(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user, err := createUser(ctx, srv.userRepo, srv.hasher, input)
	if err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID))

	return user, nil
}

func (srv *userService) Update(ctx context.Context, callerID, id int64, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.findSelf(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	changed := dirty(
		apply(&user.Name, input.Name),
		apply(&user.Email, input.Email),
		apply(&user.Phone, input.Phone),
	)

	if input.Password != nil && !srv.hasher.Check(*input.Password, user.PasswordHash) {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
		changed = true
	}

	if !changed {
		return user, nil
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) Destroy(ctx context.Context, callerID, id int64) (*entity.User, error) {
	user, err := srv.findSelf(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("userID", id))

	return user, nil
}

func (srv *userService) findSelf(ctx context.Context, callerID, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if err := ensureOwner(user, callerID); err != nil {
		return nil, errors.Wrap(err, "users may only change themselves")
	}

	return user, nil
}

// createUser hashes the password and persists a new user with a fresh remember token.
func createUser(ctx context.Context, userRepo repository.UserRepository, hasher service.PasswordHasher, input *usecase.CreateUserInput) (*entity.User, error) {
	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PasswordHash:  hash,
		RememberToken: uuid.NewString(),
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}
