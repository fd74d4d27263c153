package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	logs "storefront/internal/infra/log"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	engine    *validation.Engine
	publisher service.EventPublisher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Engine    *validation.Engine
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		engine:    params.Engine,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return logs.FromContextOrDefault(ctx, srv.logger)
}

// Save validates the user and stores it as a new document.
func (srv *userService) Save(ctx context.Context, user *entity.User) error {
	return srv.store(ctx, user, func(repo repository.UserRepository) error {
		return errors.Wrap(repo.Create(ctx, user), "failed to create user")
	})
}

// Update validates the user and replaces the stored document.
func (srv *userService) Update(ctx context.Context, user *entity.User) error {
	return srv.store(ctx, user, func(repo repository.UserRepository) error {
		return errors.Wrap(repo.Update(ctx, user), "failed to update user")
	})
}

func (srv *userService) store(ctx context.Context, user *entity.User, write func(repository.UserRepository) error) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.validate(ctx, user, repoFactory); err != nil {
			return err
		}

		return write(repoFactory.NewUserRepository())
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("User saved", slog.String("nationalID", user.NationalID), slog.Int("orders", len(user.Orders)))
	publishCommitted(ctx, srv.publisher, srv.log(ctx), newDocumentEvent(service.EventDocumentSaved, entity.KindUser, user.NationalID))

	return nil
}

func (srv *userService) validate(ctx context.Context, user *entity.User, repoFactory repository.RepositoryFactory) error {
	if err := srv.engine.ValidateUser(ctx, user, repoFactory.NewOrderRepository()); err != nil {
		srv.log(ctx).Warn("User rejected", slog.String("nationalID", user.NationalID), slog.Any("error", err))

		return err
	}

	return nil
}

// Get returns the user with the given national identifier.
func (srv *userService) Get(ctx context.Context, nationalID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by national ID")
	}

	return user, nil
}

// List returns every user.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Delete removes the user. Orders are not owned by users and stay.
func (srv *userService) Delete(ctx context.Context, nationalID string) error {
	if err := srv.userRepo.Delete(ctx, nationalID); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("nationalID", nationalID))
	publishCommitted(ctx, srv.publisher, srv.log(ctx), newDocumentEvent(service.EventDocumentDeleted, entity.KindUser, nationalID))

	return nil
}

// FindByOrder returns the users referencing the order.
func (srv *userService) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.User, error) {
	users, err := srv.userRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by order")
	}

	return users, nil
}

// RecordAccess appends an access timestamp to the user and stores it again.
// The user is revalidated, so a user whose referenced orders vanished is rejected.
func (srv *userService) RecordAccess(ctx context.Context, nationalID string, at time.Time) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByNationalID(ctx, nationalID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by national ID")
		}

		user.LastAccesses = append(user.LastAccesses, at.UTC())
		if err := srv.validate(ctx, user, repoFactory); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User access recorded", slog.String("nationalID", nationalID), slog.Int("accesses", len(updated.LastAccesses)))
	publishCommitted(ctx, srv.publisher, srv.log(ctx), newDocumentEvent(service.EventDocumentSaved, entity.KindUser, nationalID))

	return updated, nil
}
