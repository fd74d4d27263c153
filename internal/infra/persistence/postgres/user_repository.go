package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/retry"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db     *gorm.DB
	policy retry.Policy
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB, policy retry.Policy) repository.UserRepository {
	return &userRepository{db: db, policy: policy}
}

func (repo *userRepository) run(ctx context.Context, op func(db *gorm.DB) error) error {
	return retry.Do(ctx, repo.policy, isTransient, func(ctx context.Context) error {
		return op(repo.db.WithContext(ctx))
	})
}

// Create persists a new user with its cards, accesses and order references.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.run(ctx, func(db *gorm.DB) error { return db.Create(userM).Error }); err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WithDetails(user.NationalID)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// Update replaces every column of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	var affected int64
	err := repo.run(ctx, func(db *gorm.DB) error {
		result := db.Model(&model.UserModel{NationalID: user.NationalID}).
			Select("*").
			Omit("national_id", "created_at").
			Updates(userM)
		affected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if affected == 0 {
		return domainerrors.ErrUserNotFound.WithDetails(user.NationalID)
	}

	return nil
}

// FindByNationalID retrieves a single user by national identifier.
func (repo *userRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.run(ctx, func(db *gorm.DB) error {
		return db.Where("national_id = ?", nationalID).First(&userM).Error
	})
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails(nationalID)
		}

		return nil, errors.Wrap(err, "failed to find user by national id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM)
}

// FindByOrder returns every user whose order list contains orderID.
func (repo *userRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.User, error) {
	return repo.find(ctx, "failed to find users by order", func(db *gorm.DB) *gorm.DB {
		return db.Where("? = ANY(order_ids)", orderID.String())
	})
}

// List returns every user ordered by national identifier.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return repo.find(ctx, "failed to list users", func(db *gorm.DB) *gorm.DB { return db })
}

func (repo *userRepository) find(ctx context.Context, failure string, scope func(*gorm.DB) *gorm.DB) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.run(ctx, func(db *gorm.DB) error {
		return scope(db).Order("national_id").Find(&userMs).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, failure)
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		user, err := toUserDomain(&userMs[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// Delete removes a user.
func (repo *userRepository) Delete(ctx context.Context, nationalID string) error {
	var affected int64
	err := repo.run(ctx, func(db *gorm.DB) error {
		result := db.Where("national_id = ?", nationalID).Delete(&model.UserModel{})
		affected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if affected == 0 {
		return domainerrors.ErrUserNotFound.WithDetails(nationalID)
	}

	return nil
}

func fromUserDomain(u *entity.User) *model.UserModel {
	accesses := make(datatypes.JSONSlice[time.Time], 0, len(u.LastAccesses))
	for _, at := range u.LastAccesses {
		accesses = append(accesses, at.UTC())
	}

	cards := make(datatypes.JSONSlice[model.CreditCardModel], 0, len(u.CreditCards))
	for _, c := range u.CreditCards {
		cards = append(cards, model.CreditCardModel{
			FullName: c.FullName,
			Number:   c.Number,
			Month:    c.Month,
			Year:     c.Year,
			CVV:      c.CVV,
		})
	}

	orderIDs := make(pq.StringArray, 0, len(u.Orders))
	for _, id := range u.Orders {
		orderIDs = append(orderIDs, id.String())
	}

	return &model.UserModel{
		NationalID:    u.NationalID,
		Name:          u.Name,
		FirstSurname:  u.FirstSurname,
		SecondSurname: u.SecondSurname,
		BirthDate:     u.BirthDate,
		LastAccesses:  accesses,
		CreditCards:   cards,
		OrderIDs:      orderIDs,
	}
}

func toUserDomain(m *model.UserModel) (*entity.User, error) {
	user := &entity.User{
		NationalID:    m.NationalID,
		Name:          m.Name,
		FirstSurname:  m.FirstSurname,
		SecondSurname: m.SecondSurname,
		BirthDate:     m.BirthDate,
	}

	for _, at := range m.LastAccesses {
		user.LastAccesses = append(user.LastAccesses, at.UTC())
	}

	for _, c := range m.CreditCards {
		user.CreditCards = append(user.CreditCards, entity.CreditCard{
			FullName: c.FullName,
			Number:   c.Number,
			Month:    c.Month,
			Year:     c.Year,
			CVV:      c.CVV,
		})
	}

	for _, raw := range m.OrderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "user %s holds a malformed order id %q", m.NationalID, raw)
		}
		user.Orders = append(user.Orders, id)
	}

	return user, nil
}
