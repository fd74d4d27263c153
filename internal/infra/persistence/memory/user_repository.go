package memory

import (
	"cmp"
	"context"
	"slices"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

type userRepository struct {
	view view
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.users[user.NationalID]; ok {
			return domainerrors.ErrUserAlreadyExists.WithDetails(user.NationalID)
		}
		s.users[user.NationalID] = cloneUser(user)

		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.users[user.NationalID]; !ok {
			return domainerrors.ErrUserNotFound.WithDetails(user.NationalID)
		}
		s.users[user.NationalID] = cloneUser(user)

		return nil
	})
}

func (r *userRepository) FindByNationalID(ctx context.Context, nationalID string) (*entity.User, error) {
	var found *entity.User
	err := r.view.read(ctx, func(s *state) error {
		user, ok := s.users[nationalID]
		if !ok {
			return domainerrors.ErrUserNotFound.WithDetails(nationalID)
		}
		found = cloneUser(user)

		return nil
	})

	return found, err
}

func (r *userRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.User, error) {
	return r.collect(ctx, func(u *entity.User) bool { return u.HasOrder(orderID) })
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.collect(ctx, func(*entity.User) bool { return true })
}

func (r *userRepository) collect(ctx context.Context, keep func(*entity.User) bool) ([]*entity.User, error) {
	var users []*entity.User
	err := r.view.read(ctx, func(s *state) error {
		users = make([]*entity.User, 0, len(s.users))
		for _, user := range s.users {
			if keep(user) {
				users = append(users, cloneUser(user))
			}
		}

		return nil
	})
	slices.SortFunc(users, func(a, b *entity.User) int {
		return cmp.Compare(a.NationalID, b.NationalID)
	})

	return users, err
}

func (r *userRepository) Delete(ctx context.Context, nationalID string) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.users[nationalID]; !ok {
			return domainerrors.ErrUserNotFound.WithDetails(nationalID)
		}
		delete(s.users, nationalID)

		return nil
	})
}
