package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Save_WithOrders(t *testing.T) {
	fx := createTestStore(t)
	seedCatalog(t, fx)
	ctx := context.Background()

	order := newOrder("1099", line(macbook(), 1, "1099", "1099"))
	require.NoError(t, fx.orders.Save(ctx, order))

	user := newUser("71534484E", order.ID)
	require.NoError(t, fx.users.Save(ctx, user))

	got, err := fx.users.Get(ctx, "71534484E")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_Save_NIE(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, fx.users.Save(ctx, newUser("X1234567L")))

	users, err := fx.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "X1234567L", users[0].NationalID)
}

func TestUserService_Save_Rejected(t *testing.T) {
	badCard := newUser("53321817C")
	badCard.CreditCards[0].Month = "13"
	badCard.CreditCards[0].CVV = "12"

	badBirthDate := newUser("71475686N")
	badBirthDate.BirthDate = "12/04/1990"

	noName := newUser("71475686N")
	noName.Name = ""

	tests := []struct {
		name    string
		user    *entity.User
		wantErr error
	}{
		{name: "wrong control letter", user: newUser("71534484X"), wantErr: domainerrors.ErrInvalidChecksum},
		{name: "malformed national id", user: newUser("7153448E"), wantErr: domainerrors.ErrConstraintViolation},
		{name: "referenced order does not exist", user: newUser("71534484E", uuid.New()), wantErr: domainerrors.ErrNotFound},
		{name: "bad credit card", user: badCard, wantErr: domainerrors.ErrConstraintViolation},
		{name: "bad birth date", user: badBirthDate, wantErr: domainerrors.ErrConstraintViolation},
		{name: "missing name", user: noName, wantErr: domainerrors.ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStore(t)
			ctx := context.Background()

			err := fx.users.Save(ctx, tt.user)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			users, err := fx.users.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestUserService_Save_ReportsEveryFieldViolation(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	user := newUser("71534484E")
	user.FirstSurname = ""
	user.CreditCards[0].Number = "1234"

	err := fx.users.Save(ctx, user)

	var violations domainerrors.ConstraintViolations
	require.ErrorAs(t, err, &violations)
	assert.ElementsMatch(t, []string{"FirstSurname", "CreditCards[0].Number"}, violations.Fields())
}

func TestUserService_Save_Duplicate(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, fx.users.Save(ctx, newUser("71534484E")))
	assert.ErrorIs(t, fx.users.Save(ctx, newUser("71534484E")), domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Update(t *testing.T) {
	fx := createTestStore(t)
	seedCatalog(t, fx)
	ctx := context.Background()

	user := newUser("71534484E")
	require.NoError(t, fx.users.Save(ctx, user))

	order := newOrder("799", line(iphone(), 1, "799", "799"))
	require.NoError(t, fx.orders.Save(ctx, order))

	user.Orders = append(user.Orders, order.ID)
	require.NoError(t, fx.users.Update(ctx, user))

	referencing, err := fx.users.FindByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, referencing, 1)
	assert.Equal(t, "71534484E", referencing[0].NationalID)

	user.Orders = append(user.Orders, uuid.New())
	assert.ErrorIs(t, fx.users.Update(ctx, user), domainerrors.ErrNotFound)

	assert.ErrorIs(t, fx.users.Update(ctx, newUser("53321817C")), domainerrors.ErrUserNotFound)
}

func TestUserService_RecordAccess(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, fx.users.Save(ctx, newUser("71534484E")))

	first := time.Date(2017, 6, 20, 18, 32, 10, 0, time.UTC)
	second := first.Add(time.Hour)

	_, err := fx.users.RecordAccess(ctx, "71534484E", first)
	require.NoError(t, err)
	updated, err := fx.users.RecordAccess(ctx, "71534484E", second)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{first, second}, updated.LastAccesses)

	got, err := fx.users.Get(ctx, "71534484E")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{first, second}, got.LastAccesses)

	_, err = fx.users.RecordAccess(ctx, "53321817C", first)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	fx := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, fx.users.Save(ctx, newUser("71534484E")))
	require.NoError(t, fx.users.Delete(ctx, "71534484E"))

	_, err := fx.users.Get(ctx, "71534484E")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, []string{service.EventDocumentSaved, service.EventDocumentDeleted}, fx.publisher.types())
}
