package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type scenarioFixture struct {
	scenario *Scenario
	users    usecase.UserUsecase
	orders   usecase.OrderUsecase
}

func newScenarioFixture(t *testing.T) scenarioFixture {
	t.Helper()

	cfg := &config.Config{
		Store:  &config.StoreConfig{Backend: config.BackendMemory},
		PubSub: &config.PubSubConfig{Provider: pubsub.ProviderNoop},
	}

	var f scenarioFixture
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			context.Background,
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
			validation.NewEngine,
			NewScenario,
		),
		persistence.Module,
		pubsub.Module,
		impl.Module,
		fx.Populate(&f.scenario, &f.users, &f.orders),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return f
}

func TestScenario_Run(t *testing.T) {
	f := newScenarioFixture(t)

	report, err := f.scenario.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Products)
	assert.Equal(t, 6, report.Orders)
	assert.Equal(t, 3, report.Users)
	assert.Empty(t, report.Accepted)

	require.Len(t, report.Rejections, 6)
	wantErrs := []error{
		domainerrors.ErrInvalidChecksum,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrInvalidChecksum,
	}
	for i, want := range wantErrs {
		assert.ErrorIs(t, report.Rejections[i].Err, want, report.Rejections[i].Name)
	}

	assert.Equal(t, 2, report.OrdersBefore)
	assert.Equal(t, 1, report.OrdersAfter)
}

func TestScenario_Run_DeletedOrderIsGone(t *testing.T) {
	f := newScenarioFixture(t)
	ctx := context.Background()

	report, err := f.scenario.Run(ctx)
	require.NoError(t, err)

	_, err = f.orders.Get(ctx, report.DeletedOrder)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 5)

	referencing, err := f.users.FindByOrder(ctx, report.DeletedOrder)
	require.NoError(t, err)
	assert.Empty(t, referencing)

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestScenario_Run_TwiceFailsOnDuplicateProduct(t *testing.T) {
	f := newScenarioFixture(t)
	ctx := context.Background()

	_, err := f.scenario.Run(ctx)
	require.NoError(t, err)

	_, err = f.scenario.Run(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)
}
