package impl

import "go.uber.org/fx"

// Module provides the use case FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewCascadeManager,
		NewProductService,
		NewOrderService,
		NewUserService,
		NewDocumentStore,
	),
)
