package components

import (
	"franchise-store/internal/infra/readstore"
	"franchise-store/internal/infra/repository"
	"franchise-store/internal/usecase"
	"franchise-store/internal/usecase/commands"
	"franchise-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewProfileRepository,
			fx.As(new(usecase.ProfileReader)),
		),
		fx.Annotate(
			repository.NewLoyaltyRepository,
			fx.As(new(commands.LoyaltyRepository)),
			fx.As(new(commands.LoyaltyReader)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewSecurityEventRepository,
			fx.As(new(usecase.SecurityEventSink)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)
