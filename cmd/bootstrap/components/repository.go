package components

import (
	"nft-market/internal/infra/readstore"
	"nft-market/internal/infra/repository"
	"nft-market/internal/usecase/commands"
	"nft-market/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewOwnershipRepository,
			fx.As(new(commands.OwnershipRepository)),
		),
		fx.Annotate(
			readstore.NewOwnershipReadStore,
			fx.As(new(queries.OwnershipReadStore)),
		),
	),
)
