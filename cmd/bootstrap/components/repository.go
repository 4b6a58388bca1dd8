package components

import (
	"lms-api/internal/infra/repository"
	"lms-api/internal/infra/uow"
	"lms-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewTables,
		// UnitOfWork
		fx.Annotate(
			uow.NewMemoryUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)
