package components

import (
	"lms-api/internal/pkg/clock"
	"lms-api/internal/usecase/commands"
	"lms-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewStudentUseCase,
		commands.NewCourseUseCase,
		commands.NewEnrollmentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStudentQueries,
		queries.NewCourseQueries,
		queries.NewEnrollmentQueries,
	),
)
