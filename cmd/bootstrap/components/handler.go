package components

import (
	"lms-api/internal/handler"
	"lms-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStudentHandler,
		api.NewCourseHandler,
		api.NewEnrollmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
