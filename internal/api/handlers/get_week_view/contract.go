package get_week_view

import (
	"context"

	buildWeekView "github.com/m04kA/SLN-CalendarService/internal/usecase/build_week_view"
)

type BuildWeekViewUseCase interface {
	Execute(ctx context.Context, req buildWeekView.Request) (*buildWeekView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
