package get_feed

import (
	"github.com/m04kA/SLN-CalendarService/internal/feed"
)

// SnapshotProvider отдает последний применённый снимок ленты записей
type SnapshotProvider interface {
	Current() *feed.Snapshot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
