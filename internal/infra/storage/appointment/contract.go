package appointment

import (
	"github.com/m04kA/SLN-CalendarService/pkg/dbmetrics"
)

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
