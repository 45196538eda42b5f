package booking

import (
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
)

// DBExecutor исполнитель запросов: *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor
