package request

import (
	"github.com/mdemidkin1992/shareit/pkg/dbmetrics"
)

// DBExecutor исполнитель запросов: *dbmetrics.DB или транзакция
type DBExecutor = dbmetrics.DBExecutor
