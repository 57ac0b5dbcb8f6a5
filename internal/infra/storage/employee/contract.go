package employee

import (
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
