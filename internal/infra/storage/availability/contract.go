package availability

import "github.com/fredartois/NBF-BookingService/pkg/txmanager"

// Переиспользуем интерфейс исполнителя запросов из txmanager
type DBExecutor = txmanager.DBExecutor
