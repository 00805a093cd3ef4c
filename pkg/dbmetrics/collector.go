package dbmetrics

import (
	"database/sql"
	"time"

	"github.com/agendahub/TenantBookingService/pkg/metrics"
)

// defaultInterval период опроса статистики connection pool
const defaultInterval = 15 * time.Second

// CollectPoolStats запускает фоновый сбор статистики connection pool БД
// Завершается при закрытии канала stop
func CollectPoolStats(db *sql.DB, m *metrics.Metrics, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(defaultInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConnections.Set(float64(stats.OpenConnections))
				m.DBInUse.Set(float64(stats.InUse))
				m.DBIdle.Set(float64(stats.Idle))
				m.DBWaitCount.Set(float64(stats.WaitCount))
			case <-stop:
				return
			}
		}
	}()
}
