package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of connection pool pressure. WaitedMillis is the
// cumulative time callers spent blocked waiting for a connection; a growing
// value under a busy reconciler means the pool is undersized for the tile
// fan-out.
type PoolStats struct {
	Open         int   `json:"open"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	MaxOpen      int   `json:"max_open"`
	WaitCount    int64 `json:"wait_count"`
	WaitedMillis int64 `json:"waited_ms"`
}

// HealthStatus reports database reachability and pool pressure for the
// health endpoint.
type HealthStatus struct {
	Status     string    `json:"status"`
	PingMillis int64     `json:"ping_ms"`
	Pool       PoolStats `json:"pool"`
}

// Health pings the database and snapshots its pool statistics.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	started := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:     "unhealthy",
			PingMillis: time.Since(started).Milliseconds(),
		}, err
	}

	st := db.Stats()
	return &HealthStatus{
		Status:     "healthy",
		PingMillis: time.Since(started).Milliseconds(),
		Pool: PoolStats{
			Open:         st.OpenConnections,
			InUse:        st.InUse,
			Idle:         st.Idle,
			MaxOpen:      st.MaxOpenConnections,
			WaitCount:    st.WaitCount,
			WaitedMillis: st.WaitDuration.Milliseconds(),
		},
	}, nil
}
