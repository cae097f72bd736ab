package config

import "time"

// Database pool defaults
const (
	DefaultDBMaxConns    = 10
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute
)

// Worker defaults
const (
	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 16
)

// DefaultRecalcInterval is how often the background recalculation pass runs
const DefaultRecalcInterval = "15m"
