package worker

// Log Messages - Worker Pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
)

// Log Messages - Recalculation Worker
const (
	LogMsgRecalcStarting  = "Scheduled recalculation starting"
	LogMsgRecalcCompleted = "Scheduled recalculation completed"
	LogMsgRecalcSkipped   = "Scheduled recalculation skipped, previous pass still queued"
)
