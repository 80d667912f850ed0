package interfaces

// Logger is the structured logger the core writes to. Fields are flattened
// into the log entry by the implementation (logrus in production).
//
//	logger.Warn("Strategy failed", map[string]interface{}{
//		"strategy": "direct",
//		"error":    err.Error(),
//	})
type Logger interface {
	// Debug carries per-request detail: strategy attempts, outbound calls.
	Debug(msg string, fields map[string]interface{})

	Info(msg string, fields map[string]interface{})

	// Warn is used for recoverable failures such as a failed strategy.
	Warn(msg string, fields map[string]interface{})

	Error(msg string, fields map[string]interface{})
}
