package ports

// AuthMetrics records authentication attempt outcomes.
type AuthMetrics interface {
	RecordAttempt(event string, success bool)
}
