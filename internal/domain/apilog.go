package domain

import "time"

const MaxLogEntries = 50

type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusError   LogStatus = "error"
)

// APILogEntry records one acquirer or gateway call. Request and Response are
// always redacted before an entry is built.
type APILogEntry struct {
	ID        string
	Timestamp time.Time
	Method    string
	Endpoint  string
	Request   any
	Response  any
	Status    LogStatus
	Duration  time.Duration
}

func (e APILogEntry) DurationMillis() int64 {
	return e.Duration.Milliseconds()
}
