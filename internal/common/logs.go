package common

var noopServiceLog chan ServiceLog

func init() {
	noopServiceLog = make(chan ServiceLog, 64)
	go drainNoopServiceLog()
}

// GetNoopServiceLog returns a sink channel for callers that don't care
// about service logs; everything sent to it is discarded.
func GetNoopServiceLog() chan ServiceLog {
	return noopServiceLog
}

func drainNoopServiceLog() {
	for range noopServiceLog {
	}
}

func StopNoopServiceLog() {
	close(noopServiceLog)
}
