package dynwhere

// Logger is compatible with go's log.Logger
type Logger interface {
	Printf(format string, v ...any)
}

var logOutput Logger

// SetLogger sets a global logger for debugging dynwhere, for example to see
// which conditions were skipped:
//
// dynwhere.SetLogger(log.New(os.Stderr, "dynwhere: ", log.LstdFlags|log.Lmsgprefix))
//
// Passing nil disables logging.
func SetLogger(l Logger) {
	logOutput = l
}

func debugLog(msg string, args ...any) {
	if d := logOutput; d != nil {
		d.Printf(msg, args...)
	}
}
