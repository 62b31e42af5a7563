package log

import (
	"io"
	"log"
	"os"
)

const (
	traceEnvVar = "SNAPFLOW_TRACE"
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

func init() {
	InitLog()
}

// InitLog sets up the package level loggers. Trace output is discarded
// unless the SNAPFLOW_TRACE environment variable is set to 1.
func InitLog() {
	traceHandle := io.Discard
	if os.Getenv(traceEnvVar) == "1" {
		traceHandle = os.Stdout
	}

	Trace = log.New(traceHandle, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(os.Stdout, "", 0)
	Warning = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime)
	Error = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
