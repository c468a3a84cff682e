// The package logger defines a simple logger with INFO, WARN and ERROR prints.
package logger

import (
	"io"
	"log"

	"github.com/natefinch/lumberjack"
)

const (
	defaultMaxSize = 50 // megabytes
	defaultMaxAge  = 30 // days
)

type Aggregate struct {
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
}

// New() returns an initialized Logger
func New(out io.Writer) *Aggregate {
	infoLogger := log.New(out, "INFO: ", log.LstdFlags)
	warnLogger := log.New(out, "WARN: ", log.LstdFlags)
	errorLogger := log.New(out, "ERROR: ", log.LstdFlags)

	return &Aggregate{
		InfoLogger:  infoLogger,
		WarnLogger:  warnLogger,
		ErrorLogger: errorLogger,
	}
}

// Info() prints an INFO log. A nil logger prints nothing.
func (l *Aggregate) Info(s string, v ...interface{}) {
	if l == nil {
		return
	}
	l.InfoLogger.Printf(s, v...)
}

// Warn() prints an WARN log. A nil logger prints nothing.
func (l *Aggregate) Warn(s string, v ...interface{}) {
	if l == nil {
		return
	}
	l.WarnLogger.Printf(s, v...)
}

// Error() prints an ERROR log. A nil logger prints nothing.
func (l *Aggregate) Error(s string, v ...interface{}) {
	if l == nil {
		return
	}
	l.ErrorLogger.Printf(s, v...)
}

// Init() initialise the logger and the rotating file it prints to.
// The returned file must be closed when done logging.
func Init(filePath string) (*Aggregate, io.WriteCloser) {
	file := &lumberjack.Logger{
		Filename: filePath,
		MaxSize:  defaultMaxSize,
		MaxAge:   defaultMaxAge,
	}
	return New(file), file
}
