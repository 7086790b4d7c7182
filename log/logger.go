// Package log configures leveled logging for the binaries and the packages
// they drive.
package log

import (
	"io"

	"github.com/alexcesaro/log"
	"github.com/alexcesaro/log/golog"
	"gopkg.in/natefinch/lumberjack.v2"

	tcpchat "github.com/shazow/tcp-chat"
	"github.com/shazow/tcp-chat/chat"
	"github.com/shazow/tcp-chat/tcpd"
)

var logLevels = []log.Level{
	log.Warning,
	log.Info,
	log.Debug,
}

// Logger Global Logger
var Logger *golog.Logger

// SetLogger Set the global logger
func SetLogger(l *golog.Logger) {
	Logger = l
	tcpchat.SetLogger(l)
}

// Level returns the level enabled by numVerbose -v flags.
func Level(numVerbose int) log.Level {
	if numVerbose >= len(logLevels) {
		numVerbose = len(logLevels) - 1
	}
	return logLevels[numVerbose]
}

// RotatingFile returns a writer appending to path, rotated by size.
func RotatingFile(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		LocalTime:  true,
	}
}

// Init Initialize the global logger
func Init(numVerbose int, out io.Writer) {
	logLevel := Level(numVerbose)
	SetLogger(golog.New(out, logLevel))

	if logLevel == log.Debug {
		// Enable logging from submodules
		chat.SetLogger(out)
		tcpd.SetLogger(out)
	}
}
