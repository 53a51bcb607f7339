package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger can be modified by external for testing. Output goes to stderr:
// when the MCP server runs over stdio, stdout carries the protocol stream
// and must stay clean.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
}

func SetLogLevel(level string) {
	switch level {
	case "TRACE":
		Logger.SetLevel(logrus.TraceLevel)
	case "DEBUG":
		Logger.SetLevel(logrus.DebugLevel)
	case "INFO":
		Logger.SetLevel(logrus.InfoLevel)
	case "WARN":
		Logger.SetLevel(logrus.WarnLevel)
	case "ERROR":
		Logger.SetLevel(logrus.ErrorLevel)
	}
}
