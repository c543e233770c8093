package cmd

import (
	"github.com/sirupsen/logrus"
)

// newLogger configures the standard logrus logger to write to the error
// stream. Only warnings and errors are shown until --verbose is given.
func newLogger(streams *IO) *logrus.Logger {
	l := logrus.StandardLogger()
	l.SetOutput(streams.Err)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
