package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a component logger writing to stderr. Stdout carries protocol
// frames, so log output must never land there.
func New(component, level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if lvl, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger.WithField("component", component)
}
