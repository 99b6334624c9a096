package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// NewLogger builds a logger writing to out. With the "auto" format, text is used when out is a terminal and JSON
// otherwise.
func (l Log) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.Out = out
	logger.Level = level

	switch l.Format {
	case LFText:
		logger.Formatter = &logrus.TextFormatter{}
	case LFAuto:
		if isTerminal(out) {
			logger.Formatter = &logrus.TextFormatter{}
		} else {
			logger.Formatter = &logrus.JSONFormatter{}
		}
	default:
		logger.Formatter = &logrus.JSONFormatter{}
	}

	return logger, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
