// Package diag sets up logging, crash reporting and the runtime stats viewer
// shared by the front-ends.
package diag

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/sirupsen/logrus"
)

// StatsAddr is where the stats viewer listens.
const StatsAddr = "localhost:18066"

// NewLogger returns a colored text logger at the named level. Unknown level
// names are an error.
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	if out != nil {
		lg.SetOutput(out)
	}
	if level == "" {
		return lg, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	lg.SetLevel(lvl)
	return lg, nil
}

// InitSentry enables crash reporting when a DSN is given, falling back to the
// SENTRY_DSN environment variable. It reports whether reporting is on.
func InitSentry(dsn, release string) (bool, error) {
	if dsn == "" {
		dsn = os.Getenv("SENTRY_DSN")
	}
	if dsn == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	})
	if err != nil {
		return false, fmt.Errorf("sentry: %w", err)
	}
	return true, nil
}

// Flush waits for queued sentry events.
func Flush() {
	sentry.Flush(2 * time.Second)
}

// StartStats serves the runtime stats viewer in the background and returns a
// function that stops it.
func StartStats(log logrus.FieldLogger) func() {
	viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(StatsAddr))
	mgr := statsview.New()
	go mgr.Start()
	log.WithField("addr", "http://"+StatsAddr+"/debug/statsview").Info("stats viewer started")
	return mgr.Stop
}
