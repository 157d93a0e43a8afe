// Package launch holds the start-up steps both front-ends share: flags,
// logging, crash reporting, config overrides, saved settings and the level.
package launch

import (
	"flag"
	"fmt"

	"github.com/automoto/goldenfps/assets"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/diag"
	"github.com/automoto/goldenfps/level"
	"github.com/automoto/goldenfps/settings"
	"github.com/sirupsen/logrus"
)

// AppName names the settings directory.
const AppName = "goldenfps"

// Flags are the command line options of both front-ends.
type Flags struct {
	Config    string
	Level     string
	Preset    string
	Debug     bool
	StatsView bool
	Sentry    string
}

// Register adds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "YAML file overriding presets, bindings and tuning")
	fs.StringVar(&f.Level, "level", "", "bundled level name (empty = last played, then the default arena)")
	fs.StringVar(&f.Preset, "preset", "", "controller preset (empty = last used, then "+config.DefaultPreset+")")
	fs.BoolVar(&f.Debug, "debug", false, "log at debug level")
	fs.BoolVar(&f.StatsView, "statsview", false, "serve runtime stats at "+diag.StatsAddr)
	fs.StringVar(&f.Sentry, "sentry", "", "sentry DSN for crash reports (default $SENTRY_DSN)")
}

// Session is everything a front-end needs once start-up succeeded.
type Session struct {
	Log      *logrus.Logger
	Level    *level.Level
	Preset   string
	Settings *settings.Store

	closers []func()
}

// Start runs the shared start-up steps. Explicit flags win over saved
// settings, which win over built-in defaults.
func Start(f Flags) (*Session, error) {
	if f.Config != "" {
		if err := config.LoadFile(f.Config); err != nil {
			return nil, err
		}
	}
	if f.Debug {
		config.Debug.Enabled = true
		config.Debug.LogLevel = "debug"
	}
	log, err := diag.NewLogger(config.Debug.LogLevel, nil)
	if err != nil {
		return nil, err
	}

	s := &Session{Log: log}
	dsn := f.Sentry
	if dsn == "" {
		dsn = config.Debug.SentryDSN
	}
	if on, err := diag.InitSentry(dsn, AppName); err != nil {
		log.WithError(err).Warn("crash reporting disabled")
	} else if on {
		s.closers = append(s.closers, diag.Flush)
	}
	if f.StatsView || config.Debug.StatsView {
		s.closers = append(s.closers, diag.StartStats(log))
	}

	s.Settings = settings.Open(AppName, log)
	saved, err := s.Settings.Load()
	if err != nil {
		log.WithError(err).Warn("ignoring saved settings")
	}
	preset, levelName := settings.Apply(saved, &config.Input, config.DefaultPreset, level.DefaultName)
	if f.Preset != "" {
		preset = f.Preset
	}
	if f.Level != "" {
		levelName = f.Level
	}
	if _, err := config.Preset(preset); err != nil {
		s.Close()
		return nil, err
	}
	s.Preset = preset

	s.Level, err = assets.LoadLevel(levelName)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("load level %q: %w", levelName, err)
	}
	log.WithFields(logrus.Fields{"level": s.Level.Name, "preset": preset}).Info("session started")
	return s, nil
}

// Save stores the session's current choices.
func (s *Session) Save(preset string) {
	if err := s.Settings.Save(settings.Current(&config.Input, preset, s.Level.Name)); err != nil {
		s.Log.WithError(err).Warn("could not save settings")
	}
}

// Close stops the stats viewer and flushes crash reports.
func (s *Session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
