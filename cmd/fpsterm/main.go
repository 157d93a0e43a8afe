// Command fpsterm runs the character controller in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/goldenfps/launch"
	"github.com/automoto/goldenfps/term"
	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
)

func main() {
	var flags launch.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	session, err := launch.Start(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer session.Close()
	defer sentry.Recover()

	screen, err := tcell.NewScreen()
	if err != nil {
		session.Log.WithError(err).Fatal("could not open the terminal")
	}
	if err := screen.Init(); err != nil {
		session.Log.WithError(err).Fatal("could not open the terminal")
	}
	// The screen owns the terminal until Fini, so logs go to a file meanwhile.
	logFile, err := os.CreateTemp("", "fpsterm-*.log")
	if err == nil {
		session.Log.SetOutput(logFile)
		defer func() {
			session.Log.SetOutput(os.Stderr)
			logFile.Close()
			fmt.Fprintln(os.Stderr, "log written to", logFile.Name())
		}()
	}

	app, err := term.NewApp(screen, session.Level, session.Preset, session.Log)
	if err != nil {
		screen.Fini()
		session.Log.WithError(err).Fatal("could not start")
	}
	app.Run()
	screen.Fini()

	session.Save(app.Controller().Config().Name)
}
