package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-cube/engine/config"
	"github.com/Carmen-Shannon/oxy-cube/engine/window"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "dev"

var CLI struct {
	Version kong.VersionFlag `help:"Print version information and exit." short:"v"`
	Debug   bool             `help:"Whether to enable debug logging."`

	Run struct {
		Configs []string `name:"config" short:"c" help:"YAML file overriding the defaults. May be repeated." type:"existingfile"`
		Profile bool     `help:"Log frame rate and memory statistics every second."`
	} `cmd:"" default:"withargs" help:"Open the demo window (default)."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func init() {
	// GLFW and the GPU surface must stay on the main OS thread.
	runtime.LockOSThread()
}

// fail reports a startup error in the log and in a modal dialog, then exits with status 1.
func fail(summary string, err error) {
	log.Error().Err(err).Msg(summary)
	if dialogErr := window.ShowError("Error", fmt.Sprintf("%s\n\n%v", summary, err)); dialogErr != nil {
		log.Debug().Err(dialogErr).Msg("failed to show error dialog")
	}
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("cube"),
		kong.Description("a keyboard controlled cube rendered with WebGPU"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	switch ctx.Command() {
	case "config":
		os.Stdout.Write(config.DEFAULT)
		return
	}

	cfg, err := config.Load(CLI.Run.Configs...)
	if err != nil {
		fail("Invalid configuration!", err)
	}

	level, _ := cfg.LogLevel()
	if CLI.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if level <= zerolog.DebugLevel {
		log.Warn().Msg("debug logging enabled")
	}

	e, err := newEngine(cfg, CLI.Run.Profile)
	if err != nil {
		fail("Window creation failed!", err)
	}

	if err := e.Run(); err != nil {
		fail("Graphics initialization failed!", err)
	}
}
