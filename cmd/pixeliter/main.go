package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"pixeliter/internal/demo"
	"pixeliter/pkg/pixel"
)

func main() {
	var c Config
	if err := env.Load(&c); err != nil {
		l := &logging.Logger{Out: os.Stderr}
		l.Error(context.Background(), "failed to load the configuration", logging.ErrField(err))
		os.Exit(cli.ExitCodeError)
	}
	cli.Main(context.Background(), Command{
		Logger: &logging.Logger{Out: os.Stderr, Level: logging.Level(c.LogLevel)},
	})
}

// Config is loaded from the environment.
type Config struct {
	LogLevel string `env:"PIXELITER_LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
}

const ErrOutOfRange errorkit.Error = "ErrOutOfRange"

// Command prints the values every access mode yields for the given pixel.
//
// The numeric flags are parsed wider than a signed byte,
// so that an out of range value is reported instead of being wrapped.
type Command struct {
	R    int    `flag:"r" default:"54" desc:"red channel"`
	G    int    `flag:"g" default:"23" desc:"green channel"`
	B    int    `flag:"b" default:"74" desc:"blue channel"`
	Mode string `flag:"mode" default:"all" enum:"all,mut,ref,move," desc:"the iteration pass to run"`
	Add  int    `flag:"add" default:"0" desc:"delta added to every field by the exclusive pass"`

	Logger *logging.Logger
}

func (cmd Command) Summary() string {
	return "walks a pixel with the owning, the shared and the exclusive iterator"
}

func (cmd Command) ServeCLI(w cli.Response, r *cli.Request) {
	p, add, err := cmd.pixel()
	if err != nil {
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(errOut(w), err.Error())
		return
	}
	var modes []demo.Mode
	if cmd.Mode != "all" {
		modes = []demo.Mode{demo.Mode(cmd.Mode)}
	}
	if err := demo.Run(r.Context(), w, demo.Config{
		Pixel:  p,
		Modes:  modes,
		Add:    add,
		Logger: cmd.Logger,
	}); err != nil {
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(errOut(w), err.Error())
	}
}

func (cmd Command) pixel() (pixel.Pixel, int8, error) {
	r, err := toInt8("r", cmd.R)
	if err != nil {
		return pixel.Pixel{}, 0, err
	}
	g, err := toInt8("g", cmd.G)
	if err != nil {
		return pixel.Pixel{}, 0, err
	}
	b, err := toInt8("b", cmd.B)
	if err != nil {
		return pixel.Pixel{}, 0, err
	}
	add, err := toInt8("add", cmd.Add)
	if err != nil {
		return pixel.Pixel{}, 0, err
	}
	return pixel.Pixel{R: r, G: g, B: b}, add, nil
}

func toInt8(flag string, v int) (int8, error) {
	if v < math.MinInt8 || math.MaxInt8 < v {
		return 0, ErrOutOfRange.F("-%s must be between %d and %d, got %d", flag, math.MinInt8, math.MaxInt8, v)
	}
	return int8(v), nil
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(interface{ Stderr() io.Writer }); ok {
		return ew.Stderr()
	}
	return w
}
