// Package demo walks a pixel with every access mode and prints what each of them yields.
package demo

import (
	"context"
	"fmt"
	"io"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"pixeliter/pkg/pixel"
)

// Mode names an iteration pass.
type Mode string

const (
	ModeMut  Mode = "mut"
	ModeRef  Mode = "ref"
	ModeMove Mode = "move"
)

// Modes is the order in which the passes are executed.
var Modes = []Mode{ModeMut, ModeRef, ModeMove}

// Label is the tag printed in front of each value of the pass.
func (m Mode) Label() string {
	switch m {
	case ModeMut:
		return "ref mut semantic"
	case ModeRef:
		return "ref semantic"
	case ModeMove:
		return "move semantic"
	default:
		return string(m)
	}
}

const ErrUnknownMode errorkit.Error = "ErrUnknownMode"

type Config struct {
	Pixel pixel.Pixel
	// Modes selects the passes to run. When empty, every pass runs.
	Modes []Mode
	// Add is added to every field in place during the exclusive pass, after the field was printed.
	Add int8
	// Logger is optional.
	Logger *logging.Logger
}

// Run executes the selected passes over a single Cell, in the order of Modes.
func Run(ctx context.Context, w io.Writer, cfg Config) error {
	modes := cfg.Modes
	if len(modes) == 0 {
		modes = Modes
	}
	for _, m := range modes {
		if !slices.Contains(Modes, m) {
			return ErrUnknownMode.F("%q", m)
		}
	}

	var (
		log  = cfg.logger()
		cell = pixel.NewCell(cfg.Pixel)
	)
	for _, m := range Modes {
		if !slices.Contains(modes, m) {
			continue
		}
		n, err := run(cell, m, w, cfg.Add)
		if err != nil {
			log.Error(ctx, "iteration pass failed",
				logging.Field("mode", string(m)),
				logging.ErrField(err))
			return err
		}
		log.Debug(ctx, "iteration pass finished",
			logging.Field("mode", string(m)),
			logging.Field("count", n))
	}
	return nil
}

func run(cell *pixel.Cell, m Mode, w io.Writer, add int8) (int, error) {
	switch m {
	case ModeMut:
		return runMut(cell, w, add)
	case ModeRef:
		return runRef(cell, w)
	case ModeMove:
		return runMove(cell, w)
	default:
		return 0, ErrUnknownMode.F("%q", m)
	}
}

func runMut(cell *pixel.Cell, w io.Writer, add int8) (_ int, rErr error) {
	itr, err := cell.IterMut()
	if err != nil {
		return 0, err
	}
	defer errorkit.Finish(&rErr, itr.Close)
	var n int
	for itr.Next() {
		ref := itr.Value()
		if err := printValue(w, ModeMut, *ref); err != nil {
			return n, err
		}
		*ref += add
		n++
	}
	return n, itr.Err()
}

func runRef(cell *pixel.Cell, w io.Writer) (_ int, rErr error) {
	itr, err := cell.Iter()
	if err != nil {
		return 0, err
	}
	defer errorkit.Finish(&rErr, itr.Close)
	var n int
	for itr.Next() {
		if err := printValue(w, ModeRef, itr.Value()); err != nil {
			return n, err
		}
		n++
	}
	return n, itr.Err()
}

func runMove(cell *pixel.Cell, w io.Writer) (_ int, rErr error) {
	itr, err := cell.IntoIter()
	if err != nil {
		return 0, err
	}
	defer errorkit.Finish(&rErr, itr.Close)
	var n int
	for itr.Next() {
		if err := printValue(w, ModeMove, itr.Value()); err != nil {
			return n, err
		}
		n++
	}
	return n, itr.Err()
}

func printValue(w io.Writer, m Mode, v int8) error {
	_, err := fmt.Fprintf(w, "%s: %d\n", m.Label(), v)
	return err
}

func (cfg Config) logger() *logging.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return &logging.Logger{Out: io.Discard}
}
