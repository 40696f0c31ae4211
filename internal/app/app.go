package app

import (
	"io"
	"log"
	"os"

	"numcode/internal/codec"
	"numcode/internal/domain"
	"numcode/internal/services/batch"
	"numcode/internal/services/convert"
)

// App bundles the services and streams used by the CLI.
type App struct {
	Codec   domain.Codec
	Convert domain.ConvertService
	Batch   domain.BatchService
	Log     *log.Logger

	cfg Config
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	cfg = cfg.withDefaults()

	c := codec.New()
	cs := convert.New(c)
	return &App{
		Codec:   c,
		Convert: cs,
		Batch:   batch.New(cs, cfg.MaxLineBytes),
		Log:     NewLogger(cfg.Err),
		cfg:     cfg,
	}
}

// NewLogger returns the diagnostic logger writing to w, or to os.Stderr when w
// is nil.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.New(w, "numcode: ", 0)
}

// Run executes the batch job over the configured streams.
func (a *App) Run() error {
	return a.Batch.Run(a.cfg.In, a.cfg.Out)
}
