package app

import (
	"io"
	"os"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	In           io.Reader // records, defaults to os.Stdin
	Out          io.Writer // conversions, defaults to os.Stdout
	Err          io.Writer // diagnostics, defaults to os.Stderr
	MaxLineBytes int       // longest accepted record; 0 selects batch.DefaultMaxLineBytes
}

func (c Config) withDefaults() Config {
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
	return c
}
