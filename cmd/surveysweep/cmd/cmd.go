// Package cmd implements the surveysweep CLI commands. Commands receive
// their dependencies through the App interface so the command tree stays
// decoupled from the application shell that builds it.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/inepdata/surveysweep"
)

// App provides the dependencies commands need from the application shell.
type App interface {
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
	Logger() *zerolog.Logger
	Pipeline() (*surveysweep.Pipeline, error)
}
