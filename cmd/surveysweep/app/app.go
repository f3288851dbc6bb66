// Package app provides the application context and dependency management
// for the surveysweep CLI. It centralizes configuration loading, logger
// setup, and pipeline construction for the command tree.
package app

import (
	"github.com/rs/zerolog"

	"github.com/inepdata/surveysweep"
	"github.com/inepdata/surveysweep/pkg/errors"
	"github.com/inepdata/surveysweep/pkg/notify"
)

// App represents the surveysweep application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Pipeline builds a pipeline from the application configuration. A fresh
// instance is built per invocation; runs never share state.
func (a *App) Pipeline() (*surveysweep.Pipeline, error) {
	opts := []surveysweep.Option{
		surveysweep.WithDirs(a.config.InputDir, a.config.OutputDir),
		surveysweep.WithWorkbooks(a.config.CoalitionFile, a.config.StaffFile,
			a.config.CountiesFile, a.config.NotesFile),
		surveysweep.WithCc(a.config.Cc),
		surveysweep.WithReportRecipients(a.config.ReportRecipients),
		surveysweep.WithFormerStaffRecipients(a.config.FormerStaffRecipients),
		surveysweep.WithContent(notify.Content{
			From:           a.config.SMTP.From,
			SurveyLink:     a.config.SurveyLink,
			CheatSheetLink: a.config.CheatSheetLink,
		}),
		surveysweep.WithDryRun(a.config.DryRun),
		surveysweep.WithLogger(*a.logger),
	}

	if a.config.ExcludedDomain != "" {
		opts = append(opts, surveysweep.WithExcludedDomain(a.config.ExcludedDomain))
	}

	// A dry run never opens an SMTP connection, so the transport config
	// is only required when mail will actually go out.
	if !a.config.DryRun {
		sender, err := notify.NewSMTPSender(notify.SMTPConfig{
			Host:     a.config.SMTP.Host,
			Port:     a.config.SMTP.Port,
			Username: a.config.SMTP.Username,
			Password: a.config.SMTP.Password,
			From:     a.config.SMTP.From,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, surveysweep.WithSender(sender))
	}

	return surveysweep.New(opts...)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
