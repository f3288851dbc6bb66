package surveysweep

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/inepdata/surveysweep/pkg/errors"
	"github.com/inepdata/surveysweep/pkg/logging"
	"github.com/inepdata/surveysweep/pkg/notify"
)

// Default input workbook names, matching the PEARS export conventions.
const (
	DefaultCoalitionFile = "Coalition_Export.xlsx"
	DefaultStaffFile     = "FY22_INEP_Staff_List.xlsx"
	DefaultCountiesFile  = "Illinois Extension Unit Counties.xlsx"
	DefaultNotesFile     = "Update Notifications.xlsx"

	// DefaultExcludedDomain is the mail domain served out of the state
	// office, whose staff never get regional cc escalation.
	DefaultExcludedDomain = "uic.edu"
)

// config holds the assembled pipeline configuration.
type config struct {
	inputDir  string
	outputDir string

	coalitionFile string
	staffFile     string
	countiesFile  string
	notesFile     string

	excludedDomain        string
	cc                    []string
	reportRecipients      []string
	formerStaffRecipients []string
	content               notify.Content

	sender notify.Sender
	dryRun bool

	logger zerolog.Logger
	now    func() time.Time
}

func defaultConfig() *config {
	return &config{
		coalitionFile:  DefaultCoalitionFile,
		staffFile:      DefaultStaffFile,
		countiesFile:   DefaultCountiesFile,
		notesFile:      DefaultNotesFile,
		excludedDomain: DefaultExcludedDomain,
		logger:         *logging.Default(),
		now:            time.Now,
		sender: notify.SenderFunc(func(_ context.Context, _ notify.Message) error {
			return errors.NewConfigError("sender", "no mail sender configured", nil)
		}),
	}
}

// Option is a function that configures a Pipeline instance
type Option func(*config) error

// WithDirs sets the input and output directories.
func WithDirs(inputDir, outputDir string) Option {
	return func(c *config) error {
		if inputDir == "" || outputDir == "" {
			return errors.NewConfigError("dirs", "input and output directories are required", nil)
		}
		c.inputDir = inputDir
		c.outputDir = outputDir
		return nil
	}
}

// WithWorkbooks overrides the default input workbook filenames. Empty
// values keep the defaults.
func WithWorkbooks(coalition, staff, counties, notes string) Option {
	return func(c *config) error {
		if coalition != "" {
			c.coalitionFile = coalition
		}
		if staff != "" {
			c.staffFile = staff
		}
		if counties != "" {
			c.countiesFile = counties
		}
		if notes != "" {
			c.notesFile = notes
		}
		return nil
	}
}

// WithSender sets the mail transport.
func WithSender(s notify.Sender) Option {
	return func(c *config) error {
		c.sender = s
		return nil
	}
}

// WithContent sets the run-constant notification content (reply address
// and guidance links).
func WithContent(content notify.Content) Option {
	return func(c *config) error {
		c.content = content
		return nil
	}
}

// WithCc sets the default cc list applied to every message.
func WithCc(cc []string) Option {
	return func(c *config) error {
		c.cc = cc
		return nil
	}
}

// WithReportRecipients sets who receives the aggregate quarterly report.
func WithReportRecipients(to []string) Option {
	return func(c *config) error {
		c.reportRecipients = to
		return nil
	}
}

// WithFormerStaffRecipients sets who receives the former-staff bundle.
func WithFormerStaffRecipients(to []string) Option {
	return func(c *config) error {
		c.formerStaffRecipients = to
		return nil
	}
}

// WithExcludedDomain overrides the domain excluded from regional
// escalation.
func WithExcludedDomain(domain string) Option {
	return func(c *config) error {
		c.excludedDomain = domain
		return nil
	}
}

// WithDryRun builds workbooks and bodies without sending any mail.
func WithDryRun(enabled bool) Option {
	return func(c *config) error {
		c.dryRun = enabled
		return nil
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithClock overrides the time source, fixing the reporting period and
// deadline for tests and replays.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		if now == nil {
			return errors.NewConfigError("clock", "nil time source", nil)
		}
		c.now = now
		return nil
	}
}
