package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SMTPConfig holds the mail transport settings. The password is never
// logged.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Config holds the application configuration loaded from config files,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	DryRun  bool

	// Config file
	ConfigFile string

	// Pipeline paths
	InputDir  string
	OutputDir string

	// Input workbook filename overrides; empty keeps the defaults.
	CoalitionFile string
	StaffFile     string
	CountiesFile  string
	NotesFile     string

	// Routing and notification content
	ExcludedDomain        string
	Cc                    []string
	ReportRecipients      []string
	FormerStaffRecipients []string
	SurveyLink            string
	CheatSheetLink        string

	SMTP SMTPConfig

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.surveysweep.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// .env files load before Viper env binding
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".surveysweep")
		}
	}

	// Missing config file is fine; everything has env or flag routes.
	_ = viper.ReadInConfig()

	viper.SetDefault("smtp.host", "smtp.office365.com")
	viper.SetDefault("smtp.port", 587)

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		DryRun:  viper.GetBool("dry-run"),

		ConfigFile: viper.ConfigFileUsed(),

		InputDir:  viper.GetString("input-dir"),
		OutputDir: viper.GetString("output-dir"),

		CoalitionFile: viper.GetString("coalition-file"),
		StaffFile:     viper.GetString("staff-file"),
		CountiesFile:  viper.GetString("counties-file"),
		NotesFile:     viper.GetString("notes-file"),

		ExcludedDomain:        viper.GetString("excluded-domain"),
		Cc:                    viper.GetStringSlice("cc"),
		ReportRecipients:      viper.GetStringSlice("report-recipients"),
		FormerStaffRecipients: viper.GetStringSlice("former-staff-recipients"),
		SurveyLink:            viper.GetString("survey-link"),
		CheatSheetLink:        viper.GetString("cheat-sheet-link"),

		SMTP: SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
		},

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if config.SMTP.From == "" {
		config.SMTP.From = config.SMTP.Username
	}

	return config, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default
// if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
