package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const fileName = ".spbuctl.yaml"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL          string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	TimeoutSeconds   int    `yaml:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
	LogLevel         string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error disabled"`
	LessonsType      string `yaml:"lessons_type,omitempty" validate:"omitempty,oneof=All Primary Attestation Final Unknown"`
	DefaultDivision  string `yaml:"default_division,omitempty"`
	SavedGroupIDs    []int  `yaml:"saved_group_ids,omitempty" validate:"dive,gt=0"`
	SavedEducatorIDs []int  `yaml:"saved_educator_ids,omitempty" validate:"dive,gt=0"`
	// AccentColor is an ANSI 256 code ("99") or a hex colour ("#FF00FF")
	AccentColor string `yaml:"accent_color,omitempty" validate:"omitempty,numeric|hexcolor"`
}

var validate = validator.New()

// getConfigPath returns the absolute path to ~/.spbuctl.yaml
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, fileName), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	return &cfg, nil
}

// Save validates the configuration and writes it back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks every field against its constraints and reports all violations at once.
func (c *AppConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "url":
		return e.Field() + " must be an absolute URL"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "gt":
		return e.Field() + " must contain positive ids"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

// AddGroup saves a group id once, keeping insertion order.
func (c *AppConfig) AddGroup(id int) bool {
	for _, existing := range c.SavedGroupIDs {
		if existing == id {
			return false
		}
	}
	c.SavedGroupIDs = append(c.SavedGroupIDs, id)
	return true
}

// AddEducator saves an educator id once, keeping insertion order.
func (c *AppConfig) AddEducator(id int) bool {
	for _, existing := range c.SavedEducatorIDs {
		if existing == id {
			return false
		}
	}
	c.SavedEducatorIDs = append(c.SavedEducatorIDs, id)
	return true
}
