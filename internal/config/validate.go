package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDrive(); err != nil {
		return err
	}
	if err := c.validateNest(); err != nil {
		return err
	}
	if err := c.validateExplorer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateDrive() error {
	if c.Drive.PollInterval <= 0 {
		return errors.New("drive.poll_interval must be positive")
	}
	return nil
}

func (c *Config) validateNest() error {
	if c.Nest.MaxDepth <= 0 {
		return errors.New("nest.max_depth must be positive")
	}
	return nil
}

func (c *Config) validateExplorer() error {
	if c.Explorer.Pause < 0 {
		return errors.New("explorer.pause must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
