package cliconfig

import "os"

// ApplyEnvConfig applies POPMCTL_* environment variables to the config.
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("email", os.Getenv("POPMCTL_EMAIL"), &cfg.Email)
	s.setString("format", os.Getenv("POPMCTL_FORMAT"), &cfg.Format)
	s.setString("log-level", os.Getenv("POPMCTL_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("POPMCTL_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("gzip", os.Getenv("POPMCTL_GZIP"), &cfg.Gzip)
	s.setBoolFromString("strict", os.Getenv("POPMCTL_STRICT"), &cfg.Strict)

	return nil
}
