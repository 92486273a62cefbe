package main

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, defaultConfig().Validate())

	tests := map[string]func(*Config){
		"query":     func(c *Config) { c.Query = "lines" },
		"top":       func(c *Config) { c.Top = -3 },
		"log level": func(c *Config) { c.LogLevel = "chatty" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := defaultConfig()

	logger := cfg.newLogger(&buf)
	assert.Equal(t, logrus.ErrorLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Error("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
