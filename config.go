package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Query names accepted by --query
const (
	QueryCount       = "count"
	QueryWords       = "words"
	QueryFrequencies = "frequencies"
)

// Config holds the command line settings of a run
type Config struct {
	Query    string
	Top      int
	JSON     bool
	HTML     bool
	Progress bool
	Color    bool
	LogLevel string
}

func defaultConfig() *Config {
	return &Config{
		Query:    QueryFrequencies,
		LogLevel: logrus.ErrorLevel.String(),
	}
}

func (c *Config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Query, "query", "q", c.Query,
		fmt.Sprintf("query to run: %s, %s or %s", QueryCount, QueryWords, QueryFrequencies))
	fs.IntVarP(&c.Top, "top", "n", c.Top, "show only the N most frequent words (0 shows all)")
	fs.BoolVar(&c.JSON, "json", c.JSON, "output in JSON format")
	fs.BoolVar(&c.HTML, "html", c.HTML, "count only the visible text of an HTML file")
	fs.BoolVar(&c.Progress, "progress", c.Progress, "show a progress bar while reading")
	fs.BoolVar(&c.Color, "color", c.Color, "highlight words and counts")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// Validate checks the settings before any file is touched
func (c *Config) Validate() error {
	switch c.Query {
	case QueryCount, QueryWords, QueryFrequencies:
	default:
		return errors.Errorf("unknown query %q", c.Query)
	}

	if c.Top < 0 {
		return errors.Errorf("top must not be negative, got %d", c.Top)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "bad log level")
	}

	return nil
}

// newLogger creates the operational logger. Validate must have passed.
func (c *Config) newLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
