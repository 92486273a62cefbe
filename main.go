package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wordcount/word_analyzer"
)

var errUsage = errors.New("invalid command line arguments")

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Invalid Command Line Arguments.")
	fmt.Fprintln(w, "Usage WordCount <file>")
}

func newRootCommand() *cobra.Command {
	cfg := defaultConfig()

	cmd := &cobra.Command{
		Use:           "wordcount <file>",
		Short:         "Count the words in a text file",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
		printUsage(cmd.OutOrStdout())
		return errors.Wrap(errUsage, err.Error())
	})
	cfg.bindFlags(cmd.Flags())

	return cmd
}

func run(cmd *cobra.Command, cfg *Config, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) != 1 {
		printUsage(out)
		return errUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
		printUsage(out)
		return errors.Wrap(errUsage, err.Error())
	}

	logger := cfg.newLogger(cmd.ErrOrStderr())

	path := args[0]
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	fmt.Fprintf(out, "Obtaining words counts from file '%s'\n", absPath)
	defer fmt.Fprintln(out, "Exiting")

	opts := []word_analyzer.Option{
		word_analyzer.WithLogger(logger),
		word_analyzer.WithHTML(cfg.HTML),
	}
	if cfg.Progress {
		opts = append(opts, word_analyzer.WithProgress(cmd.ErrOrStderr()))
	}
	wa := word_analyzer.NewWordAnalyzer(word_analyzer.FileReference(path), opts...)

	if err := runQuery(wa, cfg, newReporter(out, cfg)); err != nil {
		if logger.IsLevelEnabled(logrus.ErrorLevel) {
			logger.Errorf("Error counting words: %+v", err)
		}
		fmt.Fprintf(out, "Error counting words: %s.\n", err)
		return err
	}

	return nil
}

func runQuery(wa *word_analyzer.WordAnalyzer, cfg *Config, reporter Reporter) error {
	switch cfg.Query {
	case QueryCount:
		total, err := wa.TotalWordCount()
		if err != nil {
			return err
		}
		return reporter.Count(total)
	case QueryWords:
		words, err := wa.DistinctWords()
		if err != nil {
			return err
		}
		return reporter.Words(words)
	default:
		table, err := wa.WordFrequencies()
		if err != nil {
			return err
		}
		return reporter.Frequencies(table, cfg.Top)
	}
}

// exitCode maps the result of a run to the process exit status
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		return 2
	}

	switch word_analyzer.KindOf(err) {
	case word_analyzer.MissingInput, word_analyzer.FileNotFound:
		return 1
	case word_analyzer.IO:
		return 3
	default:
		// writing the report failed
		return 4
	}
}

func main() {
	os.Exit(exitCode(newRootCommand().Execute()))
}
