package word_analyzer

import (
	"io"
	"os"
	"sort"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
)

// Logger is the logging capability a WordAnalyzer reports through.
// *logrus.Logger and *logrus.Entry both satisfy it.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Option configures a WordAnalyzer
type Option func(*WordAnalyzer)

// WithLogger sets the logger queries report to
func WithLogger(logger Logger) Option {
	return func(wa *WordAnalyzer) {
		if logger != nil {
			wa.logger = logger
		}
	}
}

// WithHTML makes queries count only the visible text of HTML input
func WithHTML(enabled bool) Option {
	return func(wa *WordAnalyzer) {
		wa.textProcessor = NewTextProcessor(enabled)
	}
}

// WithProgress renders a read progress bar onto w while a query runs
func WithProgress(w io.Writer) Option {
	return func(wa *WordAnalyzer) {
		wa.progress = w
	}
}

// WordAnalyzer computes word statistics for a single file. Every query
// re-reads the file; nothing is cached between calls.
type WordAnalyzer struct {
	file          FileReference
	logger        Logger
	progress      io.Writer
	textProcessor *TextProcessor
}

// NewWordAnalyzer creates a new analyzer over file
func NewWordAnalyzer(file FileReference, opts ...Option) *WordAnalyzer {
	wa := &WordAnalyzer{
		file:          file,
		logger:        discardLogger(),
		textProcessor: NewTextProcessor(false),
	}
	for _, opt := range opts {
		opt(wa)
	}
	return wa
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// TotalWordCount returns the number of words in the file, duplicates included
func (wa *WordAnalyzer) TotalWordCount() (int, error) {
	wa.logger.Debugf("Counting words in file '%s'", wa.file)

	count := 0
	if err := wa.scan(func(string) { count++ }); err != nil {
		return 0, err
	}
	return count, nil
}

// DistinctWords returns the lowercased distinct words in ascending order
func (wa *WordAnalyzer) DistinctWords() ([]string, error) {
	wa.logger.Debugf("Getting words in file '%s'", wa.file)

	seen := make(map[string]bool)
	words := []string{}
	err := wa.scan(func(token string) {
		word := wa.textProcessor.Normalize(token)
		if !seen[word] {
			seen[word] = true
			words = append(words, word)
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(words)
	return words, nil
}

// WordFrequencies returns the count of every lowercased word, highest count
// first. Equal counts keep first-encounter order.
func (wa *WordAnalyzer) WordFrequencies() (FrequencyTable, error) {
	wa.logger.Debugf("Getting word counts in file '%s'", wa.file)

	index := make(map[string]int)
	table := FrequencyTable{}
	err := wa.scan(func(token string) {
		word := wa.textProcessor.Normalize(token)
		if i, exists := index[word]; exists {
			table[i].Count++
			return
		}
		index[word] = len(table)
		table = append(table, WordCount{Word: word, Count: 1})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table, nil
}

// validate checks that a file was given and exists. A path that cannot be
// stat'ed for any reason, permissions included, does not exist.
func (wa *WordAnalyzer) validate() (os.FileInfo, error) {
	if wa.file == "" {
		return nil, missingInputError()
	}
	info, err := os.Stat(string(wa.file))
	if err != nil {
		return nil, fileNotFoundError(err)
	}
	return info, nil
}

// scan validates the file, then streams every token in it through fn
func (wa *WordAnalyzer) scan(fn func(token string)) error {
	info, err := wa.validate()
	if err != nil {
		return err
	}

	f, err := os.Open(string(wa.file))
	if err != nil {
		return ioError(err)
	}
	defer f.Close()

	var r io.Reader = f
	if wa.progress != nil {
		bar := pb.New64(info.Size()).Set(pb.Bytes, true).SetWriter(wa.progress)
		bar.Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	if err := wa.textProcessor.ScanTokens(r, fn); err != nil {
		return ioError(err)
	}
	return nil
}
