package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gookit/color"

	"wordcount/word_analyzer"
)

// Reporter writes query results
type Reporter interface {
	Count(total int) error
	Words(words []string) error
	Frequencies(table word_analyzer.FrequencyTable, top int) error
}

func newReporter(w io.Writer, cfg *Config) Reporter {
	if cfg.JSON {
		return &jsonReporter{w: w}
	}
	return &textReporter{w: w, color: cfg.Color}
}

// textReporter prints one result per line
type textReporter struct {
	w     io.Writer
	color bool
}

func (tr *textReporter) Count(total int) error {
	_, err := fmt.Fprintf(tr.w, "Total words: %s\n", tr.number(total))
	return err
}

func (tr *textReporter) Words(words []string) error {
	for _, word := range words {
		if _, err := fmt.Fprintln(tr.w, tr.word(word)); err != nil {
			return err
		}
	}
	return nil
}

func (tr *textReporter) Frequencies(table word_analyzer.FrequencyTable, top int) error {
	for _, wc := range table.Top(top) {
		if _, err := fmt.Fprintf(tr.w, "%s appears %s times\n", tr.word(wc.Word), tr.number(wc.Count)); err != nil {
			return err
		}
	}
	return nil
}

func (tr *textReporter) word(word string) string {
	if !tr.color {
		return word
	}
	return color.Cyan.Sprint(word)
}

func (tr *textReporter) number(n int) string {
	if !tr.color {
		return fmt.Sprintf("%d", n)
	}
	return color.Yellow.Sprint(n)
}

// jsonReporter writes each result as an indented JSON document
type jsonReporter struct {
	w io.Writer
}

type countOutput struct {
	TotalWords int `json:"total_words"`
}

type wordsOutput struct {
	Words []string `json:"words"`
}

// frequenciesOutput totals cover the whole file even when only the top
// entries are listed
type frequenciesOutput struct {
	TotalWords    int                          `json:"total_words"`
	DistinctWords int                          `json:"distinct_words"`
	Frequencies   word_analyzer.FrequencyTable `json:"frequencies"`
}

func (jr *jsonReporter) Count(total int) error {
	return jr.encode(countOutput{TotalWords: total})
}

func (jr *jsonReporter) Words(words []string) error {
	return jr.encode(wordsOutput{Words: words})
}

func (jr *jsonReporter) Frequencies(table word_analyzer.FrequencyTable, top int) error {
	return jr.encode(frequenciesOutput{
		TotalWords:    table.Total(),
		DistinctWords: table.Len(),
		Frequencies:   table.Top(top),
	})
}

func (jr *jsonReporter) encode(v interface{}) error {
	encoder := json.NewEncoder(jr.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
