package word_analyzer

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// maxLineSize bounds the scanner buffer; longer lines fail the read
const maxLineSize = 64 * 1024 * 1024

// Inline elements continue the surrounding text; every other element
// starts a new line
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true, "cite": true,
	"code": true, "data": true, "dfn": true, "em": true, "font": true, "i": true,
	"kbd": true, "mark": true, "q": true, "s": true, "samp": true, "small": true,
	"span": true, "strong": true, "sub": true, "sup": true, "time": true, "u": true,
}

// Elements whose content is never visible text
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
}

// TextProcessor splits text into word tokens
type TextProcessor struct {
	parseHTML bool
}

// NewTextProcessor creates a new text processor. With parseHTML set, input is
// parsed as an HTML document and only its text nodes are tokenized.
func NewTextProcessor(parseHTML bool) *TextProcessor {
	return &TextProcessor{parseHTML: parseHTML}
}

// isSpace reports whether r is ASCII whitespace. Other Unicode spaces,
// such as U+00A0, are part of a word.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Tokenize splits a line on runs of ASCII whitespace
func (tp *TextProcessor) Tokenize(line string) []string {
	if line == "" {
		return nil
	}
	return strings.FieldsFunc(line, isSpace)
}

// Normalize folds a token to the form used for counting
func (tp *TextProcessor) Normalize(token string) string {
	return strings.ToLower(token)
}

// ScanTokens streams r line by line and calls fn for every raw token in
// reading order.
func (tp *TextProcessor) ScanTokens(r io.Reader, fn func(token string)) error {
	if tp.parseHTML {
		text, err := tp.ExtractText(r)
		if err != nil {
			return err
		}
		r = strings.NewReader(text)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		for _, token := range tp.Tokenize(scanner.Text()) {
			fn(token)
		}
	}
	return scanner.Err()
}

// ExtractText returns the visible text of an HTML document. Text inside
// inline elements joins its neighbours, so "Hel<b>lo</b>" stays one word;
// block elements break lines. Scripts and styles are dropped.
func (tp *TextProcessor) ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		block := n.Type == html.ElementNode && !inlineElements[n.Data]
		if block {
			text.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
		if block {
			text.WriteString("\n")
		}
	}
	extract(doc)

	return text.String(), nil
}
