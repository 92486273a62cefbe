package word_analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tp := NewTextProcessor(false)

	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   \t ", []string{}},
		{"one", []string{"one"}},
		{"  Hello,   World! ", []string{"Hello,", "World!"}},
		{"tab\tseparated\u00a0nbsp", []string{"tab", "separated\u00a0nbsp"}},
		{"café\u00a0noir x\u2003y\u3000z", []string{"café\u00a0noir", "x\u2003y\u3000z"}},
		{"a\vb\fc\rd", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		got := tp.Tokenize(tt.line)
		assert.Len(t, got, len(tt.want), "line %q", tt.line)
		for i := range tt.want {
			assert.Equal(t, tt.want[i], got[i])
		}
	}
}

func TestScanTokensKeepsOrder(t *testing.T) {
	tp := NewTextProcessor(false)

	var tokens []string
	err := tp.ScanTokens(strings.NewReader("The cat\n\n  sat on\r\nthe mat"), func(token string) {
		tokens = append(tokens, token)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"The", "cat", "sat", "on", "the", "mat"}, tokens)
}

func TestScanTokensLongLine(t *testing.T) {
	tp := NewTextProcessor(false)
	line := strings.Repeat("word ", 100000)

	count := 0
	err := tp.ScanTokens(strings.NewReader(line), func(string) { count++ })
	require.NoError(t, err)
	assert.Equal(t, 100000, count)
}

func TestExtractText(t *testing.T) {
	tp := NewTextProcessor(true)

	text, err := tp.ExtractText(strings.NewReader(
		`<html><head><script>alert("x")</script></head><body><p>Hello <b>there</b></p></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "there"}, strings.Fields(text))
	assert.NotContains(t, text, "alert")
}

func TestExtractTextJoinsInlineElements(t *testing.T) {
	tp := NewTextProcessor(true)

	text, err := tp.ExtractText(strings.NewReader(
		`<div>Hel<b>lo</b> <a href="#">wor<i>ld</i></a></div><div>next</div><ul><li>one</li><li>two</li></ul>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "world", "next", "one", "two"}, strings.Fields(text))
}

func TestNormalize(t *testing.T) {
	tp := NewTextProcessor(false)
	assert.Equal(t, "dog", tp.Normalize("DoG"))
	// folding is per rune, without final-sigma context
	assert.Equal(t, "οδοσ", tp.Normalize("ΟΔΟΣ"))
}
