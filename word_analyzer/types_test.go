package word_analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyTable(t *testing.T) {
	table := FrequencyTable{
		{Word: "dog", Count: 4},
		{Word: "cat", Count: 3},
		{Word: "pig", Count: 2},
	}

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, 9, table.Total())
	assert.Equal(t, FrequencyTable{{Word: "dog", Count: 4}, {Word: "cat", Count: 3}}, table.Top(2))
	assert.Equal(t, table, table.Top(0))
	assert.Equal(t, table, table.Top(10))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, MissingInput, KindOf(missingInputError()))
	assert.Equal(t, FileNotFound, KindOf(fileNotFoundError(nil)))
	assert.Equal(t, IO, KindOf(ioError(assert.AnError)))
	assert.Equal(t, Unknown, KindOf(assert.AnError))

	assert.ErrorIs(t, ioError(assert.AnError), assert.AnError)
	assert.NotErrorIs(t, ioError(assert.AnError), ErrFileNotFound)
}
