package word_analyzer

// FileReference is the path of the file a WordAnalyzer reads.
// The empty reference means no file was given.
type FileReference string

// WordCount represents a single entry of a frequency table
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable holds word counts ordered by descending count.
// Words with equal counts keep the order in which they were first seen.
type FrequencyTable []WordCount

// Len returns the number of distinct words in the table
func (ft FrequencyTable) Len() int {
	return len(ft)
}

// Top returns at most n leading entries. n <= 0 returns the whole table.
func (ft FrequencyTable) Top(n int) FrequencyTable {
	if n <= 0 || n >= len(ft) {
		return ft
	}
	return ft[:n]
}

// Total returns the sum of all counts
func (ft FrequencyTable) Total() int {
	total := 0
	for _, wc := range ft {
		total += wc.Count
	}
	return total
}
