// Package metadata derives word counts and reading times from body text.
package metadata

import (
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const DefaultWordsPerMinute = 200

// WordCount counts whitespace-separated tokens. Punctuation-only tokens count
// as words.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// ReadingTimeMinutes is ceil(words / wordsPerMinute). An empty body reads in
// 0 minutes. A non-positive wordsPerMinute uses DefaultWordsPerMinute.
func ReadingTimeMinutes(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	if words <= 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Calculator computes DisplayMetadata at a fixed reading speed.
type Calculator struct {
	WordsPerMinute int
}

func NewCalculator(wordsPerMinute int) Calculator {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	return Calculator{WordsPerMinute: wordsPerMinute}
}

func (c Calculator) Compute(body string) models.DisplayMetadata {
	words := WordCount(body)
	return models.DisplayMetadata{
		WordCount:          words,
		ReadingTimeMinutes: ReadingTimeMinutes(words, c.WordsPerMinute),
	}
}

// Compute uses DefaultWordsPerMinute.
func Compute(body string) models.DisplayMetadata {
	return NewCalculator(DefaultWordsPerMinute).Compute(body)
}
