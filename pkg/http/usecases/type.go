package usecases

import (
	"github.com/lintang-b-s/text-summarizer/pkg/summarizer"
)

// SelectedSentence is one sentence whose salience cleared the requested
// summary strength, in input order.
type SelectedSentence struct {
	Text     string  `json:"text"`
	Position int     `json:"position"`
	Salience float64 `json:"salience"`
}

type SummaryResult struct {
	Sentences         []SelectedSentence         `json:"sentences"`
	Itemsets          []summarizer.ScoredItemset `json:"itemsets"`
	Keywords          []summarizer.ScoredKeyword `json:"keywords"`
	SalienceHistogram []float64                  `json:"salience_histogram"`
}

type SummaryStore interface {
	GetSummary(key string) (*summarizer.Summary, error)
	PutSummary(key string, summary *summarizer.Summary) error
}
