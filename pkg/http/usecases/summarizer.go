package usecases

import (
	"errors"

	"github.com/lintang-b-s/text-summarizer/pkg"
	"github.com/lintang-b-s/text-summarizer/pkg/analyzer"
	"github.com/lintang-b-s/text-summarizer/pkg/kvdb"
	"github.com/lintang-b-s/text-summarizer/pkg/summarizer"

	"go.uber.org/zap"
)

type SummarizerService struct {
	log        *zap.Logger
	analyzer   *analyzer.Analyzer
	summarizer *summarizer.Summarizer
	config     summarizer.Config
	store      SummaryStore
}

func New(log *zap.Logger, config summarizer.Config, store SummaryStore) (*SummarizerService, error) {
	sm, err := summarizer.New(config)
	if err != nil {
		return nil, err
	}

	return &SummarizerService{
		log:        log,
		analyzer:   analyzer.New(),
		summarizer: sm,
		config:     config,
		store:      store,
	}, nil
}

// Summarize analyzes the raw text, computes (or fetches from cache) its
// summary, and filters the sentences by summary strength.
func (s *SummarizerService) Summarize(text string, strength float64, maxKeywords int) (SummaryResult, error) {
	sentences := s.analyzer.Analyze(text)
	if len(sentences) == 0 {
		return SummaryResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput,
			"text contains no sentences")
	}

	key := kvdb.SummaryKey(text, s.config)
	summary, err := s.store.GetSummary(key)
	if err != nil {
		if !errors.Is(err, kvdb.ErrorsKeyNotExists) {
			s.log.Warn("summary cache read failed", zap.Error(err))
		}

		summary, err = s.summarizer.GetSummary(sentences)
		if err != nil {
			return SummaryResult{}, err
		}

		if err := s.store.PutSummary(key, summary); err != nil {
			s.log.Warn("summary cache write failed", zap.Error(err))
		}
	}

	selected := make([]SelectedSentence, 0, len(sentences))
	for _, idx := range summary.SelectSentenceIndices(strength) {
		selected = append(selected, SelectedSentence{
			Text:     sentences[idx].Text(),
			Position: idx,
			Salience: summary.SalienceScores[idx],
		})
	}

	keywords := summary.RelevantKeywords
	if maxKeywords > 0 && maxKeywords < len(keywords) {
		keywords = keywords[:maxKeywords]
	}

	return SummaryResult{
		Sentences:         selected,
		Itemsets:          summary.RelevantItemsets,
		Keywords:          keywords,
		SalienceHistogram: summary.SalienceDistribution(0),
	}, nil
}
