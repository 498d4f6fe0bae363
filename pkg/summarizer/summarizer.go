package summarizer

import (
	"math"
	"strings"

	"github.com/lintang-b-s/text-summarizer/pkg"
	"github.com/lintang-b-s/text-summarizer/pkg/lcm"
	"github.com/lintang-b-s/text-summarizer/pkg/morph"
)

// Summarizer scores sentences of a morphologically annotated text by mining
// closed frequent n-gram itemsets across sentences and decomposing the
// itemset x sentence incidence matrix. Sentences are ranked by the energy of
// their right-singular-vector rows, itemsets by their left counterparts.
//
// A Summarizer is stateless across GetSummary calls; the term and n-gram
// dictionaries are rebuilt per call.
type Summarizer struct {
	config Config
}

func New(config Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Summarizer{config: config}, nil
}

func NewDefault() *Summarizer {
	return &Summarizer{config: DefaultConfig()}
}

// GetSummary runs the whole pipeline over the parsed sentences: lemma
// filtering, n-gram transaction building, closed-itemset mining, incidence
// matrix construction, truncated SVD, and scoring.
func (s *Summarizer) GetSummary(sentences []morph.Sentence) (*Summary, error) {
	if len(sentences) == 0 {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "empty sentence list")
	}

	indexer := newItemIndexer(s.config.MinNgramSize, s.config.MaxNgramSize)

	transactions := make([][]int, 0, len(sentences))
	columnToSentence := make([]int, 0, len(sentences))
	for i, sentence := range sentences {
		transaction := indexer.indexSentence(s.relevantLemmas(sentence))
		if len(transaction) == 0 {
			continue
		}
		transactions = append(transactions, transaction)
		columnToSentence = append(columnToSentence, i)
	}

	if len(transactions) == 0 {
		return newEmptySummary(len(sentences)), nil
	}

	minSupport := int(math.Ceil(s.config.MinLCMSupport * float64(len(transactions))))
	itemsets := lcm.NewMiner(transactions, minSupport).Mine()
	if len(itemsets) == 0 {
		return newEmptySummary(len(sentences)), nil
	}

	incidence := buildIncidenceMatrix(itemsets, transactions)

	decomposition, err := truncatedSVD(incidence)
	if err != nil {
		return nil, err
	}

	upperBound := relevantSingularValueBound(decomposition.sigma)

	itemsetScores := rowScores(&decomposition.u, decomposition.sigma, upperBound)
	normalizeByMax(itemsetScores)

	sentenceScores := rowScores(&decomposition.v, decomposition.sigma, upperBound)
	normalizeByMax(sentenceScores)

	salience := make([]float64, len(sentences))
	for column, sentenceIdx := range columnToSentence {
		salience[sentenceIdx] = sentenceScores[column]
	}

	scoredItemsets := make([]ScoredItemset, len(itemsets))
	for i, itemset := range itemsets {
		scoredItemsets[i] = ScoredItemset{
			Text:  renderItemset(indexer, itemset),
			Score: itemsetScores[i],
		}
	}

	return &Summary{
		SalienceScores:   salience,
		RelevantItemsets: scoredItemsets,
		RelevantKeywords: extractKeywords(scoredItemsets),
	}, nil
}

// renderItemset expands every item to its lemma n-gram and joins them with
// commas, e.g. "cat sat, on mat".
func renderItemset(indexer *itemIndexer, itemset lcm.Itemset) string {
	parts := make([]string, len(itemset.Items))
	for i, itemID := range itemset.Items {
		parts[i] = indexer.ngramText(itemID)
	}
	return strings.Join(parts, ", ")
}
