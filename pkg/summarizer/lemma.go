package summarizer

import (
	"github.com/lintang-b-s/text-summarizer/pkg/morph"
)

// relevantLemmas extracts the content-word lemmas of one sentence in source
// order. Only the first morphological analysis of each token is consulted;
// tokens without analyses, function words, and ignored lemmas are skipped.
// Duplicates stay.
func (s *Summarizer) relevantLemmas(sentence morph.Sentence) []string {
	lemmas := make([]string, 0, len(sentence.Tokens))
	for _, token := range sentence.Tokens {
		if len(token.FlatMorphologies) == 0 {
			continue
		}
		morphology := token.FlatMorphologies[0]
		if !morphology.IsContentWord() {
			continue
		}
		if s.config.IgnoreLemmas != nil && s.config.IgnoreLemmas.Contains(morphology.Lemma) {
			continue
		}
		lemmas = append(lemmas, morphology.Lemma)
	}
	return lemmas
}
