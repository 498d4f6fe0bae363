package summarizer

import (
	"github.com/lintang-b-s/text-summarizer/pkg"

	"github.com/go-playground/validator/v10"
)

// LemmaSet is a membership test over lemma strings. pkg/stoplist provides an
// FST-backed implementation for big ignore lists.
type LemmaSet interface {
	Contains(lemma string) bool
}

type mapLemmaSet map[string]struct{}

func (s mapLemmaSet) Contains(lemma string) bool {
	_, ok := s[lemma]
	return ok
}

// NewLemmaSet wraps a plain lemma list as a LemmaSet.
func NewLemmaSet(lemmas []string) LemmaSet {
	set := make(mapLemmaSet, len(lemmas))
	for _, lemma := range lemmas {
		set[lemma] = struct{}{}
	}
	return set
}

type Config struct {
	IgnoreLemmas  LemmaSet `validate:"-"`
	MinLCMSupport float64  `validate:"gt=0,lte=1"`
	MinNgramSize  int      `validate:"gte=1"`
	MaxNgramSize  int      `validate:"gtefield=MinNgramSize"`
}

func DefaultConfig() Config {
	return Config{
		MinLCMSupport: DEFAULT_MIN_LCM_SUPPORT,
		MinNgramSize:  DEFAULT_MIN_NGRAM_SIZE,
		MaxNgramSize:  DEFAULT_MAX_NGRAM_SIZE,
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return pkg.WrapErrorf(err, pkg.ErrBadParamInput, "invalid summarizer config")
	}
	return nil
}
