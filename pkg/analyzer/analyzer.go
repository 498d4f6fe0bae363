package analyzer

import (
	"regexp"
	"strings"

	"github.com/lintang-b-s/text-summarizer/pkg/morph"

	"github.com/RadhiFadlillah/go-sastrawi"
)

// Analyzer is a small self-contained morpho-syntactic front end: regex
// sentence segmentation, sastrawi tokenization and stemming, and a
// function-word table for word classes. Production deployments plug a real
// tokenizer/parser in and hand morph.Sentence values to the summarizer
// directly; this one exists so the CLI and the API can run standalone.
type Analyzer struct {
	functionWords map[string]morph.WordClass
}

var dictionary = sastrawi.DefaultDictionary()

var stemmer = sastrawi.NewStemmer(dictionary)

var (
	sentenceRegex = regexp.MustCompile(`[^.!?]+[.!?]*`)
	numeralRegex  = regexp.MustCompile(`^[0-9]+([.,][0-9]+)?$`)
)

func New() *Analyzer {
	return &Analyzer{
		functionWords: defaultFunctionWords(),
	}
}

// Analyze segments the text into sentences and annotates every token with a
// single morphological analysis.
func (a *Analyzer) Analyze(text string) []morph.Sentence {
	sentences := []morph.Sentence{}

	position := 0
	for _, rawSentence := range sentenceRegex.FindAllString(text, -1) {
		if strings.TrimSpace(rawSentence) == "" {
			continue
		}

		words := sastrawi.Tokenize(rawSentence)
		tokens := make([]morph.Token, 0, len(words))
		for i, word := range words {
			tokens = append(tokens, morph.NewToken(word, i, []morph.Morphology{a.analyzeWord(word)}))
		}
		if len(tokens) == 0 {
			continue
		}

		sentences = append(sentences, morph.NewSentence(tokens, position))
		position++
	}

	return sentences
}

func (a *Analyzer) analyzeWord(word string) morph.Morphology {
	lowered := strings.ToLower(word)
	if class, ok := a.functionWords[lowered]; ok {
		return morph.NewMorphology(lowered, class)
	}
	if numeralRegex.MatchString(lowered) {
		return morph.NewMorphology(lowered, morph.Numeral)
	}

	// open-class token: lemma is the stem, treated as noun-like
	return morph.NewMorphology(stemmer.Stem(lowered), morph.Noun)
}

func defaultFunctionWords() map[string]morph.WordClass {
	table := map[string]morph.WordClass{}
	add := func(class morph.WordClass, words ...string) {
		for _, word := range words {
			table[word] = class
		}
	}

	add(morph.Pronoun, "saya", "aku", "kamu", "engkau", "dia", "ia", "beliau",
		"kami", "kita", "kalian", "mereka")
	add(morph.Adposition, "di", "ke", "dari", "pada", "kepada", "dengan",
		"untuk", "oleh", "dalam", "tentang", "antara", "hingga", "sampai")
	add(morph.Conjunction, "dan", "atau", "tetapi", "tapi", "namun", "serta",
		"karena", "sebab", "jika", "kalau", "ketika", "saat", "sehingga",
		"agar", "supaya", "bahwa", "walaupun", "meskipun")
	add(morph.Particle, "yang", "pun", "lah", "kah", "saja", "juga", "hanya",
		"tidak", "bukan", "belum", "sudah", "telah", "akan", "sedang",
		"masih", "ini", "itu", "para", "sang", "si", "adalah", "ialah")

	return table
}
