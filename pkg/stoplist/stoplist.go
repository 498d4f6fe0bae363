package stoplist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
	"github.com/klauspost/compress/gzip"
)

// Stoplist is an ignore-lemma set compiled to an FST. Morphological stoplists
// easily run to tens of thousands of lemmas; the FST keeps membership checks
// allocation-free and the whole set in a few hundred kilobytes.
type Stoplist struct {
	lemmaFST *vellum.FST
}

// New compiles the lemma list. Input order does not matter; duplicates are
// dropped.
func New(lemmas []string) (*Stoplist, error) {
	sorted := append([]string{}, lemmas...)
	sort.Strings(sorted)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("error when creating stoplist fst builder: %w", err)
	}

	prev := ""
	for i, lemma := range sorted {
		if lemma == "" || (i > 0 && lemma == prev) {
			continue
		}
		if err := builder.Insert([]byte(lemma), 0); err != nil {
			return nil, fmt.Errorf("error when inserting lemma %q into stoplist fst: %w", lemma, err)
		}
		prev = lemma
	}
	if err := builder.Close(); err != nil {
		return nil, fmt.Errorf("error when finishing stoplist fst: %w", err)
	}

	lemmaFST, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("error when loading stoplist fst: %w", err)
	}

	return &Stoplist{lemmaFST: lemmaFST}, nil
}

// FromFile reads one lemma per line. Files ending in .gz are decompressed on
// the fly.
func FromFile(path string) (*Stoplist, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error when opening stoplist file %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("error when opening gzip stoplist file %s: %w", path, err)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	lemmas := []string{}
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lemma := strings.TrimSpace(scanner.Text())
		if lemma == "" {
			continue
		}
		lemmas = append(lemmas, lemma)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error when reading stoplist file %s: %w", path, err)
	}

	return New(lemmas)
}

func (s *Stoplist) Contains(lemma string) bool {
	_, exists, err := s.lemmaFST.Get([]byte(lemma))
	return err == nil && exists
}

func (s *Stoplist) Len() int {
	return s.lemmaFST.Len()
}
