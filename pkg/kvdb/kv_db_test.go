package kvdb

import (
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/text-summarizer/pkg/summarizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func newTestDB(t *testing.T) *KVDB {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "cache.db"), 0600, nil)
	require.NoError(t, err)

	kv, err := NewKVDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	return kv
}

func TestSummaryRoundtrip(t *testing.T) {
	kv := newTestDB(t)

	summary := &summarizer.Summary{
		SalienceScores: []float64{1.0, 0.25, 0.0},
		RelevantItemsets: []summarizer.ScoredItemset{
			{Text: "harga naik", Score: 1.0},
		},
		RelevantKeywords: []summarizer.ScoredKeyword{
			{Keyword: "harga", Score: 1.0},
			{Keyword: "naik", Score: 1.0},
		},
	}

	key := SummaryKey("Harga naik.", summarizer.DefaultConfig())
	require.NoError(t, kv.PutSummary(key, summary))

	got, err := kv.GetSummary(key)
	require.NoError(t, err)
	assert.Equal(t, summary, got)
}

func TestGetSummaryMissingKey(t *testing.T) {
	kv := newTestDB(t)

	_, err := kv.GetSummary("nope")
	assert.ErrorIs(t, err, ErrorsKeyNotExists)
}

func TestSummaryKey(t *testing.T) {
	cfg := summarizer.DefaultConfig()

	assert.Equal(t, SummaryKey("text", cfg), SummaryKey("text", cfg))
	assert.NotEqual(t, SummaryKey("text", cfg), SummaryKey("other", cfg))

	changed := cfg
	changed.MaxNgramSize = 5
	assert.NotEqual(t, SummaryKey("text", cfg), SummaryKey("text", changed))
}
