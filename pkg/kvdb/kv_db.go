package kvdb

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/lintang-b-s/text-summarizer/pkg/summarizer"

	"github.com/klauspost/compress/s2"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_BUCKET = "summaries"
)

// KVDB caches finished summaries keyed by document content + config, so the
// API does not recompute the pipeline for a text it has already seen. Values
// are msgpack encoded and s2 compressed.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BBOLTDB_BUCKET))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error when creating summary bucket: %w", err)
	}

	return &KVDB{db: db}, nil
}

// SummaryKey derives the cache key: hex sha256 over the document text and the
// config fingerprint.
func SummaryKey(text string, cfg summarizer.Config) string {
	h := sha256.New()
	h.Write([]byte(text))
	fmt.Fprintf(h, "|%g|%d|%d", cfg.MinLCMSupport, cfg.MinNgramSize, cfg.MaxNgramSize)
	return hex.EncodeToString(h.Sum(nil))
}

func (db *KVDB) PutSummary(key string, summary *summarizer.Summary) error {
	db.Lock()
	defer db.Unlock()

	summaryBytes, err := serializeSummary(summary)
	if err != nil {
		return err
	}

	return db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		return b.Put([]byte(key), summaryBytes)
	})
}

func (db *KVDB) GetSummary(key string) (summary *summarizer.Summary, err error) {
	db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_BUCKET))
		summaryBytes := b.Get([]byte(key))
		if summaryBytes == nil {
			err = ErrorsKeyNotExists
			return nil
		}
		summary, err = deserializeSummary(summaryBytes)
		return nil
	})
	return
}

func (db *KVDB) Close() error {
	return db.db.Close()
}

func serializeSummary(summary *summarizer.Summary) ([]byte, error) {
	raw, err := msgpack.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("error when encoding summary: %w", err)
	}
	return s2.Encode(nil, raw), nil
}

func deserializeSummary(summaryBytes []byte) (*summarizer.Summary, error) {
	raw, err := s2.Decode(nil, summaryBytes)
	if err != nil {
		return nil, fmt.Errorf("error when decompressing summary: %w", err)
	}
	var summary summarizer.Summary
	if err := msgpack.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("error when decoding summary: %w", err)
	}
	return &summary, nil
}
