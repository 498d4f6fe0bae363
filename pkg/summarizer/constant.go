package summarizer

// default tuning params
const (
	DEFAULT_MIN_LCM_SUPPORT  = 0.01
	DEFAULT_MIN_NGRAM_SIZE   = 2
	DEFAULT_MAX_NGRAM_SIZE   = 4
	DEFAULT_SALIENCE_BUCKETS = 10
)
