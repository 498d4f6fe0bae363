package summarizer_di

import (
	"github.com/lintang-b-s/text-summarizer/pkg/di/config"
	"github.com/lintang-b-s/text-summarizer/pkg/http/usecases"
	"github.com/lintang-b-s/text-summarizer/pkg/kvdb"
	"github.com/lintang-b-s/text-summarizer/pkg/stoplist"
	"github.com/lintang-b-s/text-summarizer/pkg/summarizer"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the summarize service. The *config.Config dependency makes sure
// the config file was loaded before the viper keys are read.
func New(_ *config.Config, log *zap.Logger, db *kvdb.KVDB) (*usecases.SummarizerService, error) {
	viper.SetDefault("SUMMARIZER_MIN_LCM_SUPPORT", summarizer.DEFAULT_MIN_LCM_SUPPORT)
	viper.SetDefault("SUMMARIZER_NGRAM_MIN", summarizer.DEFAULT_MIN_NGRAM_SIZE)
	viper.SetDefault("SUMMARIZER_NGRAM_MAX", summarizer.DEFAULT_MAX_NGRAM_SIZE)
	viper.SetDefault("SUMMARIZER_STOPLIST_PATH", "")

	cfg := summarizer.Config{
		MinLCMSupport: viper.GetFloat64("SUMMARIZER_MIN_LCM_SUPPORT"),
		MinNgramSize:  viper.GetInt("SUMMARIZER_NGRAM_MIN"),
		MaxNgramSize:  viper.GetInt("SUMMARIZER_NGRAM_MAX"),
	}

	if stoplistPath := viper.GetString("SUMMARIZER_STOPLIST_PATH"); stoplistPath != "" {
		ignoreLemmas, err := stoplist.FromFile(stoplistPath)
		if err != nil {
			return nil, err
		}
		cfg.IgnoreLemmas = ignoreLemmas
	}

	return usecases.New(log, cfg, db)
}
