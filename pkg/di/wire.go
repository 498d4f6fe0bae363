//go:build wireinject

//go:generate wire
package di

import (
	"context"

	"github.com/lintang-b-s/text-summarizer/pkg/di/config"
	shortcontext "github.com/lintang-b-s/text-summarizer/pkg/di/context"
	kv_di "github.com/lintang-b-s/text-summarizer/pkg/di/kv"
	logger_di "github.com/lintang-b-s/text-summarizer/pkg/di/logger"
	summarizer_di "github.com/lintang-b-s/text-summarizer/pkg/di/summarizer"
	summarizerHttp "github.com/lintang-b-s/text-summarizer/pkg/http"
	"github.com/lintang-b-s/text-summarizer/pkg/http/http-router/controllers"
	"github.com/lintang-b-s/text-summarizer/pkg/http/usecases"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var defaultSet = wire.NewSet(
	shortcontext.New,
	config.New,
	logger_di.New,
	kv_di.New,
	summarizer_di.New,
)

var summarizerSet = wire.NewSet(
	defaultSet,
	NewSummarizeService,
	NewSummarizerAPIServer,
)

func NewSummarizeService(service *usecases.SummarizerService) controllers.SummarizeService {
	return service
}

func NewSummarizerAPIServer(ctx context.Context, log *zap.Logger,
	summarizeService controllers.SummarizeService) (*summarizerHttp.Server, error) {
	api := summarizerHttp.NewServer(log)

	apiService, err := api.Use(
		ctx, log, summarizeService,
	)
	if err != nil {
		return nil, err
	}

	return apiService, nil
}

func InitializeSummarizerService() (*summarizerHttp.Server, func(), error) {

	panic(wire.Build(summarizerSet))
}
