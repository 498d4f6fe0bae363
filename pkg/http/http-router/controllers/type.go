package controllers

import "github.com/lintang-b-s/text-summarizer/pkg/http/usecases"

type SummarizeService interface {
	Summarize(text string, strength float64, maxKeywords int) (usecases.SummaryResult, error)
}

type envelope map[string]interface{}
