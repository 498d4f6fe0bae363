package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/text-summarizer/pkg/http/usecases"
	helper "github.com/lintang-b-s/text-summarizer/pkg/http/http-router/router-helper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"

	"go.uber.org/zap"
)

type summarizeAPI struct {
	summarizeService SummarizeService
	log              *zap.Logger
}

func New(summarizeService SummarizeService, log *zap.Logger) *summarizeAPI {
	return &summarizeAPI{
		summarizeService: summarizeService,
		log:              log,
	}

}

func (api *summarizeAPI) Routes(group *helper.RouteGroup) {
	group.POST("/summarize", api.summarize)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// summarizeRequest model info
//
//	@Description	request body for extractive summarization.
type summarizeRequest struct {
	Text            string  `json:"text" validate:"required"`                          // document text to summarize.
	SummaryStrength float64 `json:"summary_strength" validate:"required,gt=0,lte=1"`   // salience threshold a sentence must reach to enter the summary.
	MaxKeywords     int     `json:"max_keywords" validate:"min=0,max=100"`             // cap on the returned keywords, 0 = all.
}

// summarizeResponse model info
//
//	@Description	response body with the selected sentences, relevant itemsets and keywords.
type summarizeResponse struct {
	Data usecases.SummaryResult `json:"data"`
}

// summarize godoc
// @Summary		summarize operation scores every sentence of the given text and returns the ones above the requested summary strength, together with the relevant itemsets and keywords.
// @Description	summarize operation scores every sentence of the given text and returns the ones above the requested summary strength, together with the relevant itemsets and keywords.
// @Tags			summarize
// @ID summarize
// @Param			body	body	summarizeRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/summarize [post]
// @Success		200	{object}	summarizeResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *summarizeAPI) summarize(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request summarizeRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	validate := validator.New()

	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	result, err := api.summarizeService.Summarize(request.Text, request.SummaryStrength, request.MaxKeywords)
	if err != nil {
		api.errorStatusResponse(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": result}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
