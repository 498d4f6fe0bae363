package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lintang-b-s/text-summarizer/pkg"

	"go.uber.org/zap"
)

// writeJSON marshals data structure to encoded JSON response.
func (api *summarizeAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')
	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		api.log.Error("failed to write JSON response", zap.Error(err))
		return err
	}

	return nil
}

func (api *summarizeAPI) errorResponse(w http.ResponseWriter, r *http.Request,
	status int, message string) {
	resp := errorResponse{}
	resp.Error.Code = http.StatusText(status)
	resp.Error.Message = message

	js, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

func (api *summarizeAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *summarizeAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.Error(err))
	api.errorResponse(w, r, http.StatusInternalServerError, pkg.MessageInternalServerError)
}

// errorStatusResponse maps the domain error code to an http status.
func (api *summarizeAPI) errorStatusResponse(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *pkg.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Code() {
		case pkg.ErrBadParamInput:
			api.BadRequestResponse(w, r, err)
			return
		case pkg.ErrNotFound:
			api.errorResponse(w, r, http.StatusNotFound, err.Error())
			return
		}
	}
	api.ServerErrorResponse(w, r, err)
}
