package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"fxconvert/internal/conversion"
	"fxconvert/internal/domain"

	"github.com/sirupsen/logrus"
)

const formTemplate = "index.html"

type converter interface {
	Convert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error)
}

type Handler struct {
	service     converter
	view        *template.Template
	currencies  *conversion.Currencies
	defaultFrom string
	defaultTo   string
	log         logrus.FieldLogger
}

// NewConversionHandler builds the form and api handlers. log receives every conversion error.
func NewConversionHandler(service converter, view *template.Template, currencies *conversion.Currencies, defaultFrom, defaultTo string, log logrus.FieldLogger) *Handler {
	return &Handler{
		service:     service,
		view:        view,
		currencies:  currencies,
		defaultFrom: defaultFrom,
		defaultTo:   defaultTo,
		log:         log,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{Error: errorMsg})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// formView is the data the form template is rendered with.
type formView struct {
	Amount       string
	FromCurrency string
	ToCurrency   string
	Currencies   []string
	Result       string
	Error        string
}

func (h *Handler) render(w http.ResponseWriter, view formView) {
	view.Currencies = conversion.NewCurrencies(h.currencies.Codes(), view.FromCurrency, view.ToCurrency).Codes()

	var buf bytes.Buffer
	if err := h.view.ExecuteTemplate(&buf, formTemplate, view); err != nil {
		h.log.WithError(err).WithField("template", formTemplate).Error("failed to render form")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
