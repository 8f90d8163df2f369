package handler

import (
	"net/http"
	"strings"

	"fxconvert/internal/conversion"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Home renders the empty form with the default currencies selected.
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	h.render(w, formView{
		FromCurrency: h.defaultFrom,
		ToCurrency:   h.defaultTo,
	})
}

// Convert handles the form submission. Every outcome re-renders the form with the user's input.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	amount := r.PostFormValue("amount")
	from := r.PostFormValue("fromCurrency")
	to := r.PostFormValue("toCurrency")

	view := formView{
		Amount:       amount,
		FromCurrency: strings.ToUpper(strings.TrimSpace(from)),
		ToCurrency:   strings.ToUpper(strings.TrimSpace(to)),
	}

	req, err := conversion.ParseRequest(amount, from, to)
	if err != nil {
		view.Error = err.Error()
		h.render(w, view)
		return
	}

	res, err := h.service.Convert(r.Context(), req)
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"handler":       "Convert",
			"conversion_id": uuid.NewString(),
			"amount":        req.Amount.String(),
			"from":          req.From,
			"to":            req.To,
		}).Error("Conversion error")
		view.Error = "Failed to convert: " + err.Error()
		h.render(w, view)
		return
	}

	view.Result = res.String()
	h.render(w, view)
}
