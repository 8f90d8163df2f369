package handler

import (
	"errors"
	"net/http"

	"fxconvert/internal/conversion"
	"fxconvert/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GetConversionResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted"`
}

// GetConversion godoc
// @Summary Convert an amount
// @Description JSON counterpart of the form, backed by the same conversion service
// @Tags Conversion
// @Produce json
// @Param from path string true "Source currency code" example(USD)
// @Param to path string true "Target currency code" example(EUR)
// @Param amount query string true "Decimal amount" example(100)
// @Success 200 {object} GetConversionResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /convert/{from}/{to} [get]
func (h *Handler) GetConversion(w http.ResponseWriter, r *http.Request) {
	req, err := conversion.ParseRequest(r.URL.Query().Get("amount"), chi.URLParam(r, "from"), chi.URLParam(r, "to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.Convert(r.Context(), req)
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"handler":       "GetConversion",
			"conversion_id": uuid.NewString(),
			"amount":        req.Amount.String(),
			"from":          req.From,
			"to":            req.To,
		}).Error("Conversion error")
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GetConversionResponse{
		From:      res.Request.From,
		To:        res.Request.To,
		Amount:    res.Request.Amount,
		Result:    res.Converted,
		Formatted: res.String(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownCurrency):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
