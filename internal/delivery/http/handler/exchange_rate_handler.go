package handler

import (
	"net/http"

	"kbeauty-insider/internal/delivery/dto"
	"kbeauty-insider/internal/usecase"
	"kbeauty-insider/pkg/response"
)

type ExchangeRateHandler struct {
	exchangeRateUsecase usecase.ExchangeRateUsecase
}

func NewExchangeRateHandler(exchangeRateUsecase usecase.ExchangeRateUsecase) *ExchangeRateHandler {
	return &ExchangeRateHandler{
		exchangeRateUsecase: exchangeRateUsecase,
	}
}

// GetExchangeRate always answers with a usable rate; resolution failures
// fall back rather than erroring so the marketing pages never break.
func (h *ExchangeRateHandler) GetExchangeRate(w http.ResponseWriter, r *http.Request) {
	rate := h.exchangeRateUsecase.CurrentRate(r.Context())
	response.JSON(w, http.StatusOK, dto.ExchangeRateResponse{Rate: rate})
}
