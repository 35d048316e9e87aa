// Package charge реализует HTTP-обработчик авторизации списания с карты.
//
// Handler декодирует и валидирует запрос, вызывает сервис списания и
// сопоставляет доменные отказы с HTTP-статусами и кодами ошибок.
package charge

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/payment-service/internal/http/response"
	"github.com/magabrotheeeer/payment-service/internal/lib/card"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
	"github.com/magabrotheeeer/payment-service/internal/models"
	chargeservice "github.com/magabrotheeeer/payment-service/internal/services/charge"
)

// Service описывает интерфейс авторизации списания.
type Service interface {
	Charge(ctx context.Context, req models.ChargeRequest) (*models.ChargeOutcome, error)
}

// CreditCard данные карты в теле запроса.
type CreditCard struct {
	Number          string `json:"number" validate:"required,numeric" example:"4111111111111111"`
	ExpirationMonth int    `json:"expiration_month" validate:"min=1,max=12" example:"12"`
	ExpirationYear  int    `json:"expiration_year" validate:"min=1000,max=9999" example:"2030"`
}

// Amount сумма списания.
type Amount struct {
	Units        int64  `json:"units" validate:"min=0" example:"42"`
	Nanos        int32  `json:"nanos" validate:"min=0,max=999999999" example:"500000000"`
	CurrencyCode string `json:"currency_code" validate:"required,len=3,alpha" example:"USD"`
}

// Request тело запроса POST /api/v1/charge.
type Request struct {
	CreditCard CreditCard `json:"credit_card"`
	Amount     Amount     `json:"amount"`
}

// Response данные успешного ответа.
type Response struct {
	TransactionID  string `json:"transaction_id" example:"8a1f0c52-6a5f-4a3e-9d59-1f5f2f0b7a11"`
	Charged        bool   `json:"charged" example:"true"`
	LastFourDigits string `json:"last_four_digits" example:"1111"`
	Network        string `json:"network" example:"visa"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизовать списание
// @Description Проверяет карту и срок её действия, выдаёт идентификатор транзакции.
// @Description Запросы с baggage synthetic_request=true проверяются, но не списываются.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body Request true "Карта и сумма"
// @Success 200 {object} response.OKResponse{data=Response} "Списание авторизовано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или номер карты"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации, карта не принимается или просрочена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка"
// @Failure 503 {object} response.ErrorResponse "Списания отключены"
// @Router /api/v1/charge [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.charge"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ErrorWithCode(response.CodeInvalidRequest, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	log = log.With(slog.String("card", card.Mask(req.CreditCard.Number)))

	outcome, err := h.service.Charge(r.Context(), req.toModel())
	if err != nil {
		status, body := errorResponse(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to charge", sl.Err(err))
		} else {
			log.Info("charge declined", slog.String("code", body.Code))
		}
		w.WriteHeader(status)
		render.JSON(w, r, body)
		return
	}

	log.Info("charge authorized",
		slog.String("transaction_id", outcome.TransactionID),
		slog.Bool("charged", outcome.Charged),
	)
	render.JSON(w, r, response.OKWithData(Response{
		TransactionID:  outcome.TransactionID,
		Charged:        outcome.Charged,
		LastFourDigits: outcome.LastFourDigits,
		Network:        outcome.Network.String(),
	}))
}

func (req Request) toModel() models.ChargeRequest {
	return models.ChargeRequest{
		Card: models.CreditCard{
			Number:          req.CreditCard.Number,
			ExpirationMonth: req.CreditCard.ExpirationMonth,
			ExpirationYear:  req.CreditCard.ExpirationYear,
		},
		Amount: models.Money{
			Units:        req.Amount.Units,
			Nanos:        req.Amount.Nanos,
			CurrencyCode: req.Amount.CurrencyCode,
		},
	}
}

// errorResponse сопоставляет отказ сервиса со статусом. Тексты доменных ошибок не содержат номера карты.
func errorResponse(err error) (int, response.ErrorResponse) {
	switch {
	case errors.Is(err, chargeservice.ErrServiceDisabled):
		return http.StatusServiceUnavailable, response.ErrorWithCode(response.CodeServiceDisabled, err.Error())
	case errors.Is(err, chargeservice.ErrInvalidCard):
		return http.StatusBadRequest, response.ErrorWithCode(response.CodeInvalidCard, err.Error())
	case errors.Is(err, chargeservice.ErrUnsupportedNetwork):
		return http.StatusUnprocessableEntity, response.ErrorWithCode(response.CodeUnsupportedNetwork, err.Error())
	case errors.Is(err, chargeservice.ErrCardExpired):
		return http.StatusUnprocessableEntity, response.ErrorWithCode(response.CodeCardExpired, err.Error())
	}
	return http.StatusInternalServerError, response.ErrorWithCode(response.CodeInternal, "internal error")
}
