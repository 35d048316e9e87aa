// Package quote реализует HTTP-обработчик расчёта стоимости доставки.
package quote

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/payment-service/internal/http/response"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
)

type Service interface {
	Quote(ctx context.Context, itemCount int) float64
}

// Request тело запроса. NumberOfItems отсутствует: стоимость равна нулю.
type Request struct {
	NumberOfItems *int `json:"numberOfItems" validate:"omitempty,min=0"`
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
// @Summary Рассчитать стоимость доставки
// @Description Возвращает стоимость доставки numberOfItems позиций числом, округлённым до центов.
// @Tags Quote
// @Accept  json
// @Produce  json
// @Param request body Request true "Количество позиций"
// @Success 200 {number} number "Стоимость"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /getquote [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.quote"
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

	items := 0
	if req.NumberOfItems == nil {
		log.Warn("numberOfItems not provided, quoting zero items")
	} else {
		items = *req.NumberOfItems
	}

	cost := h.service.Quote(r.Context(), items)
	log.Info("quote calculated", slog.Int("items", items), slog.Float64("cost", cost))
	render.JSON(w, r, cost)
}
