package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/payment-service/internal/http/response"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
)

// Pinger зависимость, доступность которой проверяет readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	log   *slog.Logger
	cache Pinger
}

// New создаёт обработчик. cache может быть nil, если флаги статические.
func New(log *slog.Logger, cache Pinger) *Handler {
	return &Handler{
		log:   log,
		cache: cache,
	}
}

// Live godoc
// @Summary Liveness
// @Tags Health
// @Produce  json
// @Success 200 {object} response.OKResponse
// @Router /-/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}

// Ready godoc
// @Summary Readiness
// @Description Проверяет доступность Redis с фич-флагами.
// @Tags Health
// @Produce  json
// @Success 200 {object} response.OKResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /-/ready [get]
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health.ready"

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			h.log.Warn("redis is not ready", sl.Op(op), sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			render.JSON(w, r, response.Error("redis unavailable"))
			return
		}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}
