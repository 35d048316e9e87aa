// Package flags реализует административные HTTP-обработчики фич-флагов.
//
// Чтение доступно для любого источника, изменение только если передан
// featureflag.Writer (Redis). Для статического источника изменяющие
// запросы возвращают 501.
package flags

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/payment-service/internal/featureflag"
	"github.com/magabrotheeeer/payment-service/internal/http/response"
	"github.com/magabrotheeeer/payment-service/internal/lib/sl"
)

// Flag состояние флага в ответе.
type Flag struct {
	Name    string `json:"name" example:"paymentServiceFailure"`
	Enabled bool   `json:"enabled" example:"false"`
	Found   bool   `json:"found" example:"true"`
}

// Request тело запроса PUT.
type Request struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Reader читает флаг вместе с признаком его наличия в источнике.
type Reader interface {
	Lookup(ctx context.Context, name string) (value bool, found bool, err error)
}

type Handler struct {
	log      *slog.Logger
	reader   Reader
	writer   featureflag.Writer
	validate *validator.Validate
}

// New создаёт обработчики. writer может быть nil, тогда флаги доступны только для чтения.
func New(log *slog.Logger, reader Reader, writer featureflag.Writer) *Handler {
	return &Handler{
		log:      log,
		reader:   reader,
		writer:   writer,
		validate: validator.New(),
	}
}

// Get godoc
// @Summary Получить фич-флаг
// @Tags Flags
// @Produce  json
// @Param name path string true "Имя флага"
// @Success 200 {object} response.OKResponse{data=Flag}
// @Failure 500 {object} response.ErrorResponse "Источник флагов недоступен"
// @Router /api/v1/flags/{name} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.flags.get"
	log := h.logger(op, r)
	name := chi.URLParam(r, "name")

	value, found, err := h.reader.Lookup(r.Context(), name)
	if err != nil {
		log.Error("failed to read flag", slog.String("flag", name), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to read flag"))
		return
	}

	render.JSON(w, r, response.OKWithData(Flag{Name: name, Enabled: value, Found: found}))
}

// Put godoc
// @Summary Установить фич-флаг
// @Tags Flags
// @Accept  json
// @Produce  json
// @Param name path string true "Имя флага"
// @Param request body Request true "Новое значение"
// @Security BearerAuth
// @Success 200 {object} response.OKResponse{data=Flag}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет токена администратора"
// @Failure 403 {object} response.ErrorResponse "Роль не admin"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 501 {object} response.ErrorResponse "Источник флагов только для чтения"
// @Router /api/v1/flags/{name} [put]
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.flags.put"
	log := h.logger(op, r)
	name := chi.URLParam(r, "name")

	writer, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

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

	if err := writer.SetBool(r.Context(), name, *req.Enabled); err != nil {
		log.Error("failed to set flag", slog.String("flag", name), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to set flag"))
		return
	}

	log.Info("flag updated", slog.String("flag", name), slog.Bool("enabled", *req.Enabled))
	render.JSON(w, r, response.OKWithData(Flag{Name: name, Enabled: *req.Enabled, Found: true}))
}

// Delete godoc
// @Summary Удалить фич-флаг
// @Description После удаления используется значение по умолчанию.
// @Tags Flags
// @Produce  json
// @Param name path string true "Имя флага"
// @Security BearerAuth
// @Success 200 {object} response.OKResponse{data=Flag}
// @Failure 401 {object} response.ErrorResponse "Нет токена администратора"
// @Failure 403 {object} response.ErrorResponse "Роль не admin"
// @Failure 501 {object} response.ErrorResponse "Источник флагов только для чтения"
// @Router /api/v1/flags/{name} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.flags.delete"
	log := h.logger(op, r)
	name := chi.URLParam(r, "name")

	writer, ok := h.requireWriter(w, r)
	if !ok {
		return
	}

	if err := writer.Delete(r.Context(), name); err != nil {
		log.Error("failed to delete flag", slog.String("flag", name), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorWithCode(response.CodeInternal, "failed to delete flag"))
		return
	}

	log.Info("flag deleted", slog.String("flag", name))
	render.JSON(w, r, response.OKWithData(Flag{Name: name}))
}

func (h *Handler) requireWriter(w http.ResponseWriter, r *http.Request) (featureflag.Writer, bool) {
	if h.writer == nil {
		w.WriteHeader(http.StatusNotImplemented)
		render.JSON(w, r, response.ErrorWithCode(response.CodeNotImplemented, "flag provider is read-only"))
		return nil, false
	}
	return h.writer, true
}

func (h *Handler) logger(op string, r *http.Request) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}
