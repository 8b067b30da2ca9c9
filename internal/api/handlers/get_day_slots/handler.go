package get_day_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/KDP-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/KDP-AvailabilityService/internal/usecase/get_day_slots"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoActiveConfig = "нет активной конфигурации расписания"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/days/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем дату из URL
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /availability/days/{date}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrNoActiveConfig):
			h.logger.Warn("GET /availability/days/{date}/slots - No active schedule config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/days/{date}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/days/{date}/slots - Failed to get slots: date=%s, error=%v",
				vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/days/{date}/slots - Slots retrieved successfully: date=%s, blocks_count=%d",
		result.Date, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
