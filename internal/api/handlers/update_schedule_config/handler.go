package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/KDP-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/KDP-AvailabilityService/internal/service/schedule"
	"github.com/m04kA/KDP-AvailabilityService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация расписания"
	msgNotFound           = "активная конфигурация расписания не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	config, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule-config - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, schedule.ErrConfigNotFound):
			h.logger.Warn("PUT /schedule-config - No active schedule config")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /schedule-config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule-config - Config updated successfully: config_id=%d, blocks_count=%d",
		config.ID, len(config.TimeBlocks))
	handlers.RespondJSON(w, http.StatusOK, config)
}
