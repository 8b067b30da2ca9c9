package get_schedule_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/KDP-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/KDP-AvailabilityService/internal/service/schedule"
)

const (
	msgNotFound = "активная конфигурация расписания не найдена"
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

// Handle GET /api/v1/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, err := h.service.GetActive(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrConfigNotFound):
			h.logger.Warn("GET /schedule-config - No active schedule config")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /schedule-config - Failed to get config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule-config - Config retrieved successfully: config_id=%d", config.ID)
	handlers.RespondJSON(w, http.StatusOK, config)
}
