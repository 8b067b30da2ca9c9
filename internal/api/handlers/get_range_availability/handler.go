package get_range_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	getRangeAvailability "github.com/m04kA/KDP-AvailabilityService/internal/usecase/get_range_availability"
)

const (
	msgMissingStartDate = "параметр startDate обязателен"
	msgMissingEndDate   = "параметр endDate обязателен"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange     = "некорректный диапазон дат"
	msgRangeTooLarge    = "диапазон дат слишком большой"
	msgNoActiveConfig   = "нет активной конфигурации расписания"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetRangeAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetRangeAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/range
// Query params: startDate (required, YYYY-MM-DD), endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startDateStr := r.URL.Query().Get("startDate")
	if startDateStr == "" {
		h.logger.Warn("GET /availability/range - Missing startDate")
		handlers.RespondBadRequest(w, msgMissingStartDate)
		return
	}

	endDateStr := r.URL.Query().Get("endDate")
	if endDateStr == "" {
		h.logger.Warn("GET /availability/range - Missing endDate")
		handlers.RespondBadRequest(w, msgMissingEndDate)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /availability/range - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /availability/range - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRangeAvailability.Request{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getRangeAvailability.ErrNoActiveConfig):
			h.logger.Warn("GET /availability/range - No active schedule config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		case errors.Is(err, getRangeAvailability.ErrRangeTooLarge):
			h.logger.Warn("GET /availability/range - Range too large: start=%s, end=%s", startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getRangeAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability/range - Invalid range: start=%s, end=%s", startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getRangeAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/range - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/range - Failed to classify range: start=%s, end=%s, error=%v",
				startDateStr, endDateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/range - Range classified successfully: start=%s, end=%s, days_count=%d",
		result.StartDate, result.EndDate, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
