package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/KDP-AvailabilityService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/KDP-AvailabilityService/internal/usecase/get_month_availability"
)

const (
	msgInvalidYear    = "некорректный год"
	msgInvalidMonth   = "некорректный месяц"
	msgNoActiveConfig = "нет активной конфигурации расписания"
	msgInvalidInput   = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/months/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /availability/months/{year}/{month} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /availability/months/{year}/{month} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrNoActiveConfig):
			h.logger.Warn("GET /availability/months/{year}/{month} - No active schedule config")
			handlers.RespondNotFound(w, msgNoActiveConfig)

		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/months/{year}/{month} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /availability/months/{year}/{month} - Failed to get calendar: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/months/{year}/{month} - Calendar retrieved successfully: year=%d, month=%d, days_count=%d",
		year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
