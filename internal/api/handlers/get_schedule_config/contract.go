package get_schedule_config

import (
	"context"

	"github.com/m04kA/KDP-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetActive(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
