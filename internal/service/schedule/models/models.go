package models

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// Request модели

// TimeBlockRequest описание блока расписания в запросе
type TimeBlockRequest struct {
	Name                 string `json:"name"`
	Days                 []int  `json:"days"`      // 0 = воскресенье .. 6 = суббота
	StartTime            string `json:"startTime"` // "10:00"
	EndTime              string `json:"endTime"`   // "20:30"
	DurationHours        int    `json:"durationHours"`
	HalfHourBreak        bool   `json:"halfHourBreak"`
	MaxEventsPerBlock    int    `json:"maxEventsPerBlock"`
	OneReservationPerDay bool   `json:"oneReservationPerDay"`
}

// RestDayRequest описание дня отдыха в запросе
type RestDayRequest struct {
	Day           int     `json:"day"` // 0 = воскресенье .. 6 = суббота
	Fee           float64 `json:"fee"`
	CanBeReleased bool    `json:"canBeReleased"`
}

// UpdateScheduleRequest запрос на замену активной конфигурации расписания
type UpdateScheduleRequest struct {
	Name                      string             `json:"name"`
	TimeBlocks                []TimeBlockRequest `json:"timeBlocks"`
	RestDays                  []RestDayRequest   `json:"restDays"`
	OneEventPerDay            bool               `json:"oneEventPerDay"`
	DefaultEventDurationHours int                `json:"defaultEventDurationHours"`
}

// ToDomainConfig конвертирует запрос в domain модель
func (r *UpdateScheduleRequest) ToDomainConfig() *domain.ScheduleConfig {
	config := &domain.ScheduleConfig{
		Name:                      r.Name,
		OneEventPerDay:            r.OneEventPerDay,
		DefaultEventDurationHours: r.DefaultEventDurationHours,
		TimeBlocks:                make([]domain.TimeBlock, len(r.TimeBlocks)),
		RestDays:                  make([]domain.RestDay, len(r.RestDays)),
	}

	for i, block := range r.TimeBlocks {
		config.TimeBlocks[i] = domain.TimeBlock{
			Name:                 block.Name,
			Days:                 block.Days,
			StartTime:            types.TimeString(block.StartTime),
			EndTime:              types.TimeString(block.EndTime),
			DurationHours:        block.DurationHours,
			HalfHourBreak:        block.HalfHourBreak,
			MaxEventsPerBlock:    block.MaxEventsPerBlock,
			OneReservationPerDay: block.OneReservationPerDay,
		}
	}

	for i, rd := range r.RestDays {
		config.RestDays[i] = domain.RestDay{
			Day:           rd.Day,
			Fee:           rd.Fee,
			CanBeReleased: rd.CanBeReleased,
		}
	}

	return config
}

// Response модели

// TimeBlockResponse описание блока расписания в ответе
type TimeBlockResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Days                 []int  `json:"days"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	DurationHours        int    `json:"durationHours"`
	HalfHourBreak        bool   `json:"halfHourBreak"`
	MaxEventsPerBlock    int    `json:"maxEventsPerBlock"`
	OneReservationPerDay bool   `json:"oneReservationPerDay"`
}

// RestDayResponse описание дня отдыха в ответе
type RestDayResponse struct {
	ID            int64   `json:"id"`
	Day           int     `json:"day"`
	Fee           float64 `json:"fee"`
	CanBeReleased bool    `json:"canBeReleased"`
}

// ScheduleResponse ответ с активной конфигурацией расписания
type ScheduleResponse struct {
	ID                        int64               `json:"id"`
	Name                      string              `json:"name"`
	Active                    bool                `json:"active"`
	TimeBlocks                []TimeBlockResponse `json:"timeBlocks"`
	RestDays                  []RestDayResponse   `json:"restDays"`
	OneEventPerDay            bool                `json:"oneEventPerDay"`
	DefaultEventDurationHours int                 `json:"defaultEventDurationHours"`
	CreatedAt                 time.Time           `json:"createdAt"`
	UpdatedAt                 time.Time           `json:"updatedAt"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.ScheduleConfig) *ScheduleResponse {
	if c == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:                        c.ID,
		Name:                      c.Name,
		Active:                    c.Active,
		OneEventPerDay:            c.OneEventPerDay,
		DefaultEventDurationHours: c.DefaultEventDurationHours,
		TimeBlocks:                make([]TimeBlockResponse, len(c.TimeBlocks)),
		RestDays:                  make([]RestDayResponse, len(c.RestDays)),
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}

	for i, block := range c.TimeBlocks {
		resp.TimeBlocks[i] = TimeBlockResponse{
			ID:                   block.ID,
			Name:                 block.Name,
			Days:                 block.Days,
			StartTime:            block.StartTime.String(),
			EndTime:              block.EndTime.String(),
			DurationHours:        block.DurationHours,
			HalfHourBreak:        block.HalfHourBreak,
			MaxEventsPerBlock:    block.MaxEventsPerBlock,
			OneReservationPerDay: block.OneReservationPerDay,
		}
	}

	for i, rd := range c.RestDays {
		resp.RestDays[i] = RestDayResponse{
			ID:            rd.ID,
			Day:           rd.Day,
			Fee:           rd.Fee,
			CanBeReleased: rd.CanBeReleased,
		}
	}

	return resp
}
