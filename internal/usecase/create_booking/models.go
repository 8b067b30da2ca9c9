package create_booking

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID             int64
	EventDate          time.Time        // Дата праздника (без времени)
	EventTime          types.TimeString // Время начала, например "10:00"
	EventDurationHours *int             // Опциональная длительность; nil = дефолт конфигурации
	CelebrantName      string           // Имя именинника
	GuestCount         int
	PackageName        *string
	Notes              *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                 int64            `json:"id"`
	UserID             int64            `json:"userId"`
	EventDate          string           `json:"eventDate"` // "2025-10-15"
	EventTime          types.TimeString `json:"eventTime"`
	EventDurationHours *int             `json:"eventDurationHours,omitempty"`
	Status             string           `json:"status"`
	CelebrantName      string           `json:"celebrantName"`
	GuestCount         int              `json:"guestCount"`
	PackageName        *string          `json:"packageName,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	RestDayFee         float64          `json:"restDayFee"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}
