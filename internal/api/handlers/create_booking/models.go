package create_booking

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
	createBooking "github.com/m04kA/KDP-AvailabilityService/internal/usecase/create_booking"
	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventDate          string  `json:"eventDate"` // "2025-10-15"
	EventTime          string  `json:"eventTime"` // "10:00"
	EventDurationHours *int    `json:"eventDurationHours,omitempty"`
	CelebrantName      string  `json:"celebrantName"`
	GuestCount         int     `json:"guestCount"`
	PackageName        *string `json:"packageName,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с парсингом даты; ID пользователя приходит из middleware
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:             userID,
		EventDate:          date,
		EventTime:          types.TimeString(r.EventTime),
		EventDurationHours: r.EventDurationHours,
		CelebrantName:      r.CelebrantName,
		GuestCount:         r.GuestCount,
		PackageName:        r.PackageName,
		Notes:              r.Notes,
	}, nil
}
