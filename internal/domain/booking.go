package domain

import (
	"time"

	"github.com/m04kA/KDP-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a party reservation
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a party reservation in the system
type Booking struct {
	ID                 int64
	UserID             int64
	EventDate          time.Time // date-only semantics, compared by calendar day
	EventTime          types.TimeString
	EventDurationHours *int // nil = resolved from the schedule configuration
	Status             BookingStatus

	// Denormalized data for history
	CelebrantName string
	GuestCount    int
	PackageName   *string
	Notes         *string

	// Surcharge applied when the booking falls on a released rest day
	RestDayFee float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking consumes availability capacity.
// Cancelled bookings are excluded from all availability computation.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID           *int64         // Фильтр по пользователю (опционально)
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
