package models

import (
	"errors"
	"time"

	"github.com/m04kA/KDP-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID           int64   `json:"userId"`
	Status           *string `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool    `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"userId"`
	EventDate          string  `json:"eventDate"` // "2025-10-15"
	EventTime          string  `json:"eventTime"` // "10:00"
	EventDurationHours *int    `json:"eventDurationHours,omitempty"`
	Status             string  `json:"status"`
	CelebrantName      string  `json:"celebrantName"`
	GuestCount         int     `json:"guestCount"`
	PackageName        *string `json:"packageName,omitempty"`
	Notes              *string `json:"notes,omitempty"`
	RestDayFee         float64 `json:"restDayFee"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		EventDate:          b.EventDate.Format(domain.DateFormat),
		EventTime:          b.EventTime.String(),
		EventDurationHours: b.EventDurationHours,
		Status:             string(b.Status),
		CelebrantName:      b.CelebrantName,
		GuestCount:         b.GuestCount,
		PackageName:        b.PackageName,
		Notes:              b.Notes,
		RestDayFee:         b.RestDayFee,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
