package get_range_availability

import "time"

// Request модель запроса на классификацию диапазона дат
type Request struct {
	StartDate time.Time
	EndDate   time.Time
}

// DayStatus статус одного дня диапазона
type DayStatus struct {
	Date   string `json:"date"`   // "2025-10-15"
	Status string `json:"status"` // available | limited | unavailable
}

// Response модель ответа с классификацией диапазона
type Response struct {
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Days      []DayStatus `json:"days"`
}
