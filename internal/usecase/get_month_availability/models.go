package get_month_availability

// Request модель запроса на получение календаря месяца
type Request struct {
	Year  int
	Month int // 1 = январь .. 12 = декабрь
}

// DaySummary сводка доступности одного дня
type DaySummary struct {
	Date            string  `json:"date"` // "2025-10-15"
	Available       bool    `json:"available"`
	TotalSlots      int     `json:"totalSlots"`
	AvailableSlots  int     `json:"availableSlots"`
	IsRestDay       bool    `json:"isRestDay"`
	RestDayFee      float64 `json:"restDayFee,omitempty"`
	HasReservations bool    `json:"hasReservations"`
}

// Response модель ответа с календарём месяца
type Response struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Days  []DaySummary `json:"days"`
}
