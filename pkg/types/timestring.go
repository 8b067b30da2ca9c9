package types

import (
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// Stored as a zero-padded string, so lexicographic comparison matches
// chronological comparison.
type TimeString string

// timeFormat формат времени HH:MM (24-часовой)
const timeFormat = "15:04"

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
// Требуется каноничная zero-padded форма "HH:MM": лексикографическое
// сравнение значений работает только для неё
func NewTimeStringFromString(s string) (TimeString, error) {
	if err := TimeString(s).Validate(); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

// FromMinutes создает TimeString из количества минут с начала суток
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("minutes %d out of range [0, 1440)", minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет, что значение соответствует каноничной форме "HH:MM"
// time.Parse принимает и не-padded значения ("9:30"), поэтому формат
// проверяется явно
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	parsed, err := time.Parse(timeFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time format %q, expected HH:MM: %w", s, err)
	}
	if parsed.Format(timeFormat) != s {
		return fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	parsed, _ := time.Parse(timeFormat, string(t))
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новый TimeString со сдвигом на указанное количество минут
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(current + minutes)
}

// IsBefore возвращает true, если время строго раньше other
// Для zero-padded HH:MM лексикографическое сравнение корректно
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

func (t TimeString) String() string {
	return string(t)
}
