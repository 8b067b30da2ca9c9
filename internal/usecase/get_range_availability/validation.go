package get_range_availability

import (
	"fmt"

	"github.com/m04kA/KDP-AvailabilityService/internal/availability"
)

// maxRangeDays предельный размер диапазона, чтобы один запрос
// не обсчитывал годы календаря
const maxRangeDays = 366

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	start := availability.Truncate(req.StartDate)
	end := availability.Truncate(req.EndDate)

	if end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidRange)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxRangeDays {
		return fmt.Errorf("%w: range spans %d days, maximum is %d", ErrRangeTooLarge, days, maxRangeDays)
	}

	return nil
}
