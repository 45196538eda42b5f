package create_booking

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookerID <= 0 {
		return fmt.Errorf("%w: bookerID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	return nil
}

// validateRange проверяет, что end > start и start строго в будущем
func validateRange(start, end, now time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidTimeRange)
	}

	if !start.After(now) {
		return fmt.Errorf("%w: start must be in the future", ErrInvalidTimeRange)
	}

	return nil
}
