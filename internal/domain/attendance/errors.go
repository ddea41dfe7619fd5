package attendance

import "errors"

var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrPunchExists      = errors.New("a punch already exists for this employee and date")
)
