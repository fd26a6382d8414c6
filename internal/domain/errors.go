package domain

import "errors"

var ErrForecastUnavailable = errors.New("forecast unavailable")
