package model

import (
	"errors"
)

var (
	ErrQuotaExceeded = errors.New("query limit is exceeded")
)
