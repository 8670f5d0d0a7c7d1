package model

import (
	"time"
)

const (
	DefaultOrder     = OrderHot
	DefaultMaxVideos = 20
	DefaultPageSize  = 50
	DefaultPause     = 500 * time.Millisecond
)
