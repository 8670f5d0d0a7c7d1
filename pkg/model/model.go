package model

import (
	"strings"

	"github.com/pkg/errors"
)

// Order selects which subreddit ranking to scan.
type Order string

const (
	OrderHot           = Order("hot")
	OrderNew           = Order("new")
	OrderTop           = Order("top")
	OrderControversial = Order("controversial")
	OrderRising        = Order("rising")
)

// Orders lists every supported subreddit ranking.
var Orders = []Order{OrderHot, OrderNew, OrderTop, OrderControversial, OrderRising}

// ParseOrder converts a command line value to an Order.
func ParseOrder(s string) (Order, error) {
	for _, order := range Orders {
		if s == string(order) {
			return order, nil
		}
	}

	names := make([]string, 0, len(Orders))
	for _, order := range Orders {
		names = append(names, string(order))
	}

	return "", errors.Errorf("unknown order %q (expected one of: %s)", s, strings.Join(names, ", "))
}

// Target describes a single synchronization pass: which subreddit to scan,
// in what order, and which playlist receives the videos.
type Target struct {
	// PlaylistID of the playlist to add videos to
	PlaylistID string
	// Subreddit to scan for video links
	Subreddit string
	// Order is the subreddit ranking to read submissions in
	Order Order
	// MaxVideos caps the number of submissions read per pass
	MaxVideos int
}
