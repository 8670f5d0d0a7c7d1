package playlist

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"

	"github.com/cloventt/youddit/pkg/model"
)

// Client reads and updates a playlist via the YouTube Data API.
type Client struct {
	service  *youtube.Service
	pageSize int64
	pause    time.Duration
}

type clientOption func(*Client)

// WithPageSize sets how many items are requested per playlist page.
// The API caps this at 50.
func WithPageSize(size int64) clientOption {
	return func(c *Client) {
		c.pageSize = size
	}
}

// WithPause sets the fixed delay between successive API calls.
func WithPause(pause time.Duration) clientOption {
	return func(c *Client) {
		c.pause = pause
	}
}

func NewClient(service *youtube.Service, opts ...clientOption) *Client {
	client := &Client{
		service:  service,
		pageSize: model.DefaultPageSize,
		pause:    model.DefaultPause,
	}

	for _, fn := range opts {
		fn(client)
	}

	return client
}

// Items returns the set of video identifiers currently in the playlist,
// following continuation tokens until the collection is exhausted. A short
// pause between page requests keeps the client under the API rate limit.
//
// Cost: 1 unit per page.
// See https://developers.google.com/youtube/v3/docs/playlistItems/list
func (c *Client) Items(ctx context.Context, playlistID string) (map[string]struct{}, error) {
	var (
		values    = make(map[string]struct{})
		pageToken = ""
		page      = 1
	)

	for {
		req := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(c.pageSize).
			Context(ctx)
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		resp, err := req.Do()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query items of playlist %q", playlistID)
		}

		for _, item := range resp.Items {
			values[item.ContentDetails.VideoId] = struct{}{}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}

		page++
		log.Debugf("getting page %d of playlist %q", page, playlistID)
		time.Sleep(c.pause)
	}

	return values, nil
}

// Insert adds the video at the head of the playlist, so the playlist reads
// newest first. On success the client sleeps for the configured pause before
// returning. A forbidden response caused by the daily quota maps to
// model.ErrQuotaExceeded, any other failure is returned with context and can
// be treated as non-fatal by the caller. Failed inserts are not retried.
//
// Cost: 50 units.
// See https://developers.google.com/youtube/v3/docs/playlistItems/insert
func (c *Client) Insert(ctx context.Context, playlistID, videoID string) error {
	item := &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			PlaylistId: playlistID,
			Position:   0,
			ResourceId: &youtube.ResourceId{
				Kind:    "youtube#video",
				VideoId: videoID,
			},
			// Position 0 is a zero value and would be dropped from the
			// request body unless forced
			ForceSendFields: []string{"Position"},
		},
	}

	if _, err := c.service.PlaylistItems.Insert([]string{"snippet"}, item).Context(ctx).Do(); err != nil {
		if isQuotaExceeded(err) {
			return model.ErrQuotaExceeded
		}

		return errors.Wrapf(err, "failed to insert video %q into playlist %q", videoID, playlistID)
	}

	time.Sleep(c.pause)
	return nil
}

// isQuotaExceeded reports whether err is the API's daily quota rejection,
// a forbidden response whose reason mentions the quota.
func isQuotaExceeded(err error) bool {
	apiErr, ok := err.(*googleapi.Error)
	if !ok {
		return false
	}

	if apiErr.Code != http.StatusForbidden {
		return false
	}

	for _, item := range apiErr.Errors {
		if strings.Contains(item.Reason, "quota") {
			return true
		}
	}

	return strings.Contains(strings.ToLower(apiErr.Message), "quota")
}
