//go:generate mockgen -source=updater.go -destination=updater_mock_test.go -package=update

package update

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cloventt/youddit/pkg/model"
)

// PlaylistService is the part of the playlist API the manager drives.
type PlaylistService interface {
	Items(ctx context.Context, playlistID string) (map[string]struct{}, error)
	Insert(ctx context.Context, playlistID, videoID string) error
}

// FeedScanner returns the set of video identifiers currently linked from
// a subreddit.
type FeedScanner interface {
	Scan(ctx context.Context, subreddit string, order model.Order, limit int) (map[string]struct{}, error)
}

type Manager struct {
	playlist PlaylistService
	scanner  FeedScanner
}

func NewManager(playlist PlaylistService, scanner FeedScanner) *Manager {
	return &Manager{
		playlist: playlist,
		scanner:  scanner,
	}
}

// Sync performs one synchronization pass: it reads the current playlist
// membership, scans the subreddit for candidate videos, and inserts every
// candidate the playlist does not already contain. Insert failures are
// non-fatal by policy: the failed video is skipped this pass and will be
// picked up again on the next run since it is still absent from the
// playlist. The one exception is quota exhaustion, which ends the pass
// immediately because no further calls can succeed today.
func (m *Manager) Sync(ctx context.Context, target model.Target) error {
	if target.Order == "" {
		target.Order = model.DefaultOrder
	}

	if target.MaxVideos == 0 {
		target.MaxVideos = model.DefaultMaxVideos
	}

	log.WithFields(log.Fields{
		"playlist_id": target.PlaylistID,
		"subreddit":   target.Subreddit,
		"order":       target.Order,
	}).Infof("-> syncing r/%s", target.Subreddit)

	started := time.Now()

	current, err := m.playlist.Items(ctx, target.PlaylistID)
	if err != nil {
		return errors.Wrap(err, "failed to read playlist members")
	}

	log.Infof("found %d item(s) in the playlist", len(current))

	candidates, err := m.scanner.Scan(ctx, target.Subreddit, target.Order, target.MaxVideos)
	if err != nil {
		return errors.Wrap(err, "failed to scan subreddit")
	}

	log.Infof("found %d candidate video(s) in the subreddit", len(candidates))

	toAdd := difference(candidates, current)
	log.Infof("found %d new video(s) to add", len(toAdd))

	added := 0
	for videoID := range toAdd {
		logger := log.WithField("video_id", videoID)
		logger.Info("adding video to playlist")

		if err := m.playlist.Insert(ctx, target.PlaylistID, videoID); err != nil {
			if err == model.ErrQuotaExceeded {
				logger.Warn("daily API quota exhausted, abandoning remaining videos")
				return err
			}

			logger.WithError(err).Warn("failed to add video to playlist")
			continue
		}

		added++
	}

	log.Infof("successfully added %d video(s) in %s", added, time.Since(started))
	return nil
}

// difference returns the members of a that are not in b.
func difference(a, b map[string]struct{}) map[string]struct{} {
	result := make(map[string]struct{})
	for id := range a {
		if _, ok := b[id]; !ok {
			result[id] = struct{}{}
		}
	}

	return result
}
