package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/cloventt/youddit/pkg/feed"
	"github.com/cloventt/youddit/pkg/model"
	"github.com/cloventt/youddit/pkg/playlist"
	"github.com/cloventt/youddit/pkg/update"
)

type Opts struct {
	PlaylistID string `long:"playlist-id" short:"p" required:"true" description:"ID of the playlist to add videos to"`
	Subreddit  string `long:"subreddit" short:"s" required:"true" description:"name of the subreddit to scan for video links"`
	MaxVideos  int    `long:"max-videos" short:"m" default:"20" description:"maximum number of submissions to scan"`
	Order      string `long:"order" short:"o" default:"hot" choice:"hot" choice:"new" choice:"top" choice:"controversial" choice:"rising" description:"subreddit ranking to scan"`
	ConfDir    string `long:"conf-dir" short:"c" description:"directory holding credentials and configuration (default ~/.config/youddit)"`
	Debug      bool   `long:"debug"`
	NoBanner   bool   `long:"no-banner"`
}

const banner = `
          _______           ______   ______  __________________
|\     /|(  ___  )|\     /|(  __  \ (  __  \ \__   __/\__   __/
( \   / )| (   ) || )   ( || (  \  )| (  \  )   ) (      ) (
 \ (_) / | |   | || |   | || |   ) || |   ) |   | |      | |
  \   /  | |   | || |   | || |   | || |   | |   | |      | |
   ) (   | |   | || |   | || |   ) || |   ) |   | |      | |
   | |   | (___) || (___) || (__/  )| (__/  )___) (___   | |
   \_/   (_______)(_______)(______/ (______/ \_______/   )_(
`

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339,
		FullTimestamp:   true,
	})

	// Parse args
	opts := Opts{}
	_, err := flags.Parse(&opts)
	if err != nil {
		log.WithError(err).Fatal("failed to parse command line arguments")
	}

	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if !opts.NoBanner {
		log.Info(banner)
	}

	log.WithFields(log.Fields{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("running youddit")

	order, err := model.ParseOrder(opts.Order)
	if err != nil {
		log.WithError(err).Fatal("unsupported order")
	}

	confDir := resolveConfDir(opts.ConfDir)
	log.Debugf("using configuration directory %q", confDir)

	// Load TOML file
	cfg, err := LoadConfig(filepath.Join(confDir, ConfigFile))
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration file")
	}

	ctx := context.Background()

	scanner, err := feed.NewScanner(ctx, confDir, cfg.Reddit.UserAgent)
	if err != nil {
		log.WithError(err).Fatal("failed to create reddit client")
	}

	service, err := playlist.NewService(ctx, confDir)
	if err != nil {
		log.WithError(err).Fatal("failed to create youtube client")
	}

	client := playlist.NewClient(service,
		playlist.WithPageSize(cfg.YouTube.PageSize),
		playlist.WithPause(cfg.YouTube.Pause))

	target := model.Target{
		PlaylistID: opts.PlaylistID,
		Subreddit:  opts.Subreddit,
		Order:      order,
		MaxVideos:  opts.MaxVideos,
	}

	if err := update.NewManager(client, scanner).Sync(ctx, target); err != nil {
		if err == model.ErrQuotaExceeded {
			log.Info("hit a quota limit, so that's all we can do for today")
			os.Exit(1)
		}

		log.WithError(err).Fatal("sync failed")
	}
}
