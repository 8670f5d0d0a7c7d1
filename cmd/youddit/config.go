package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/cloventt/youddit/pkg/feed"
	"github.com/cloventt/youddit/pkg/model"
)

// ConfigFile is the name of the optional tuning file inside the
// configuration directory.
const ConfigFile = "youddit.toml"

// The playlist API rejects page sizes above 50.
const maxPageSize = 50

type Config struct {
	// Reddit client tuning
	Reddit RedditConfig `toml:"reddit"`
	// YouTube client tuning
	YouTube YouTubeConfig `toml:"youtube"`
}

type RedditConfig struct {
	// UserAgent sent with every reddit API request
	UserAgent string `toml:"user_agent"`
}

type YouTubeConfig struct {
	// PageSize is the number of playlist items requested per page
	PageSize int64 `toml:"page_size"`
	// Pause is the fixed delay between successive API calls
	Pause time.Duration `toml:"pause"`
}

// LoadConfig loads TOML configuration from a file path. The file is
// optional, a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := Config{}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read config file: %s", path)
		}
	} else if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}

	config.applyDefaults()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	if c.YouTube.PageSize < 1 || c.YouTube.PageSize > maxPageSize {
		result = multierror.Append(result, errors.Errorf("page size must be between 1 and %d", maxPageSize))
	}

	if c.YouTube.Pause < 0 {
		result = multierror.Append(result, errors.New("pause can not be negative"))
	}

	if strings.TrimSpace(c.Reddit.UserAgent) == "" {
		result = multierror.Append(result, errors.New("user agent can not be blank"))
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults() {
	if c.Reddit.UserAgent == "" {
		c.Reddit.UserAgent = feed.UserAgent
	}

	if c.YouTube.PageSize == 0 {
		c.YouTube.PageSize = model.DefaultPageSize
	}

	if c.YouTube.Pause == 0 {
		c.YouTube.Pause = model.DefaultPause
	}
}

// resolveConfDir picks the directory holding credentials and configuration.
// An empty value means the user config location, a leading ~ points into
// the home directory.
func resolveConfDir(dir string) string {
	if dir == "" {
		return filepath.Join(xdg.ConfigHome, "youddit")
	}

	if dir == "~" {
		return xdg.Home
	}

	if strings.HasPrefix(dir, "~/") {
		return filepath.Join(xdg.Home, strings.TrimPrefix(dir, "~/"))
	}

	return dir
}
