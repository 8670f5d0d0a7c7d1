package playlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// SecretsFile is the name of the Google client secrets file inside the
	// configuration directory.
	SecretsFile = "youtube.json"
	// TokenFile is where the OAuth token is cached between runs.
	TokenFile = "youtube-creds.json"
)

// NewService builds an authenticated YouTube service using the installed
// application OAuth flow. The first run prints an authorization URL and
// reads the resulting code from stdin, then caches the token inside the
// configuration directory so later runs are non-interactive.
func NewService(ctx context.Context, confDir string) (*youtube.Service, error) {
	secretsPath := filepath.Join(confDir, SecretsFile)

	data, err := ioutil.ReadFile(secretsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read client secrets from %q, make sure this file is configured correctly", secretsPath)
	}

	config, err := google.ConfigFromJSON(data, youtube.YoutubeForceSslScope)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse client secrets from %q", secretsPath)
	}

	tokenPath := filepath.Join(confDir, TokenFile)

	token, err := tokenFromFile(tokenPath)
	if err != nil {
		log.Debugf("no cached token at %q, starting authorization flow", tokenPath)

		token, err = tokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}

		if err := saveToken(tokenPath, token); err != nil {
			log.WithError(err).Warnf("failed to cache oauth token to %q", tokenPath)
		}
	}

	return youtube.NewService(ctx, option.WithHTTPClient(config.Client(ctx, token)))
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, errors.Wrapf(err, "failed to decode cached token from %q", path)
	}

	return token, nil
}

func tokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, errors.Wrap(err, "failed to read authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code for token")
	}

	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return errors.Wrapf(err, "failed to create token cache file %q", path)
	}

	defer f.Close()

	return errors.Wrap(json.NewEncoder(f).Encode(token), "failed to encode oauth token")
}
