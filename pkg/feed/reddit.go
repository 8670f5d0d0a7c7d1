package feed

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vartanbeno/go-reddit/v2/reddit"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/cloventt/youddit/pkg/link"
	"github.com/cloventt/youddit/pkg/model"
)

// UserAgent identifies this client to reddit, as required by the API access rules.
const UserAgent = "go:com.cloventt.r2y_scraper:2.0.0 (by /u/cloventt)"

// CredentialsFile is the name of the reddit credentials file inside the
// configuration directory.
const CredentialsFile = "reddit.json"

// Application-only OAuth endpoints. Listings go through the authenticated
// API host, credentials are exchanged at the token URL.
const (
	apiURL   = "https://oauth.reddit.com"
	tokenURL = "https://www.reddit.com/api/v1/access_token"
)

type credentials struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// subredditService is the part of the reddit API the scanner reads from.
type subredditService interface {
	HotPosts(ctx context.Context, subreddit string, opts *reddit.ListOptions) ([]*reddit.Post, *reddit.Response, error)
	NewPosts(ctx context.Context, subreddit string, opts *reddit.ListOptions) ([]*reddit.Post, *reddit.Response, error)
	RisingPosts(ctx context.Context, subreddit string, opts *reddit.ListOptions) ([]*reddit.Post, *reddit.Response, error)
	TopPosts(ctx context.Context, subreddit string, opts *reddit.ListPostOptions) ([]*reddit.Post, *reddit.Response, error)
	ControversialPosts(ctx context.Context, subreddit string, opts *reddit.ListPostOptions) ([]*reddit.Post, *reddit.Response, error)
}

type listing func(ctx context.Context, svc subredditService, subreddit string, limit int) ([]*reddit.Post, *reddit.Response, error)

// listings maps every supported order to the corresponding listing endpoint.
// Top and controversial listings cover all time, the windowed variants are
// not exposed here.
var listings = map[model.Order]listing{
	model.OrderHot: func(ctx context.Context, svc subredditService, subreddit string, limit int) ([]*reddit.Post, *reddit.Response, error) {
		return svc.HotPosts(ctx, subreddit, &reddit.ListOptions{Limit: limit})
	},
	model.OrderNew: func(ctx context.Context, svc subredditService, subreddit string, limit int) ([]*reddit.Post, *reddit.Response, error) {
		return svc.NewPosts(ctx, subreddit, &reddit.ListOptions{Limit: limit})
	},
	model.OrderRising: func(ctx context.Context, svc subredditService, subreddit string, limit int) ([]*reddit.Post, *reddit.Response, error) {
		return svc.RisingPosts(ctx, subreddit, &reddit.ListOptions{Limit: limit})
	},
	model.OrderTop: func(ctx context.Context, svc subredditService, subreddit string, limit int) ([]*reddit.Post, *reddit.Response, error) {
		return svc.TopPosts(ctx, subreddit, &reddit.ListPostOptions{ListOptions: reddit.ListOptions{Limit: limit}, Time: "all"})
	},
	model.OrderControversial: func(ctx context.Context, svc subredditService, subreddit string, limit int) ([]*reddit.Post, *reddit.Response, error) {
		return svc.ControversialPosts(ctx, subreddit, &reddit.ListPostOptions{ListOptions: reddit.ListOptions{Limit: limit}, Time: "all"})
	},
}

// Scanner reads subreddit submissions and extracts video identifiers
// from their links.
type Scanner struct {
	posts subredditService
}

// NewScanner authenticates to reddit in read-only (application-only) mode:
// the client credentials from the configuration directory are exchanged for
// a bearer token on first use, no user login involved.
func NewScanner(ctx context.Context, confDir, userAgent string) (*Scanner, error) {
	path := filepath.Join(confDir, CredentialsFile)

	creds, err := readCredentials(path)
	if err != nil {
		return nil, err
	}

	log.Debugf("authenticating to reddit as client %q", creds.ClientID)

	grant := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// The token exchange bypasses the reddit client, so it carries its own
	// user agent stamp
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: &userAgentTransport{userAgent: userAgent},
	})

	client, err := reddit.NewReadonlyClient(
		reddit.WithHTTPClient(grant.Client(ctx)),
		reddit.WithUserAgent(userAgent),
		reddit.WithBaseURL(apiURL),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create reddit client")
	}

	return &Scanner{posts: client.Subreddit}, nil
}

// Scan reads up to limit submissions from the subreddit under the requested
// order and returns the set of video identifiers found in their links.
// Submissions without a recognizable video link are skipped.
func (s *Scanner) Scan(ctx context.Context, subreddit string, order model.Order, limit int) (map[string]struct{}, error) {
	list, ok := listings[order]
	if !ok {
		return nil, errors.Errorf("unsupported order %q", order)
	}

	log.Infof("retrieving %s submissions from subreddit %q", order, subreddit)

	posts, _, err := list(ctx, s.posts, subreddit, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s submissions from subreddit %q", order, subreddit)
	}

	found := make(map[string]struct{})
	for _, post := range posts {
		videoID, ok := link.ExtractVideoID(post.URL)
		if !ok {
			log.Debugf("skipping submission %q, not a video link", post.Title)
			continue
		}

		found[videoID] = struct{}{}
	}

	log.Infof("found %d video link(s) in subreddit %q", len(found), subreddit)
	return found, nil
}

func readCredentials(path string) (*credentials, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read reddit credentials from %q, make sure this file is configured correctly", path)
	}

	creds := credentials{}
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, errors.Wrapf(err, "failed to parse reddit credentials from %q", path)
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, errors.Errorf("reddit credentials file %q must set both clientId and clientSecret", path)
	}

	return &creds, nil
}

// userAgentTransport stamps the user agent on requests that do not go
// through the reddit client itself, like the token exchange.
type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	return base.RoundTrip(clone)
}
