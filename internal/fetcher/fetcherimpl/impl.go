package fetcherimpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/fetcher"
	"github.com/nishanrajkantan/insta-saver/pkg/config"
	"github.com/nishanrajkantan/insta-saver/pkg/errors"
	"github.com/nishanrajkantan/insta-saver/pkg/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

const (
	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"

	// One page of the posts endpoint, matching the client-side grid.
	postsPageSize = 12
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// RapidAPI talks to the configured RapidAPI scraping-proxy host. The struct
// is immutable after construction, so a single instance is safe to share
// across requests.
type RapidAPI struct {
	baseURL    string
	apiKey     string
	apiHost    string
	httpClient *http.Client
	logger     logger.Logger
	storiesOn  bool
}

func New(opts Opts) *RapidAPI {
	return &RapidAPI{
		baseURL:    "https://" + opts.Config.RapidAPI.Host,
		apiKey:     opts.Config.RapidAPI.Key,
		apiHost:    opts.Config.RapidAPI.Host,
		httpClient: &http.Client{Timeout: 25 * time.Second},
		logger:     opts.Logger,
		storiesOn:  opts.Config.Instagram.FetchStories,
	}
}

var _ fetcher.Client = (*RapidAPI)(nil)

func (r *RapidAPI) endpoint(path string, query url.Values) string {
	if len(query) == 0 {
		return r.baseURL + path
	}
	return r.baseURL + path + "?" + query.Encode()
}

// getJSON performs one upstream call and parses the body. Non-2xx statuses
// and invalid JSON both come back as ErrUpstream; callers decide whether that
// degrades to empty or escalates.
func (r *RapidAPI) getJSON(ctx context.Context, rawURL string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "build upstream request")
	}
	req.Header.Set(headerAPIKey, r.apiKey)
	req.Header.Set(headerAPIHost, r.apiHost)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("upstream request: %w", errors.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn("Upstream returned non-2xx", "url", rawURL, "status", resp.StatusCode)
		return gjson.Result{}, fmt.Errorf("upstream status %d: %w", resp.StatusCode, errors.ErrUpstream)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read upstream body: %w", errors.ErrUpstream)
	}
	if !gjson.ValidBytes(body) {
		r.logger.Warn("Upstream returned invalid JSON", "url", rawURL)
		return gjson.Result{}, fmt.Errorf("invalid upstream JSON: %w", errors.ErrUpstream)
	}

	return gjson.ParseBytes(body), nil
}
