package instawebimpl

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/instaweb"
	"github.com/nishanrajkantan/insta-saver/pkg/config"
	"github.com/nishanrajkantan/insta-saver/pkg/logger"
	"go.uber.org/fx"
)

const (
	instagramBaseURL = "https://www.instagram.com"

	// App id of the Instagram web client; required on the JSON endpoints.
	instagramAppID = "936619743392459"

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type WebImpl struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
	logger     logger.Logger
}

func New(opts Opts) *WebImpl {
	return &WebImpl{
		baseURL:   instagramBaseURL,
		sessionID: opts.Config.Instagram.SessionID,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
			// Redirects are meaningful here: Instagram answers blocked JSON
			// requests with a 302 to the login page, and following it would
			// hide that signal.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: opts.Logger,
	}
}

var _ instaweb.Client = (*WebImpl)(nil)

func (w *WebImpl) HasSession() bool {
	return w.sessionID != ""
}

func (w *WebImpl) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("x-ig-app-id", instagramAppID)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", w.baseURL+"/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-origin")

	if w.sessionID != "" {
		req.Header.Set("Cookie", "sessionid="+w.sessionID)
	}
}

// get performs one request against the web surface and returns the raw body
// together with the status code. Redirects come back as-is.
func (w *WebImpl) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	w.setHeaders(req)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}
