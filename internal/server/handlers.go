package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nishanrajkantan/insta-saver/pkg/errors"
	"github.com/nishanrajkantan/insta-saver/pkg/mediautil"
)

// browserUserAgent is sent on outbound media requests so hosts that gate
// on User-Agent serve the bytes.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type resolveRequest struct {
	URL    string `json:"url"`
	Cursor string `json:"cursor"`
}

type resolveResponse struct {
	Success bool        `json:"success"`
	Type    string      `json:"type"`
	Data    interface{} `json:"data"`
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "url is required"))
		return
	}
	if s.config.RapidAPI.Key == "" || s.config.RapidAPI.Host == "" {
		s.respondError(w, errors.Wrap(errors.ErrNotConfigured, "upstream API credentials are not configured"))
		return
	}

	result, err := s.resolver.Resolve(r.Context(), req.URL, req.Cursor)
	if err != nil {
		s.logger.Warn("Resolve failed", "url", req.URL, "error", err)
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, resolveResponse{
		Success: true,
		Type:    result.Type,
		Data:    result.Data,
	})
}

type downloadRequest struct {
	Shortcode    string `json:"shortcode"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.Shortcode) == "" {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "shortcode is required"))
		return
	}

	target, err := s.resolver.ResolveDownloadTarget(r.Context(), req.Shortcode, req.ThumbnailURL)
	if err != nil {
		s.logger.Warn("Download target resolution failed", "shortcode", req.Shortcode, "error", err)
		s.respondError(w, err)
		return
	}

	s.streamMedia(w, r, streamOpts{
		url:                target.URL,
		filename:           mediautil.Filename(req.Shortcode, target.Type),
		attachment:         true,
		defaultContentType: "application/octet-stream",
	})
}

func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "url query parameter is required"))
		return
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "url must be an absolute http(s) URL"))
		return
	}

	s.streamMedia(w, r, streamOpts{
		url:                raw,
		defaultContentType: "image/jpeg",
	})
}

type storiesRequest struct {
	Username string `json:"username"`
}

type storiesResponse struct {
	Success  bool        `json:"success"`
	Type     string      `json:"type"`
	Data     interface{} `json:"data"`
	Username string      `json:"username"`
}

func (s *Server) handleStories(w http.ResponseWriter, r *http.Request) {
	var req storiesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "invalid request body"))
		return
	}
	username := strings.TrimSpace(strings.TrimPrefix(req.Username, "@"))
	if username == "" {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "username is required"))
		return
	}
	if !s.web.HasSession() {
		s.respondError(w, errors.Wrap(errors.ErrForbidden, "story access requires a configured session"))
		return
	}

	profile, err := s.web.FetchUserProfile(r.Context(), username)
	if err != nil || profile == nil {
		s.logger.Warn("Story user lookup failed", "username", username, "error", err)
		s.respondError(w, errors.Wrap(errors.ErrNotFound, "user not found"))
		return
	}

	stories, err := s.web.FetchStories(r.Context(), profile.UserID)
	if err != nil {
		s.logger.Warn("Story fetch failed", "username", username, "error", err)
		s.respondError(w, errors.Wrap(errors.ErrUpstream, "failed to fetch stories"))
		return
	}

	s.respondJSON(w, http.StatusOK, storiesResponse{
		Success:  true,
		Type:     "stories",
		Data:     stories,
		Username: username,
	})
}

type streamOpts struct {
	url                string
	filename           string
	attachment         bool
	defaultContentType string
}

// streamMedia fetches the target URL server-side and copies the bytes to the
// client. When attachment is set a Content-Disposition header is added so
// browsers save the file instead of navigating to it.
func (s *Server) streamMedia(w http.ResponseWriter, r *http.Request, opts streamOpts) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, opts.url, nil)
	if err != nil {
		s.respondError(w, errors.Wrap(errors.ErrBadInput, "invalid media URL"))
		return
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := s.mediaClient.Do(req)
	if err != nil {
		s.logger.Warn("Media fetch failed", "url", opts.url, "error", err)
		s.respondError(w, errors.Wrap(errors.ErrUpstream, "failed to fetch media"))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Warn("Media fetch returned non-2xx", "url", opts.url, "status", resp.StatusCode)
		s.respondError(w, errors.Wrap(errors.ErrUpstream, "failed to fetch media"))
		return
	}

	w.Header().Set("Content-Type", mediautil.ContentTypeOrDefault(resp.Header.Get("Content-Type"), opts.defaultContentType))
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		w.Header().Set("Content-Length", cl)
	}
	if opts.attachment {
		w.Header().Set("Content-Disposition", `attachment; filename="`+opts.filename+`"`)
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, resp.Body); err != nil {
		// The response is already committed; all we can do is log.
		s.logger.Warn("Media stream interrupted", "url", opts.url, "error", err)
	}
}
