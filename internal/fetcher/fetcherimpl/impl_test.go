package fetcherimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func testClient(baseURL string) *RapidAPI {
	return &RapidAPI{
		baseURL:    baseURL,
		apiKey:     "test-key",
		apiHost:    "test-host",
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     nopLogger{},
	}
}

func TestGetJSONSendsCredentialHeaders(t *testing.T) {
	var gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(headerAPIKey)
		gotHost = r.Header.Get(headerAPIHost)
		w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).getJSON(context.Background(), srv.URL+"/any")
	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "test-host", gotHost)
}

func TestFetchUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/info", r.URL.Path)
		assert.Equal(t, "nasa", r.URL.Query().Get("id_or_username"))
		w.Write([]byte(`{"data":{"user":{"username":"nasa","full_name":"NASA","profile_pic_url":"https://cdn.example.com/p.jpg","pk":"528817151"}}}`))
	}))
	defer srv.Close()

	profile, err := testClient(srv.URL).FetchUserInfo(context.Background(), "nasa")
	require.NoError(t, err)
	assert.Equal(t, "nasa", profile.Username)
	assert.Equal(t, "NASA", profile.FullName)
	assert.Equal(t, "528817151", profile.UserID)
}

func TestFetchUserInfoFlatEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"username":"nasa","id":"528817151"}}`))
	}))
	defer srv.Close()

	profile, err := testClient(srv.URL).FetchUserInfo(context.Background(), "nasa")
	require.NoError(t, err)
	assert.Equal(t, "nasa", profile.Username)
	assert.Equal(t, "nasa", profile.FullName)
	assert.Equal(t, "528817151", profile.UserID)
}

func TestFetchUserInfoUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	profile, err := testClient(srv.URL).FetchUserInfo(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, profile)
}

func TestFetchUserPostsDegradesToEmptyPage(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "invalid JSON body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>blocked</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			page, err := testClient(srv.URL).FetchUserPosts(context.Background(), "nasa", "")
			require.NoError(t, err)
			assert.Empty(t, page.Posts)
			assert.Empty(t, page.NextCursor)
		})
	}
}

func TestFetchUserPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts", r.URL.Path)
		assert.Equal(t, "nasa", r.URL.Query().Get("username"))
		assert.Equal(t, "12", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("include_captions"))
		assert.Equal(t, "next-page", r.URL.Query().Get("cursor"))
		w.Write([]byte(`{"data":{"posts":[
			{"id":"1","media_type":1,"code":"AAA"},
			{"id":"2","media_type":2,"code":"BBB"}
		],"next_cursor":"cursor-2"}}`))
	}))
	defer srv.Close()

	page, err := testClient(srv.URL).FetchUserPosts(context.Background(), "nasa", "next-page")
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, domain.MediaTypeImage, page.Posts[0].Type)
	assert.Equal(t, domain.MediaTypeVideo, page.Posts[1].Type)
	assert.Equal(t, "cursor-2", page.NextCursor)
}

func TestFetchUserHighlightsEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "items envelope",
			body: `{"data":{"items":[{"id":"h1","cover_media":{"url":"https://cdn.example.com/c.jpg"}}]}}`,
		},
		{
			name: "highlights envelope",
			body: `{"data":{"highlights":[{"id":"h1","cover_media":{"url":"https://cdn.example.com/c.jpg"}}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			highlights, err := testClient(srv.URL).FetchUserHighlights(context.Background(), "nasa")
			require.NoError(t, err)
			require.Len(t, highlights, 1)
			assert.Equal(t, domain.MediaTypeHighlight, highlights[0].Type)
		})
	}
}

func TestFetchUserHighlightsFailureDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	highlights, err := testClient(srv.URL).FetchUserHighlights(context.Background(), "nasa")
	require.NoError(t, err)
	assert.Empty(t, highlights)
}

func TestFetchUserStoriesDisabledByDefault(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	stories, err := testClient(srv.URL).FetchUserStories(context.Background(), "528817151")
	require.NoError(t, err)
	assert.Empty(t, stories)
	assert.False(t, called, "disabled story fetching must not hit the upstream")
}

func TestFetchUserStoriesEnabled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/stories", r.URL.Path)
		w.Write([]byte(`{"data":{"items":[{"id":"s1","media_type":2,"video_versions":[{"url":"https://cdn.example.com/s.mp4"}]}]}}`))
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	client.storiesOn = true

	stories, err := client.FetchUserStories(context.Background(), "528817151")
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, domain.MediaTypeVideo, stories[0].Type)
}

func TestFetchPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/post-info", r.URL.Path)
		assert.Equal(t, "ABC123", r.URL.Query().Get("code"))
		w.Write([]byte(`{"data":{"post":{"id":"1","media_type":2,"code":"ABC123","video_versions":[{"url":"https://cdn.example.com/v.mp4"}]}}}`))
	}))
	defer srv.Close()

	post, err := testClient(srv.URL).FetchPost(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaTypeVideo, post.Type)
	assert.Equal(t, "ABC123", post.Shortcode)
}

func TestFetchPostEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	post, err := testClient(srv.URL).FetchPost(context.Background(), "ABC123")
	assert.Error(t, err)
	assert.Nil(t, post)
}

func TestFetchStory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "111222", r.URL.Query().Get("code_or_id_or_url"))
		w.Write([]byte(`{"data":{"pk":"111222","media_type":1,"image_versions2":{"candidates":[{"url":"https://cdn.example.com/s.jpg"}]}}}`))
	}))
	defer srv.Close()

	story, err := testClient(srv.URL).FetchStory(context.Background(), "111222")
	require.NoError(t, err)
	assert.Equal(t, domain.MediaTypeImage, story.Type)
	assert.Equal(t, "https://cdn.example.com/s.jpg", story.URL)
}
