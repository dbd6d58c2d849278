package instawebimpl

import (
	"context"
	"fmt"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/normalizer"
	"github.com/tidwall/gjson"
)

// FetchStories lists a user's active stories through the reels_media feed.
// Failures degrade to an empty list; there is nothing required about stories.
func (w *WebImpl) FetchStories(ctx context.Context, userID string) ([]domain.Story, error) {
	if w.sessionID == "" {
		w.logger.Warn("Stories require a session cookie, skipping")
		return nil, nil
	}

	url := fmt.Sprintf("%s/api/v1/feed/reels_media/?reel_ids=%s", w.baseURL, userID)

	status, body, err := w.get(ctx, url)
	if err != nil {
		w.logger.Warn("Stories request failed", "user_id", userID, "error", err)
		return nil, nil
	}
	if status < 200 || status > 299 {
		w.logger.Warn("Stories request returned non-2xx", "user_id", userID, "status", status)
		return nil, nil
	}
	if !gjson.ValidBytes(body) {
		w.logger.Warn("Stories payload not JSON", "user_id", userID)
		return nil, nil
	}

	items := gjson.ParseBytes(body).Get("reels_media.0.items").Array()

	stories := make([]domain.Story, 0, len(items))
	for _, item := range items {
		if story := normalizer.FromReelItem(item); story != nil {
			stories = append(stories, *story)
		}
	}
	return stories, nil
}
