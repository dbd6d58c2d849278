package fetcherimpl

import (
	"context"
	"net/url"
	"strings"

	"github.com/nishanrajkantan/insta-saver/internal/domain"
	"github.com/nishanrajkantan/insta-saver/internal/normalizer"
	"github.com/tidwall/gjson"
)

// highlightEndpoints returns the candidate spellings of the highlight-items
// endpoint in priority order. The upstream's documented path for this
// operation is unreliable, so each is tried in turn.
func (r *RapidAPI) highlightEndpoints(highlightID string) []string {
	query := url.Values{}
	query.Set("highlight_id", highlightID)

	return []string{
		r.endpoint("/api/v1/highlight", query),
		r.endpoint("/api/v1/highlight/"+url.PathEscape(highlightID), nil),
		r.endpoint("/api/v1/highlight-items", query),
	}
}

// FetchHighlightStories probes the candidate endpoints strictly one after
// another: the next candidate is attempted only once the previous one has
// failed, so the upstream never sees speculative parallel requests. The first
// candidate that answers 2xx with a non-empty item collection wins; when all
// fail the reel degrades to an empty list.
func (r *RapidAPI) FetchHighlightStories(ctx context.Context, highlightID string) ([]domain.Post, error) {
	cleanID := strings.TrimPrefix(highlightID, "highlight:")
	r.logger.Info("Fetching highlight stories", "highlight_id", cleanID)

	for _, candidate := range r.highlightEndpoints(cleanID) {
		json, err := r.getJSON(ctx, candidate)
		if err != nil {
			r.logger.Warn("Highlight endpoint candidate failed", "url", candidate, "error", err)
			if ctx.Err() != nil {
				return nil, nil
			}
			continue
		}

		items := highlightItems(json)
		if len(items) == 0 {
			r.logger.Warn("Highlight endpoint candidate returned no items", "url", candidate)
			continue
		}

		stories := make([]domain.Post, 0, len(items))
		for _, item := range items {
			if post := normalizer.FromHighlightStory(item); post != nil {
				stories = append(stories, *post)
			}
		}
		return stories, nil
	}

	r.logger.Warn("All highlight endpoint candidates failed", "highlight_id", cleanID)
	return nil, nil
}

// highlightItems digs the item collection out of whichever envelope this
// candidate used: data.items, data.stories, or data as a bare array.
func highlightItems(json gjson.Result) []gjson.Result {
	if items := json.Get("data.items").Array(); len(items) > 0 {
		return items
	}
	if items := json.Get("data.stories").Array(); len(items) > 0 {
		return items
	}
	if data := json.Get("data"); data.IsArray() {
		return data.Array()
	}
	return nil
}
