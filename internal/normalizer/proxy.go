package normalizer

import "net/url"

// ProxyPath is where the media proxy handler is mounted.
const ProxyPath = "/api/proxy"

// ProxyURL rewrites a raw upstream media URL to route through the server-side
// proxy, which adds the browser headers the media CDN insists on. Empty in,
// empty out.
func ProxyURL(raw string) string {
	if raw == "" {
		return ""
	}
	return ProxyPath + "?url=" + url.QueryEscape(raw)
}
