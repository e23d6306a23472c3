package tenant

import (
	"net/http"
	"net/url"
	"strings"
)

// An Extractor pulls a candidate subdomain out of a request, returning
// "" when it has nothing to offer.
type Extractor func(r *http.Request) string

// DefaultExtractors is the trust order for subdomain resolution:
// the explicit header set by the frontend wins over anything the
// browser reports, and the raw Host header is the last resort because
// proxies and CDNs commonly rewrite it.
var DefaultExtractors = []Extractor{
	FromSubdomainHeader,
	FromOrigin,
	FromReferer,
	FromHost,
}

// ResolveSubdomain runs the extractor chain and returns the first
// non-empty candidate, or "" when no extractor produced one.
func ResolveSubdomain(r *http.Request) string {
	for _, extract := range DefaultExtractors {
		if sub := extract(r); sub != "" {
			return sub
		}
	}
	return ""
}

func FromSubdomainHeader(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get("X-Subdomain")))
}

func FromOrigin(r *http.Request) string {
	return firstLabelFromURL(r.Header.Get("Origin"))
}

func FromReferer(r *http.Request) string {
	return firstLabelFromURL(r.Header.Get("Referer"))
}

func FromHost(r *http.Request) string {
	host := r.Host
	if host == "" {
		host = r.Header.Get("Host")
	}
	return firstLabel(host)
}

func firstLabelFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return firstLabel(parsed.Host)
}

// firstLabel treats a host with at least three dot-separated labels as
// sub.base.tld and returns the leading label lower-cased. Bare domains
// carry no subdomain and yield "".
func firstLabel(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	return strings.ToLower(parts[0])
}
