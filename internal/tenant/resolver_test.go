package tenant

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSubdomain(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		host    string
		want    string
	}{
		{
			name:    "explicit header wins over host",
			headers: map[string]string{"X-Subdomain": "foo"},
			host:    "bar.baz.com",
			want:    "foo",
		},
		{
			name:    "explicit header is normalized",
			headers: map[string]string{"X-Subdomain": "  FOO "},
			want:    "foo",
		},
		{
			name:    "origin beats referer and host",
			headers: map[string]string{"Origin": "https://anna.example.com", "Referer": "https://bob.example.com/page"},
			host:    "carol.example.com",
			want:    "anna",
		},
		{
			name:    "referer beats host",
			headers: map[string]string{"Referer": "https://bob.example.com/page"},
			host:    "carol.example.com",
			want:    "bob",
		},
		{
			name: "host fallback",
			host: "bar.baz.com",
			want: "bar",
		},
		{
			name: "host with port",
			host: "bar.baz.com:8080",
			want: "bar",
		},
		{
			name: "two label host carries no subdomain",
			host: "baz.com",
			want: "",
		},
		{
			name:    "two label origin falls through to host",
			headers: map[string]string{"Origin": "https://example.com"},
			host:    "bar.baz.com",
			want:    "bar",
		},
		{
			name: "nothing resolvable",
			want: "",
		},
		{
			name: "host is lower cased",
			host: "ANNA.Example.com",
			want: "anna",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.Host = tt.host
			for key, value := range tt.headers {
				r.Header.Set(key, value)
			}

			assert.Equal(t, tt.want, ResolveSubdomain(r))
		})
	}
}

func TestExtractorOrder(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Host = "host.example.com"
	r.Header.Set("X-Subdomain", "explicit")
	r.Header.Set("Origin", "https://origin.example.com")
	r.Header.Set("Referer", "https://referer.example.com/x")

	assert.Equal(t, "explicit", FromSubdomainHeader(r))
	assert.Equal(t, "origin", FromOrigin(r))
	assert.Equal(t, "referer", FromReferer(r))
	assert.Equal(t, "host", FromHost(r))
}
