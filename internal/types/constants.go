package types

import (
	"os"
	"strings"
)

const (
	ContextUserKey  = "user"
	ContextOwnerKey = "tenant_owner"

	// DefaultSubdomain is used in guest links for tenants that have
	// not claimed a subdomain yet.
	DefaultSubdomain = "wedding"
)

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

// BaseDomain is the public domain under which tenant subdomains are
// served. Read at call time so guest URLs always reflect the current
// environment.
func BaseDomain() string {
	if domain := os.Getenv("BASE_DOMAIN"); domain != "" {
		return domain
	}
	return "hoangdieuit.io.vn"
}

// UploadDir is where uploaded images land; served under /static.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "static/uploads"
}
