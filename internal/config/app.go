package config

import (
	"os"
	"strings"
)

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Port is the listen address, ":8080" unless APP_PORT says otherwise.
func Port() string {
	port, ok := os.LookupEnv("APP_PORT")
	if !ok || port == "" {
		return ":8080"
	}
	return port
}

// CorsOrigins splits the comma separated APP_CORS_ORIGINS. Empty means any.
func CorsOrigins() []string {
	var origins []string
	for _, o := range strings.Split(os.Getenv("APP_CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
