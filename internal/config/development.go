package config

import (
	"os"
	"strconv"
)

// Development reports whether DEVELOPMENT is set to a true value. Anything
// strconv.ParseBool rejects, other than the empty string, counts as true.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok || development == "" {
		return false
	}
	on, err := strconv.ParseBool(development)
	if err != nil {
		return true
	}
	return on
}
