package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strings" // strings normalises mode values
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Identity resolution defaults to trusted
// gateway headers; setting IDENTITY_MODE=jwt switches to bearer-token
// verification, in which case JWT_SECRET becomes required.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	StoreURL     string // base URL of the remote table store, including /rest/v1
	StoreKey     string // API key for the remote table store
	IdentityMode string // "header" (default) or "jwt"
	JWTSecret    string // secret for the jwt identity mode (optional otherwise)
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:          must("APP_ENV"),    // environment (dev/test/prod)
		Port:         must("APP_PORT"),   // port to bind the HTTP server
		StoreURL:     must("STORE_URL"),  // remote table store endpoint
		StoreKey:     must("STORE_KEY"),  // remote table store API key
		IdentityMode: identityMode(),     // header or jwt
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}
	if cfg.IdentityMode == "jwt" && cfg.JWTSecret == "" {
		log.Fatal("IDENTITY_MODE=jwt requires JWT_SECRET")
	}
	return cfg
}

// identityMode normalises IDENTITY_MODE, defaulting to header trust.
func identityMode() string {
	m := strings.ToLower(strings.TrimSpace(os.Getenv("IDENTITY_MODE")))
	if m == "" {
		return "header"
	}
	if m != "header" && m != "jwt" {
		log.Fatalf("invalid IDENTITY_MODE: %q (want header or jwt)", m)
	}
	return m
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
