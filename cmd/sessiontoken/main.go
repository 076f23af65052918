// Command sessiontoken mints a session token for local development, standing
// in for the external identity provider.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

type options struct {
	subject   string
	email     string
	firstName string
	lastName  string
	ttl       time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.subject, "sub", "", "User id to put in the sub claim (required)")
	flag.StringVar(&opts.email, "email", "", "Optional email claim")
	flag.StringVar(&opts.firstName, "first-name", "", "Optional first_name claim")
	flag.StringVar(&opts.lastName, "last-name", "", "Optional last_name claim")
	flag.DurationVar(&opts.ttl, "ttl", 0, "Token lifetime (defaults to SESSION_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if opts.ttl == 0 {
		opts.ttl = cfg.SessionTTL
	}

	token, err := mint([]byte(cfg.SessionSecret), opts, time.Now())
	if err != nil {
		slog.Error("failed to mint token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

func mint(secret []byte, opts options, now time.Time) (string, error) {
	if opts.subject == "" {
		return "", errors.New("-sub is required")
	}
	if opts.ttl <= 0 {
		return "", fmt.Errorf("ttl must be positive, got %s", opts.ttl)
	}

	claims := jwt.MapClaims{
		"sub": opts.subject,
		"iat": now.Unix(),
		"exp": now.Add(opts.ttl).Unix(),
	}
	for key, val := range map[string]string{
		"email":      opts.email,
		"first_name": opts.firstName,
		"last_name":  opts.lastName,
	} {
		if val != "" {
			claims[key] = val
		}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
