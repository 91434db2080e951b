package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"scooter-rental/internal/config"
	"scooter-rental/internal/security"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	subject := flag.String("subject", "operator", "Token subject (operator name or email)")
	expiry := flag.Duration("expiry", 0, "Token lifetime (defaults to jwt.operator_token_expiry_minutes)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT secret is not configured, operator auth is disabled")
		os.Exit(1)
	}

	ttl := *expiry
	if ttl == 0 {
		ttl = time.Duration(cfg.JWT.OperatorTokenExpiry) * time.Minute
	}

	token, err := security.NewTokenManager(cfg.JWT.Secret).GenerateOperatorToken(*subject, ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating operator token: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Subject: %s\n", *subject)
	fmt.Printf("Expires: %s\n", time.Now().Add(ttl).UTC().Format(time.RFC3339))
	fmt.Printf("\nToken:\n%s\n", token)
	fmt.Printf("\nAuthorization: Bearer %s\n", token)
	fmt.Printf("\nExample:\n")
	fmt.Printf("curl -H 'Authorization: Bearer %s' 'http://%s/api/v1/income?year=%d'\n", token, cfg.GetServerAddress(), time.Now().Year())
}
