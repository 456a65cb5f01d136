package config

import (
	"flag"
	"os"
	"time"
)

type Config struct {
	RunAddress    string
	AppsScriptURL string
	SheetName     string
	LedgerTimeout time.Duration
}

func New() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", "localhost:5000", "server address and port")
	flag.StringVar(&cfg.AppsScriptURL, "r", "", "Apps Script web app URL")
	flag.StringVar(&cfg.SheetName, "s", "Pending", "default sheet name")
	timeout := flag.Duration("t", 30*time.Second, "ledger call timeout")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.AppsScriptURL = getEnv("APPS_SCRIPT_URL", cfg.AppsScriptURL)
	cfg.SheetName = getEnv("SHEET_NAME", cfg.SheetName)

	cfg.LedgerTimeout = *timeout
	if v, ok := os.LookupEnv("LEDGER_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LedgerTimeout = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
