package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/adsctl/adsctl/cmd/adsctl/env"
	"github.com/adsctl/adsctl/internal/config"
)

// Global flags
var (
	configPath    string
	authToken     string
	devToken      string
	loginCustomer string
	endpoint      string
	apiVersion    string
	debug         bool
)

func init() {
	flag.StringVar(&configPath, "config", os.Getenv("ADSCTL_CONFIG"), "config file (default ~/.config/adsctl/config.yaml)")
	flag.StringVar(&authToken, "auth", "", "bearer token (or set ADSCTL_AUTH_TOKEN)")
	flag.StringVar(&devToken, "dev-token", "", "developer token (or set ADSCTL_DEV_TOKEN)")
	flag.StringVar(&loginCustomer, "login-customer", "", "manager account id (or set ADSCTL_LOGIN_CUSTOMER)")
	flag.StringVar(&endpoint, "endpoint", "", "API endpoint override (or set ADSCTL_ENDPOINT)")
	flag.StringVar(&apiVersion, "api-version", "", "API version path segment")
	flag.BoolVar(&debug, "debug", false, "enable debug output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: adsctl [global options] <command> [arguments]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  update-sitelinks   Replace the sitelink feed items on a campaign\n")
		fmt.Fprintf(os.Stderr, "  remove-sitelinks   Remove a campaign's sitelink extension setting\n\n")
		fmt.Fprintf(os.Stderr, "Global options:\n")
		flag.PrintDefaults()
	}
}

func main() {
	env.Load()
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		printRunError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("command required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "update-sitelinks":
		return handleUpdateSitelinks(cfg, rest)
	case "remove-sitelinks":
		return handleRemoveSitelinks(cfg, rest)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// loadConfig merges the config file with flags and environment variables.
// Precedence: flag, then environment, then file.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}

	overlay(&cfg.AuthToken, authToken, "ADSCTL_AUTH_TOKEN")
	overlay(&cfg.DeveloperToken, devToken, "ADSCTL_DEV_TOKEN")
	overlay(&cfg.LoginCustomerID, loginCustomer, "ADSCTL_LOGIN_CUSTOMER")
	overlay(&cfg.Endpoint, endpoint, "ADSCTL_ENDPOINT")
	overlay(&cfg.Version, apiVersion, "")
	return cfg, nil
}

func overlay(dst *string, flagValue, envKey string) {
	if flagValue != "" {
		*dst = flagValue
		return
	}
	if envKey != "" {
		if v := os.Getenv(envKey); v != "" {
			*dst = v
		}
	}
}
