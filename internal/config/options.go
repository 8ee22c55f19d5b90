package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvProfile     = "AWS_PROFILE"
	EnvRegion      = "AWS_REGION"
	EnvVerbose     = "AWSKIT_VERBOSE"
	EnvQuiet       = "AWSKIT_QUIET"
	EnvAuthTimeout = "AWSKIT_AUTH_TIMEOUT"
	EnvNoBrowser   = "AWSKIT_NO_BROWSER"

	DefaultProfile     = "default"
	DefaultAuthTimeout = 120 * time.Second
)

// Options are the runtime switches shared by every command.
type Options struct {
	Profile     string
	Region      string
	Verbose     bool
	Quiet       bool
	AuthTimeout time.Duration
	NoBrowser   bool
	CacheDir    string
	// DefaultedProfile is set when no source named a profile.
	DefaultedProfile bool
}

// Resolve layers the environment over explicit values, then file values, then
// defaults. file may be nil.
func Resolve(explicit Options, file *FileConfig) (Options, error) {
	opts := explicit
	if file == nil {
		file = &FileConfig{}
	}

	opts.Profile = firstNonEmpty(getEnv(EnvProfile, ""), explicit.Profile, file.Profile)
	opts.DefaultedProfile = opts.Profile == ""
	if opts.DefaultedProfile {
		opts.Profile = DefaultProfile
	}
	opts.Region = firstNonEmpty(getEnv(EnvRegion, ""), explicit.Region, file.Region)
	opts.CacheDir = firstNonEmpty(explicit.CacheDir, file.CacheDir)

	var err error
	if opts.Verbose, err = envBool(EnvVerbose, explicit.Verbose); err != nil {
		return Options{}, err
	}
	if opts.Quiet, err = envBool(EnvQuiet, explicit.Quiet); err != nil {
		return Options{}, err
	}
	if opts.NoBrowser, err = envBool(EnvNoBrowser, explicit.NoBrowser); err != nil {
		return Options{}, err
	}

	opts.AuthTimeout = explicit.AuthTimeout
	if raw := getEnv(EnvAuthTimeout, ""); raw != "" {
		if opts.AuthTimeout, err = parseSeconds(raw); err != nil {
			return Options{}, fmt.Errorf("invalid %s: %w", EnvAuthTimeout, err)
		}
	}
	if opts.AuthTimeout <= 0 {
		opts.AuthTimeout = DefaultAuthTimeout
	}

	return opts, nil
}

// parseSeconds accepts either a plain number of seconds or a Go duration.
func parseSeconds(raw string) (time.Duration, error) {
	if seconds, err := strconv.ParseFloat(raw, 64); err == nil {
		if seconds <= 0 {
			return 0, fmt.Errorf("timeout must be positive: %s", raw)
		}
		return time.Duration(seconds * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive: %s", raw)
	}
	return d, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
