package sso

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/config"
)

var accountIDPattern = regexp.MustCompile(`^\d{12}$`)

func ValidateAccountID(accountID string) error {
	if !accountIDPattern.MatchString(accountID) {
		return fmt.Errorf("invalid account ID: %s (must be 12 digits)", accountID)
	}
	return nil
}

func ValidateStartURL(startURL string) error {
	if !strings.HasPrefix(startURL, "https://") {
		return fmt.Errorf("invalid start URL: %s (must start with https://)", startURL)
	}
	return nil
}

func DefaultConfigFile() string {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aws", "config")
	}
	return filepath.Join(home, ".aws", "config")
}

// LoadProfile reads the SSO fields of a shared config profile, following an
// sso_session reference when the profile uses one.
func LoadProfile(ctx context.Context, name string, configFiles ...string) (models.SSOProfile, error) {
	shared, err := config.LoadSharedConfigProfile(ctx, name, func(o *config.LoadSharedConfigOptions) {
		if len(configFiles) > 0 {
			o.ConfigFiles = configFiles
			o.CredentialsFiles = []string{}
		}
	})
	if err != nil {
		var notExist config.SharedConfigProfileNotExistError
		if errors.As(err, &notExist) {
			return models.SSOProfile{}, &ConfigError{Profile: name, Err: err}
		}
		return models.SSOProfile{}, &ConfigError{Profile: name, Err: fmt.Errorf("failed to load shared config: %w", err)}
	}

	profile := models.SSOProfile{
		Name:      name,
		StartURL:  shared.SSOStartURL,
		Region:    shared.SSORegion,
		AccountID: shared.SSOAccountID,
		RoleName:  shared.SSORoleName,
	}
	if shared.SSOSession != nil {
		if profile.StartURL == "" {
			profile.StartURL = shared.SSOSession.SSOStartURL
		}
		if profile.Region == "" {
			profile.Region = shared.SSOSession.SSORegion
		}
	}
	if profile.Region == "" {
		profile.Region = shared.Region
	}
	profile.StartURL = strings.TrimSuffix(profile.StartURL, "#")

	if err := validateProfile(profile); err != nil {
		return models.SSOProfile{}, err
	}
	return profile, nil
}

func validateProfile(p models.SSOProfile) error {
	var missing []string
	if p.StartURL == "" {
		missing = append(missing, "sso_start_url")
	}
	if p.AccountID == "" {
		missing = append(missing, "sso_account_id")
	}
	if p.RoleName == "" {
		missing = append(missing, "sso_role_name")
	}
	if p.Region == "" {
		missing = append(missing, "sso_region")
	}
	if len(missing) > 0 {
		return &ConfigError{Profile: p.Name, Missing: missing}
	}
	if err := ValidateStartURL(p.StartURL); err != nil {
		return &ConfigError{Profile: p.Name, Err: err}
	}
	if err := ValidateAccountID(p.AccountID); err != nil {
		return &ConfigError{Profile: p.Name, Err: err}
	}
	return nil
}

// ProfileNames lists the profile sections declared in a shared config file.
func ProfileNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	seen := map[string]bool{}
	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
			continue
		}
		section := strings.TrimSpace(line[1 : len(line)-1])
		var name string
		switch {
		case section == "default":
			name = section
		case strings.HasPrefix(section, "profile "):
			name = strings.TrimSpace(strings.TrimPrefix(section, "profile "))
		default:
			continue
		}
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	sort.Strings(names)
	return names, nil
}

// SSOProfileNames returns only the profiles that carry a complete SSO setup.
func SSOProfileNames(ctx context.Context, path string) ([]string, error) {
	names, err := ProfileNames(path)
	if err != nil {
		return nil, err
	}
	var valid []string
	for _, name := range names {
		if _, err := LoadProfile(ctx, name, path); err == nil {
			valid = append(valid, name)
		}
	}
	return valid, nil
}
