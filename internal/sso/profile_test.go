package sso_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/BerryBytes/awskit/internal/sso"
	"github.com/BerryBytes/awskit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sharedConfig = `[default]
region = us-west-2
output = json

[profile legacy]
sso_start_url = https://legacy.awsapps.com/start
sso_region = us-east-1
sso_account_id = 111111111111
sso_role_name = ReadOnly

[profile modern]
sso_session = corp
sso_account_id = 222222222222
sso_role_name = Admin
region = eu-west-1

[profile incomplete]
sso_start_url = https://legacy.awsapps.com/start
sso_region = us-east-1

[profile badaccount]
sso_start_url = https://legacy.awsapps.com/start
sso_region = us-east-1
sso_account_id = 1234
sso_role_name = Admin

[sso-session corp]
sso_start_url = https://corp.awsapps.com/start
sso_region = eu-central-1
sso_registration_scopes = sso:account:access
`

func writeSharedConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(sharedConfig), 0o600))
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeSharedConfig(t)

	tests := []struct {
		name        string
		profile     string
		want        models.SSOProfile
		wantMissing []string
		wantErr     bool
	}{
		{
			name:    "legacy fields",
			profile: "legacy",
			want: models.SSOProfile{
				Name: "legacy", StartURL: "https://legacy.awsapps.com/start", Region: "us-east-1",
				AccountID: "111111111111", RoleName: "ReadOnly",
			},
		},
		{
			name:    "sso session",
			profile: "modern",
			want: models.SSOProfile{
				Name: "modern", StartURL: "https://corp.awsapps.com/start", Region: "eu-central-1",
				AccountID: "222222222222", RoleName: "Admin",
			},
		},
		{name: "missing fields", profile: "incomplete", wantErr: true, wantMissing: []string{"sso_account_id", "sso_role_name"}},
		{name: "no sso at all", profile: "default", wantErr: true, wantMissing: []string{"sso_start_url", "sso_account_id", "sso_role_name"}},
		{name: "bad account id", profile: "badaccount", wantErr: true},
		{name: "unknown profile", profile: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sso.LoadProfile(context.Background(), tt.profile, path)
			if tt.wantErr {
				var cfgErr *sso.ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, tt.profile, cfgErr.Profile)
				assert.Contains(t, err.Error(), "AWS SSO config not found")
				if tt.wantMissing != nil {
					assert.Equal(t, tt.wantMissing, cfgErr.Missing)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileNames(t *testing.T) {
	path := writeSharedConfig(t)

	names, err := sso.ProfileNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"badaccount", "default", "incomplete", "legacy", "modern"}, names)

	_, err = sso.ProfileNames(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSSOProfileNames(t *testing.T) {
	path := writeSharedConfig(t)

	names, err := sso.SSOProfileNames(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy", "modern"}, names)
}

func TestValidators(t *testing.T) {
	assert.NoError(t, sso.ValidateAccountID("123456789012"))
	assert.Error(t, sso.ValidateAccountID("12345678901a"))
	assert.Error(t, sso.ValidateAccountID("1234567890123"))

	assert.NoError(t, sso.ValidateStartURL("https://example.awsapps.com/start"))
	assert.Error(t, sso.ValidateStartURL("http://example.awsapps.com/start"))
}
