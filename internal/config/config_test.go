package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BerryBytes/awskit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoDirectory(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.NotNil(t, cfg.File)
	assert.Equal(t, config.FileConfig{}, *cfg.File)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()

	_, err := config.FindConfigFile(dir)
	assert.ErrorIs(t, err, config.ErrNoConfigFile)

	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	found, err := config.FindConfigFile(dir)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	content := `
profile: dev
region: eu-west-1
athena:
  workGroup: analytics
  resultBucket: results
  resultPrefix: tmp/
  timeoutSeconds: 30
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.File.Profile)
	assert.Equal(t, "eu-west-1", cfg.File.Region)
	assert.Equal(t, "analytics", cfg.File.Athena.WorkGroup)
	assert.Equal(t, "results", cfg.File.Athena.ResultBucket)
	assert.Equal(t, "tmp/", cfg.File.Athena.ResultPrefix)
	assert.Equal(t, 30, cfg.File.Athena.TimeoutSeconds)
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	content := `{"region": "us-east-2", "athena": {"database": "logs"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "us-east-2", cfg.File.Region)
	assert.Equal(t, "logs", cfg.File.Athena.Database)
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("region: [unclosed"), 0o644))

	_, err := config.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := &config.Config{
		ConfigDir: dir,
		File: &config.FileConfig{
			Region: "ap-south-1",
			Athena: config.AthenaConfig{WorkGroup: "primary", PollIntervalSeconds: 2},
		},
	}
	require.NoError(t, cfg.Save())

	loaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, *cfg.File, *loaded.File)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		explicit config.Options
		file     *config.FileConfig
		want     config.Options
		wantErr  bool
	}{
		{
			name: "defaults",
			want: config.Options{Profile: config.DefaultProfile, DefaultedProfile: true, AuthTimeout: config.DefaultAuthTimeout},
		},
		{
			name:     "file fills gaps",
			file:     &config.FileConfig{Profile: "file", Region: "eu-west-1", CacheDir: "/tmp/c"},
			want:     config.Options{Profile: "file", Region: "eu-west-1", CacheDir: "/tmp/c", AuthTimeout: config.DefaultAuthTimeout},
			explicit: config.Options{},
		},
		{
			name:     "explicit beats file",
			explicit: config.Options{Profile: "flag", AuthTimeout: 10 * time.Second},
			file:     &config.FileConfig{Profile: "file"},
			want:     config.Options{Profile: "flag", AuthTimeout: 10 * time.Second},
		},
		{
			name: "env beats explicit",
			env: map[string]string{
				config.EnvProfile:     "env",
				config.EnvVerbose:     "true",
				config.EnvQuiet:       "1",
				config.EnvAuthTimeout: "45",
			},
			explicit: config.Options{Profile: "flag", AuthTimeout: 10 * time.Second},
			want:     config.Options{Profile: "env", Verbose: true, Quiet: true, AuthTimeout: 45 * time.Second},
		},
		{
			name: "duration syntax",
			env:  map[string]string{config.EnvAuthTimeout: "2m"},
			want: config.Options{Profile: config.DefaultProfile, DefaultedProfile: true, AuthTimeout: 2 * time.Minute},
		},
		{
			name:    "bad timeout",
			env:     map[string]string{config.EnvAuthTimeout: "soon"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			env:     map[string]string{config.EnvAuthTimeout: "-5"},
			wantErr: true,
		},
		{
			name:    "bad bool",
			env:     map[string]string{config.EnvVerbose: "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{config.EnvProfile, config.EnvRegion, config.EnvVerbose,
				config.EnvQuiet, config.EnvAuthTimeout, config.EnvNoBrowser} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := config.Resolve(tt.explicit, tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
