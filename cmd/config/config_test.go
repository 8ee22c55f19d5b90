package config_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	cmdconfig "github.com/BerryBytes/awskit/cmd/config"
	awskitconfig "github.com/BerryBytes/awskit/internal/config"
	"github.com/BerryBytes/awskit/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *session.Session {
	dir := filepath.Join(t.TempDir(), "awskit")
	cfg, err := awskitconfig.Load(dir)
	require.NoError(t, err)

	s := session.New()
	s.Config = cfg
	s.File = cfg.File
	return s
}

func run(s *session.Session, args ...string) (string, error) {
	cmd := cmdconfig.NewConfigCommands(cmdconfig.Dependencies{Session: s})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSet_SavesAndReloads(t *testing.T) {
	s := newSession(t)

	_, err := run(s, "set", "athena.resultBucket", "query-results")
	require.NoError(t, err)
	_, err = run(s, "set", "athena.timeoutSeconds", "900")
	require.NoError(t, err)

	reloaded, err := awskitconfig.Load(s.Config.ConfigDir)
	require.NoError(t, err)
	assert.Equal(t, "query-results", reloaded.File.Athena.ResultBucket)
	assert.Equal(t, 900, reloaded.File.Athena.TimeoutSeconds)
	assert.Equal(t, "query-results", s.File.Athena.ResultBucket)
}

func TestSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown key", []string{"set", "colour", "blue"}, `unknown key "colour"`},
		{"bad seconds", []string{"set", "athena.pollIntervalSeconds", "soon"}, "invalid athena.pollIntervalSeconds"},
		{"negative seconds", []string{"set", "--", "athena.timeoutSeconds", "-1"}, "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(newSession(t), tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestShow(t *testing.T) {
	s := newSession(t)
	s.File.Region = "eu-west-1"
	s.File.Athena.WorkGroup = "reports"

	out, err := run(s, "show")
	require.NoError(t, err)
	assert.Equal(t, "region: eu-west-1\nathena:\n    workGroup: reports\n", out)
}

func TestKeys(t *testing.T) {
	keys := cmdconfig.Keys()
	assert.Contains(t, keys, "profile")
	assert.Contains(t, keys, "athena.database")
	assert.IsIncreasing(t, keys)
}
