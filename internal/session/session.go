// Package session resolves the runtime options of a command invocation and
// lazily builds the SSO broker and AWS config the command needs.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/BerryBytes/awskit/internal/cache"
	"github.com/BerryBytes/awskit/internal/config"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/internal/sso"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Session struct {
	Options config.Options
	// Config is the loaded tool config; File is its content.
	Config *config.Config
	File   *config.FileConfig
	Log     *zap.SugaredLogger
	Fs      afero.Fs
	// SharedConfigFile is the AWS shared config read for SSO profiles.
	SharedConfigFile string

	// NewSource and LoadAWSConfig replace the SSO-backed defaults.
	NewSource     func(ctx context.Context, s *Session) (sso.CredentialSource, error)
	LoadAWSConfig func(ctx context.Context, s *Session) (aws.Config, error)

	mu      sync.Mutex
	source  sso.CredentialSource
	profile models.SSOProfile
}

func New() *Session {
	return &Session{
		File:             &config.FileConfig{},
		Log:              logger.Nop(),
		Fs:               afero.NewOsFs(),
		SharedConfigFile: sso.DefaultConfigFile(),
	}
}

// Setup loads the tool config from configDir (the default directory when
// empty), resolves explicit over it and builds the logger writing to logOut.
func (s *Session) Setup(explicit config.Options, configDir string, logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if configDir == "" {
		cfg, err = config.NewConfig()
	} else {
		cfg, err = config.Load(configDir)
	}
	if err != nil {
		return err
	}
	s.Config = cfg
	s.File = cfg.File

	opts, err := config.Resolve(explicit, s.File)
	if err != nil {
		return err
	}
	s.Options = opts
	s.Log = logger.New(logger.Options{Verbose: opts.Verbose, Quiet: opts.Quiet, Output: logOut})
	return nil
}

// SetProfile switches the profile and drops any broker built for the old one.
func (s *Session) SetProfile(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Options.Profile = name
	s.Options.DefaultedProfile = false
	s.source = nil
	s.profile = models.SSOProfile{}
}

// Source returns the credential source for the selected profile, building it
// on first use.
func (s *Session) Source(ctx context.Context) (sso.CredentialSource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source != nil {
		return s.source, nil
	}
	build := s.NewSource
	if build == nil {
		build = newBroker
	}
	source, err := build(ctx, s)
	if err != nil {
		return nil, err
	}
	s.source = source
	return source, nil
}

func newBroker(ctx context.Context, s *Session) (sso.CredentialSource, error) {
	profile, err := sso.LoadProfile(ctx, s.Options.Profile, s.SharedConfigFile)
	if err != nil {
		return nil, err
	}
	s.profile = profile

	dir := s.Options.CacheDir
	if dir == "" {
		if dir, err = cache.DefaultDir(); err != nil {
			return nil, err
		}
	}

	base, err := awsclient.Load(ctx, awsclient.Options{Region: profile.Region})
	if err != nil {
		return nil, err
	}

	broker := sso.NewBrokerFromConfig(base, profile, cache.NewStore(s.Fs, dir, s.Log), s.Log)
	broker.Device.Timeout = s.Options.AuthTimeout
	broker.Device.NoBrowser = s.Options.NoBrowser
	return broker, nil
}

// Region is the explicit region, else the SSO region of the profile.
func (s *Session) Region() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Options.Region != "" {
		return s.Options.Region
	}
	return s.profile.Region
}

// AWSConfig is a config whose credentials come from the session's source.
func (s *Session) AWSConfig(ctx context.Context) (aws.Config, error) {
	if s.LoadAWSConfig != nil {
		return s.LoadAWSConfig(ctx, s)
	}

	source, err := s.Source(ctx)
	if err != nil {
		return aws.Config{}, err
	}
	cfg, err := awsclient.Load(ctx, awsclient.Options{
		Region:       s.Region(),
		Credentials:  sso.NewProvider(source),
		ExpiryWindow: cache.RefreshMargin,
	})
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to build AWS config for profile %s: %w", s.Options.Profile, err)
	}
	return cfg, nil
}

// HandleSignals returns a context cancelled on SIGINT or SIGTERM.
func HandleSignals(parent context.Context, log *zap.SugaredLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.OrNop(log).Warnf("Received termination signal: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
