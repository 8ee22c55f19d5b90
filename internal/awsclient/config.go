// Package awsclient builds explicit aws.Config values and classifies SDK errors.
// No process-wide SDK configuration is used anywhere in awskit.
package awsclient

import (
	"context"
	"fmt"
	"time"

	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type ConfigLoader interface {
	LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error)
}

type DefaultLoader struct{}

func (DefaultLoader) LoadDefaultConfig(ctx context.Context, opts ...func(*config.LoadOptions) error) (aws.Config, error) {
	return config.LoadDefaultConfig(ctx, opts...)
}

type Options struct {
	Region string
	// Profile selects a shared config profile when no Credentials are given.
	Profile     string
	Credentials aws.CredentialsProvider
	// ExpiryWindow makes cached credentials refresh early.
	ExpiryWindow time.Duration
	Loader       ConfigLoader
}

// Load returns a config carrying exactly the region and credentials in opts.
func Load(ctx context.Context, opts Options) (aws.Config, error) {
	loader := opts.Loader
	if loader == nil {
		loader = DefaultLoader{}
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.Credentials != nil {
		provider := aws.NewCredentialsCache(opts.Credentials, func(o *aws.CredentialsCacheOptions) {
			o.ExpiryWindow = opts.ExpiryWindow
		})
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	} else if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := loader.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return aws.Config{}, fmt.Errorf("no AWS region configured; set --region or AWS_REGION")
	}
	return cfg, nil
}

// StaticCredentials serves already-resolved role credentials as they are.
func StaticCredentials(creds models.RoleCredentials) aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)
}
