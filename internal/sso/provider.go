package sso

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

const ProviderName = "AwskitSSOProvider"

// Provider exposes a CredentialSource as an aws.CredentialsProvider.
type Provider struct {
	Source CredentialSource
}

func NewProvider(source CredentialSource) *Provider {
	return &Provider{Source: source}
}

func (p *Provider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	creds, err := p.Source.Credentials(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}
	return aws.Credentials{
		AccessKeyID:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
		SessionToken:    creds.SessionToken,
		Source:          ProviderName,
		CanExpire:       !creds.Expiration.IsZero(),
		Expires:         creds.Expiration,
	}, nil
}

var _ aws.CredentialsProvider = (*Provider)(nil)
