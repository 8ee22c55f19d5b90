package sso

import (
	"context"

	"github.com/BerryBytes/awskit/models"
	awssso "github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
)

//go:generate mockgen -source=interface.go -destination=../mocks/sso/mock_interface.go -package=mock_sso

type OIDCAPI interface {
	RegisterClient(ctx context.Context, params *ssooidc.RegisterClientInput, optFns ...func(*ssooidc.Options)) (*ssooidc.RegisterClientOutput, error)
	StartDeviceAuthorization(ctx context.Context, params *ssooidc.StartDeviceAuthorizationInput, optFns ...func(*ssooidc.Options)) (*ssooidc.StartDeviceAuthorizationOutput, error)
	CreateToken(ctx context.Context, params *ssooidc.CreateTokenInput, optFns ...func(*ssooidc.Options)) (*ssooidc.CreateTokenOutput, error)
}

type PortalAPI interface {
	GetRoleCredentials(ctx context.Context, params *awssso.GetRoleCredentialsInput, optFns ...func(*awssso.Options)) (*awssso.GetRoleCredentialsOutput, error)
}

// CredentialSource is the broker contract consumed by Provider and the CLI.
type CredentialSource interface {
	Expired() bool
	Credentials(ctx context.Context) (models.RoleCredentials, error)
	Refresh(ctx context.Context) error
}

var (
	_ OIDCAPI          = (*ssooidc.Client)(nil)
	_ PortalAPI        = (*awssso.Client)(nil)
	_ CredentialSource = (*Broker)(nil)
)
