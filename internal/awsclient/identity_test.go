package awsclient_test

import (
	"context"
	"testing"

	"github.com/BerryBytes/awskit/internal/awsclient"
	mock_awsclient "github.com/BerryBytes/awskit/internal/mocks/awsclient"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_awsclient.NewMockSTSAPI(ctrl)
	client.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).Return(&sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:sts::123456789012:assumed-role/Admin/dev"),
		UserId:  aws.String("AROAEXAMPLE:dev"),
	}, nil)

	id, err := awsclient.CallerIdentity(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", id.Account)
	assert.Equal(t, "AROAEXAMPLE:dev", id.UserID)
}

func TestCallerIdentity_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_awsclient.NewMockSTSAPI(ctrl)
	client.EXPECT().GetCallerIdentity(gomock.Any(), gomock.Any()).
		Return(nil, &smithy.GenericAPIError{Code: "ExpiredToken", Message: "expired"})

	_, err := awsclient.CallerIdentity(context.Background(), client)
	assert.ErrorContains(t, err, "AWS request expired during getting caller identity")
}
