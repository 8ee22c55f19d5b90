package awsclient_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/BerryBytes/awskit/internal/awsclient"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
)

func TestHandleAWSError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedErr string
	}{
		{
			name:        "RequestExpired",
			err:         &smithy.GenericAPIError{Code: "RequestExpired", Message: "expired"},
			expectedErr: "AWS request expired during test-op",
		},
		{
			name:        "AuthFailure",
			err:         &smithy.GenericAPIError{Code: "AuthFailure", Message: "unauthorized"},
			expectedErr: "AWS authentication failed during test-op",
		},
		{
			name:        "AccessDenied",
			err:         &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "nope"},
			expectedErr: "AWS authentication failed during test-op",
		},
		{
			name:        "Throttled",
			err:         &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
			expectedErr: "AWS throttled the request during test-op",
		},
		{
			name:        "NoSuchKey",
			err:         &types.NoSuchKey{},
			expectedErr: "AWS resource not found during test-op",
		},
		{
			name:        "Generic error",
			err:         errors.New("generic error"),
			expectedErr: "failed during test-op: generic error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := awsclient.HandleAWSError(tt.err, "test-op")
			if !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("Expected error containing %q, got %v", tt.expectedErr, err)
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, awsclient.HandleAWSError(nil, "test-op"))
}

func TestIsNotFound(t *testing.T) {
	notFoundResponse := &smithyhttp.ResponseError{
		Response: &smithyhttp.Response{Response: &http.Response{StatusCode: http.StatusNotFound}},
		Err:      errors.New("not found"),
	}

	assert.True(t, awsclient.IsNotFound(&types.NotFound{}))
	assert.True(t, awsclient.IsNotFound(&smithy.GenericAPIError{Code: "NoSuchBucket"}))
	assert.True(t, awsclient.IsNotFound(notFoundResponse))
	assert.False(t, awsclient.IsNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, awsclient.IsNotFound(errors.New("plain")))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "SlowDown", awsclient.ErrorCode(&smithy.GenericAPIError{Code: "SlowDown"}))
	assert.Equal(t, "", awsclient.ErrorCode(errors.New("plain")))
}
