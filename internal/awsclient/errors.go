package awsclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// ErrorCode returns the API error code carried by err, or "".
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// IsNotFound reports a missing object, bucket or resource.
func IsNotFound(err error) bool {
	switch ErrorCode(err) {
	case "NotFound", "NoSuchKey", "NoSuchBucket", "NoSuchUpload", "ResourceNotFoundException", "ExecutionDoesNotExist":
		return true
	}
	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode() == http.StatusNotFound
	}
	return false
}

func HandleAWSError(err error, operation string) error {
	if err == nil {
		return nil
	}
	switch code := ErrorCode(err); code {
	case "RequestExpired", "ExpiredToken", "ExpiredTokenException":
		return fmt.Errorf("AWS request expired during %s: %w", operation, err)
	case "AuthFailure", "UnauthorizedOperation", "UnauthorizedException", "AccessDenied", "AccessDeniedException", "InvalidClientTokenId":
		return fmt.Errorf("AWS authentication failed during %s: %w", operation, err)
	case "OptInRequired":
		return fmt.Errorf("AWS region is not enabled during %s: %w", operation, err)
	case "ThrottlingException", "TooManyRequestsException", "SlowDown":
		return fmt.Errorf("AWS throttled the request during %s: %w", operation, err)
	default:
		if IsNotFound(err) {
			return fmt.Errorf("AWS resource not found during %s: %w", operation, err)
		}
	}
	return fmt.Errorf("failed during %s: %w", operation, err)
}
