package sso

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BerryBytes/awskit/internal/cache"
)

// ConfigError reports a profile without the fields the SSO flow needs.
type ConfigError struct {
	Profile string
	Missing []string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("AWS SSO config not found for profile %q", e.Profile)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(" (missing %s)", strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

var ErrAuthTimeout = errors.New("timeout trying to create token")

// TransientAuthError is a token poll failure the device loop tolerates.
type TransientAuthError struct {
	Err error
}

func (e *TransientAuthError) Error() string {
	return fmt.Sprintf("transient token error: %v", e.Err)
}

func (e *TransientAuthError) Unwrap() error { return e.Err }

// DeviceAuthError is a token poll rejection that ends the attempt.
type DeviceAuthError struct {
	Code string
	Err  error
}

func (e *DeviceAuthError) Error() string {
	return fmt.Sprintf("device authorization rejected (%s): %v", e.Code, e.Err)
}

func (e *DeviceAuthError) Unwrap() error { return e.Err }

// FailureStage names the record a failed acquisition was working on.
type FailureStage int

const (
	StageCredentials FailureStage = iota
	StageAccess
	StageClient
)

func (s FailureStage) String() string {
	switch s {
	case StageClient:
		return "client"
	case StageAccess:
		return "access"
	default:
		return "credentials"
	}
}

// Invalidations lists the cache kinds dropped before the retry, outermost first.
func (s FailureStage) Invalidations() []cache.Kind {
	switch s {
	case StageClient:
		return []cache.Kind{cache.KindClient, cache.KindAccess, cache.KindCredentials}
	case StageAccess:
		return []cache.Kind{cache.KindAccess, cache.KindCredentials}
	default:
		return []cache.Kind{cache.KindCredentials}
	}
}

// AuthError is returned by the broker once the retry has also failed.
type AuthError struct {
	Profile string
	Stage   FailureStage
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("failed to resolve SSO credentials for profile %q at %s stage: %v", e.Profile, e.Stage, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

type stageError struct {
	stage FailureStage
	err   error
}

func (e *stageError) Error() string { return e.err.Error() }

func (e *stageError) Unwrap() error { return e.err }

func atStage(stage FailureStage, err error) error {
	return &stageError{stage: stage, err: err}
}

func stageOf(err error) FailureStage {
	var se *stageError
	if errors.As(err, &se) {
		return se.stage
	}
	return StageCredentials
}
