package sso

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/BerryBytes/awskit/internal/cache"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	"github.com/aws/smithy-go"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

const (
	GrantTypeDeviceCode = "urn:ietf:params:oauth:grant-type:device_code"

	MinPollInterval    = 2500 * time.Millisecond
	SlowDownIncrement  = 5 * time.Second
	DefaultAuthTimeout = 120 * time.Second
)

var Scopes = []string{"openid", "profile", "email"}

// DeviceSession lives for a single authorization attempt.
type DeviceSession struct {
	DeviceCode      string
	UserCode        string
	VerificationURI string
	PollInterval    time.Duration
	StartedAt       time.Time
}

type DeviceAuthorizer struct {
	Client    OIDCAPI
	Log       *zap.SugaredLogger
	Timeout   time.Duration
	NoBrowser bool

	OpenURL func(url string) error
	Now     func() time.Time
	Sleep   func(ctx context.Context, d time.Duration) error
}

func NewDeviceAuthorizer(client OIDCAPI, log *zap.SugaredLogger) *DeviceAuthorizer {
	return &DeviceAuthorizer{
		Client:  client,
		Log:     logger.OrNop(log),
		Timeout: DefaultAuthTimeout,
		OpenURL: openBrowser,
		Now:     time.Now,
		Sleep:   sleepContext,
	}
}

var quietBrowser sync.Once

// openBrowser keeps the launcher's output off stdout, where it would mix
// with command output such as export lines.
func openBrowser(url string) error {
	quietBrowser.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	return browser.OpenURL(url)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Authorize runs one complete device-code grant and returns the access token
// record. Nothing is persisted here.
func (d *DeviceAuthorizer) Authorize(ctx context.Context, client models.ClientRegistration, startURL string) (cache.Record[models.AccessToken], error) {
	session, err := d.Start(ctx, client, startURL)
	if err != nil {
		return cache.Record[models.AccessToken]{}, err
	}
	return d.Poll(ctx, client, session)
}

func (d *DeviceAuthorizer) Start(ctx context.Context, client models.ClientRegistration, startURL string) (*DeviceSession, error) {
	d.Log.Info("Starting client authorization ...")
	out, err := d.Client.StartDeviceAuthorization(ctx, &ssooidc.StartDeviceAuthorizationInput{
		ClientId:     aws.String(client.ClientID),
		ClientSecret: aws.String(client.ClientSecret),
		StartUrl:     aws.String(startURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start device authorization: %w", err)
	}

	interval := time.Duration(out.Interval) * time.Second
	if interval < MinPollInterval {
		interval = MinPollInterval
	}

	session := &DeviceSession{
		DeviceCode:      aws.ToString(out.DeviceCode),
		UserCode:        aws.ToString(out.UserCode),
		VerificationURI: aws.ToString(out.VerificationUriComplete),
		PollInterval:    interval,
		StartedAt:       d.now(),
	}
	if session.VerificationURI == "" {
		session.VerificationURI = aws.ToString(out.VerificationUri)
	}

	d.Log.Infof("Open %s and confirm code %s", session.VerificationURI, session.UserCode)
	if !d.NoBrowser && d.OpenURL != nil {
		// the launcher may not return until the browser exits
		go func(open func(string) error, url string) {
			if err := open(url); err != nil {
				d.Log.Debugf("Could not open browser: %v", err)
			}
		}(d.OpenURL, session.VerificationURI)
	}
	return session, nil
}

// Poll waits one interval before every token attempt and gives up once the
// elapsed time exceeds the timeout.
func (d *DeviceAuthorizer) Poll(ctx context.Context, client models.ClientRegistration, session *DeviceSession) (cache.Record[models.AccessToken], error) {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultAuthTimeout
	}
	interval := session.PollInterval

	for {
		d.Log.Debugf("Next token create attempt in %s ...", interval)
		if err := d.sleep(ctx, interval); err != nil {
			return cache.Record[models.AccessToken]{}, err
		}

		d.Log.Debug("Attempting to create token ...")
		out, err := d.Client.CreateToken(ctx, &ssooidc.CreateTokenInput{
			ClientId:     aws.String(client.ClientID),
			ClientSecret: aws.String(client.ClientSecret),
			DeviceCode:   aws.String(session.DeviceCode),
			GrantType:    aws.String(GrantTypeDeviceCode),
			Scope:        Scopes,
		})
		if err == nil {
			d.Log.Info("Token created.")
			now := d.now()
			return cache.Record[models.AccessToken]{
				Payload: models.AccessToken{
					AccessToken:  aws.ToString(out.AccessToken),
					TokenType:    aws.ToString(out.TokenType),
					IDToken:      aws.ToString(out.IdToken),
					RefreshToken: aws.ToString(out.RefreshToken),
				},
				ExpiresAt: now.Add(time.Duration(out.ExpiresIn) * time.Second),
			}, nil
		}

		switch code := errorCode(err); code {
		case "AuthorizationPendingException":
			d.Log.Debug("Authorization pending.")
		case "SlowDownException":
			interval += SlowDownIncrement
			d.Log.Debugf("Asked to slow down, polling every %s", interval)
		case "ExpiredTokenException", "AccessDeniedException", "InvalidGrantException",
			"InvalidClientException", "UnauthorizedClientException":
			return cache.Record[models.AccessToken]{}, &DeviceAuthError{Code: code, Err: err}
		default:
			if ctx.Err() != nil {
				return cache.Record[models.AccessToken]{}, ctx.Err()
			}
			d.Log.Warnf("Failed to create token: %v", &TransientAuthError{Err: err})
		}

		if d.now().Sub(session.StartedAt) > timeout {
			return cache.Record[models.AccessToken]{}, ErrAuthTimeout
		}
	}
}

func (d *DeviceAuthorizer) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *DeviceAuthorizer) sleep(ctx context.Context, dur time.Duration) error {
	if d.Sleep != nil {
		return d.Sleep(ctx, dur)
	}
	return sleepContext(ctx, dur)
}

func errorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
