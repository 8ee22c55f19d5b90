package sso

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BerryBytes/awskit/internal/cache"
	"github.com/BerryBytes/awskit/internal/logger"
	"github.com/BerryBytes/awskit/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awssso "github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ClientName = "awskit"
	ClientType = "public"
)

// State is a step of the credential acquisition walk.
type State int

const (
	StateNeedCredentials State = iota
	StateNeedAccess
	StateNeedClient
	StateAcquiring
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNeedCredentials:
		return "NeedCredentials"
	case StateNeedAccess:
		return "NeedAccess"
	case StateNeedClient:
		return "NeedClient"
	case StateAcquiring:
		return "Acquiring"
	case StateReady:
		return "Ready"
	default:
		return "Failed"
	}
}

// Broker resolves role credentials for one SSO profile, consulting the cache
// at every layer before going to the network. A failed walk invalidates the
// records of the failing stage and is retried once.
type Broker struct {
	Profile models.SSOProfile
	Cache   *cache.Store
	OIDC    OIDCAPI
	Portal  PortalAPI
	Device  *DeviceAuthorizer
	Log     *zap.SugaredLogger
	Now     func() time.Time

	group singleflight.Group

	mu          sync.Mutex
	creds       models.RoleCredentials
	initialized bool
	expireTime  time.Time
	state       State
	flight      *flight
}

// flight is one shared acquisition walk. Its context keeps the values of the
// caller that started it and is cancelled once every waiting caller has gone.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func NewBroker(profile models.SSOProfile, store *cache.Store, oidc OIDCAPI, portal PortalAPI, log *zap.SugaredLogger) *Broker {
	log = logger.OrNop(log)
	return &Broker{
		Profile: profile,
		Cache:   store,
		OIDC:    oidc,
		Portal:  portal,
		Device:  NewDeviceAuthorizer(oidc, log),
		Log:     log,
		Now:     time.Now,
	}
}

// NewBrokerFromConfig builds the ssooidc and sso clients in the profile's SSO
// region from cfg.
func NewBrokerFromConfig(cfg aws.Config, profile models.SSOProfile, store *cache.Store, log *zap.SugaredLogger) *Broker {
	regional := cfg.Copy()
	regional.Region = profile.Region
	regional.Credentials = aws.AnonymousCredentials{}
	return NewBroker(profile, store, ssooidc.NewFromConfig(regional), awssso.NewFromConfig(regional), log)
}

// Expired is true until credentials are loaded, and once they fall inside the
// refresh margin.
func (b *Broker) Expired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.expiredLocked()
}

func (b *Broker) expiredLocked() bool {
	return !b.initialized || !cache.Fresh(b.expireTime, b.now())
}

func (b *Broker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Broker) Credentials(ctx context.Context) (models.RoleCredentials, error) {
	b.mu.Lock()
	if !b.expiredLocked() {
		creds := b.creds
		b.mu.Unlock()
		return creds, nil
	}
	b.mu.Unlock()

	if err := b.resolve(ctx); err != nil {
		return models.RoleCredentials{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.creds, nil
}

// Refresh drops the cached and in-memory role credentials and acquires new
// ones. A valid access token and client registration are still reused.
func (b *Broker) Refresh(ctx context.Context) error {
	b.Invalidate(StageCredentials)
	return b.resolve(ctx)
}

// resolve runs the acquisition walk. Concurrent callers share one run, and a
// caller whose ctx ends stops waiting without failing the others.
func (b *Broker) resolve(ctx context.Context) error {
	f := b.join(ctx)
	defer b.leave(f)

	ch := b.group.DoChan(b.Profile.Name, func() (any, error) {
		return nil, b.refresh(f.ctx)
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("failed to resolve credentials for profile %s: %w", b.Profile.Name, ctx.Err())
	}
}

func (b *Broker) join(ctx context.Context) *flight {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.flight == nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		b.flight = &flight{ctx: fctx, cancel: cancel}
	}
	b.flight.waiters++
	return b.flight
}

func (b *Broker) leave(f *flight) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f.waiters--
	if f.waiters > 0 {
		return
	}
	f.cancel()
	if b.flight == f {
		b.flight = nil
		// a walk aborted by the cancel must not be joined by later callers
		b.group.Forget(b.Profile.Name)
	}
}

func (b *Broker) refresh(ctx context.Context) error {
	rec, err := b.acquire(ctx)
	if err != nil {
		stage := stageOf(err)
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || isConfigError(err) {
			b.setState(StateFailed)
			return &AuthError{Profile: b.Profile.Name, Stage: stage, Err: err}
		}

		b.Log.Warnf("Failed to resolve credentials at %s stage, retrying: %v", stage, err)
		b.invalidate(stage)

		rec, err = b.acquire(ctx)
		if err != nil {
			b.setState(StateFailed)
			b.Log.Debugf("Failed to resolve credentials: %v", err)
			return &AuthError{Profile: b.Profile.Name, Stage: stageOf(err), Err: err}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.creds = rec.Payload
	b.expireTime = rec.ExpiresAt
	b.initialized = true
	b.state = StateReady
	return nil
}

// Invalidate drops the cached records the given stage depends on and forgets
// the in-memory credentials.
func (b *Broker) Invalidate(stage FailureStage) {
	b.invalidate(stage)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initialized = false
	b.creds = models.RoleCredentials{}
	b.expireTime = time.Time{}
}

func (b *Broker) invalidate(stage FailureStage) {
	for _, kind := range stage.Invalidations() {
		b.Cache.Delete(kind, b.Profile.Name)
	}
}

func (b *Broker) acquire(ctx context.Context) (cache.Record[models.RoleCredentials], error) {
	var (
		client cache.Record[models.ClientRegistration]
		access cache.Record[models.AccessToken]
		ok     bool
		err    error
	)
	name := b.Profile.Name
	state := StateNeedCredentials

	for {
		b.setState(state)
		switch state {
		case StateNeedCredentials:
			b.Log.Debug("Fetching credentials ...")
			if creds, ok := cache.Read[models.RoleCredentials](b.Cache, cache.KindCredentials, name); ok {
				return creds, nil
			}
			state = StateNeedAccess

		case StateNeedAccess:
			b.Log.Debug("Fetching access data ...")
			if access, ok = cache.Read[models.AccessToken](b.Cache, cache.KindAccess, name); ok {
				state = StateAcquiring
				continue
			}
			b.Log.Info("Time to refresh access info.")
			state = StateNeedClient

		case StateNeedClient:
			if client, ok = cache.Read[models.ClientRegistration](b.Cache, cache.KindClient, name); !ok {
				if client, err = b.register(ctx); err != nil {
					return cache.Record[models.RoleCredentials]{}, atStage(StageClient, err)
				}
			}
			if access, err = b.authorize(ctx, client.Payload); err != nil {
				return cache.Record[models.RoleCredentials]{}, err
			}
			state = StateAcquiring

		case StateAcquiring:
			return b.roleCredentials(ctx, access.Payload)
		}
	}
}

func (b *Broker) register(ctx context.Context) (cache.Record[models.ClientRegistration], error) {
	b.Log.Info("Registering client ...")
	out, err := b.OIDC.RegisterClient(ctx, &ssooidc.RegisterClientInput{
		ClientName: aws.String(ClientName),
		ClientType: aws.String(ClientType),
		Scopes:     Scopes,
	})
	if err != nil {
		return cache.Record[models.ClientRegistration]{}, fmt.Errorf("failed to register client: %w", err)
	}
	b.Log.Info("Client registered.")

	rec := cache.Record[models.ClientRegistration]{
		Payload: models.ClientRegistration{
			ClientID:     aws.ToString(out.ClientId),
			ClientSecret: aws.ToString(out.ClientSecret),
		},
		ExpiresAt: time.Unix(out.ClientSecretExpiresAt, 0).UTC(),
	}
	if err := cache.Write(b.Cache, cache.KindClient, b.Profile.Name, rec); err != nil {
		return cache.Record[models.ClientRegistration]{}, err
	}
	return rec, nil
}

// authorize runs the device flow. Rejections of the client registration are
// client-stage failures, everything else is charged to the access stage.
func (b *Broker) authorize(ctx context.Context, client models.ClientRegistration) (cache.Record[models.AccessToken], error) {
	access, err := b.Device.Authorize(ctx, client, b.Profile.StartURL)
	if err != nil {
		if code := errorCode(err); code == "InvalidClientException" || code == "UnauthorizedClientException" {
			return access, atStage(StageClient, err)
		}
		return access, atStage(StageAccess, err)
	}

	if err := cache.Write(b.Cache, cache.KindAccess, b.Profile.Name, access); err != nil {
		return access, atStage(StageAccess, err)
	}
	return access, nil
}

func (b *Broker) roleCredentials(ctx context.Context, access models.AccessToken) (cache.Record[models.RoleCredentials], error) {
	b.Log.Debug("Fetching role credentials ...")
	out, err := b.Portal.GetRoleCredentials(ctx, &awssso.GetRoleCredentialsInput{
		AccessToken: aws.String(access.AccessToken),
		AccountId:   aws.String(b.Profile.AccountID),
		RoleName:    aws.String(b.Profile.RoleName),
	})
	if err != nil {
		err = fmt.Errorf("failed to get role credentials: %w", err)
		if errorCode(err) == "UnauthorizedException" {
			return cache.Record[models.RoleCredentials]{}, atStage(StageAccess, err)
		}
		return cache.Record[models.RoleCredentials]{}, atStage(StageCredentials, err)
	}
	if out.RoleCredentials == nil {
		return cache.Record[models.RoleCredentials]{}, atStage(StageCredentials, errors.New("empty role credentials response"))
	}

	expiresAt := time.UnixMilli(out.RoleCredentials.Expiration).UTC()
	rec := cache.Record[models.RoleCredentials]{
		Payload: models.RoleCredentials{
			AccessKeyID:     aws.ToString(out.RoleCredentials.AccessKeyId),
			SecretAccessKey: aws.ToString(out.RoleCredentials.SecretAccessKey),
			SessionToken:    aws.ToString(out.RoleCredentials.SessionToken),
			Expiration:      expiresAt,
		},
		ExpiresAt: expiresAt,
	}

	b.Log.Debug("Persisting temporary credentials ...")
	if err := cache.Write(b.Cache, cache.KindCredentials, b.Profile.Name, rec); err != nil {
		return cache.Record[models.RoleCredentials]{}, atStage(StageCredentials, err)
	}
	return rec, nil
}

func (b *Broker) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}

func (b *Broker) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func isConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
