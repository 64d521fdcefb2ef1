package impl

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/event"
	"cabinet/internal/usecase"
	"cabinet/internal/util"
)

// sessionClient implements the SessionUsecase interface.
type sessionClient struct {
	identity  usecase.IdentityUsecase
	api       service.AccountAPI
	inspector service.TokenInspector
	bus       *event.Bus
	logger    *slog.Logger

	state    atomic.Int32
	updating atomic.Bool

	mu         sync.RWMutex
	token      string
	profile    entity.AccountProfile
	hasProfile bool

	subMu     sync.Mutex
	sub       *event.Subscription
	runCtx    context.Context
	cancel    context.CancelFunc
	accepting bool
	wg        sync.WaitGroup
}

// NewSessionClient is the constructor for sessionClient.
func NewSessionClient(
	identity usecase.IdentityUsecase,
	api service.AccountAPI,
	inspector service.TokenInspector,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionClient{
		identity:  identity,
		api:       api,
		inspector: inspector,
		bus:       bus,
		logger:    logger.With(slog.String("component", "session")),
	}
}

// Bootstrap runs identity lookup, login and profile fetch strictly in sequence.
// A failed profile fetch is logged and leaves the session authenticated.
func (c *sessionClient) Bootstrap(ctx context.Context) error {
	c.setState(entity.SessionStateIdle)

	identity, err := c.identity.GetOrCreateIdentity(ctx)
	if err != nil {
		c.setState(entity.SessionStateFailed)

		return errors.Wrap(err, "failed to resolve device identity")
	}

	if _, err := c.Login(ctx, identity); err != nil {
		return errors.Wrap(err, "failed to log in")
	}

	if _, err := c.FetchProfile(ctx); err != nil {
		c.logger.Warn("Profile fetch after login failed", slog.Any("error", err))
	}

	return nil
}

// Login exchanges the identity for a token. Every failure is an auth failure, drops any
// earlier token and moves the session to Failed; nothing is retried.
func (c *sessionClient) Login(ctx context.Context, identity entity.DeviceIdentity) (string, error) {
	c.setState(entity.SessionStateAuthenticating)
	c.logger.Info("Logging in", slog.String("guid", identity.String()))

	token, err := c.api.Login(ctx, identity.String())
	if err == nil && token == "" {
		err = domainerrors.ErrAuthFailure.WithDetails("empty token in login response")
	}
	if err != nil {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		c.setState(entity.SessionStateFailed)
		c.logger.Error("Login failed", slog.String("guid", identity.String()), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrAuthFailure) {
			return "", errors.WithStack(err)
		}

		return "", errors.Wrap(errors.Join(domainerrors.ErrAuthFailure, err), "login failed")
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.setState(entity.SessionStateAuthenticated)

	c.logTokenClaims(token)

	return token, nil
}

// FetchProfile loads the account, caches it and emits it on profileReceived.
func (c *sessionClient) FetchProfile(ctx context.Context) (entity.AccountProfile, error) {
	token, ok := c.currentToken()
	if !ok {
		return entity.AccountProfile{}, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	c.setState(entity.SessionStateSyncing)
	profile, err := c.api.GetMe(ctx, token)
	c.setState(entity.SessionStateAuthenticated)

	if err == nil && profile == nil {
		err = domainerrors.ErrUnexpectedStatus.WithDetails("empty profile response")
	}
	if err != nil {
		c.logger.Error("Failed to fetch profile", slog.Any("error", err))

		return entity.AccountProfile{}, errors.Wrap(err, "failed to fetch profile")
	}

	profile.ParseTimestamps()

	c.mu.Lock()
	c.profile = *profile
	c.hasProfile = true
	c.mu.Unlock()

	c.logger.Info("Profile received",
		slog.String("guid", profile.GUID),
		slog.String("username", profile.Username),
	)
	c.bus.ProfileReceived.Emit(ctx, *profile)

	return *profile, nil
}

// UpdateUsername sends the change and emits exactly one outcome. The returned error is
// non-nil only when the request was never sent; the outcome carries every server answer.
func (c *sessionClient) UpdateUsername(ctx context.Context, username string) (entity.UsernameChangeOutcome, error) {
	token, ok := c.currentToken()
	if !ok {
		return entity.UsernameOutcomeNone, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	if !c.updating.CompareAndSwap(false, true) {
		c.logger.Warn("Username update rejected, another one is in flight", slog.String("username", username))

		return entity.UsernameOutcomeNone, errors.WithStack(domainerrors.ErrUpdateInProgress)
	}

	c.setState(entity.SessionStateUpdatingUsername)
	status, err := c.api.UpdateUsername(ctx, token, username)
	outcome := classifyUsernameStatus(status, err)

	if outcome == entity.UsernameOutcomeSuccess {
		c.mu.Lock()
		if c.hasProfile {
			c.profile = c.profile.WithUsername(username)
		}
		c.mu.Unlock()
	}

	c.setState(entity.SessionStateAuthenticated)
	c.updating.Store(false)

	attrs := []any{
		slog.String("username", username),
		slog.Int("status", status),
		slog.String("outcome", outcome.String()),
	}
	switch {
	case err != nil:
		c.logger.Error("Username update failed", append(attrs, slog.Any("error", err))...)
	case outcome == entity.UsernameOutcomeSuccess:
		c.logger.Info("Username updated", attrs...)
	default:
		c.logger.Warn("Username update refused", attrs...)
	}

	c.bus.UsernameOutcome.Emit(ctx, outcome)

	return outcome, nil
}

// NotifyShutdown sends the heartbeat and waits for it at most until ctx is done.
// Without a token nothing is sent. Failures are logged only.
func (c *sessionClient) NotifyShutdown(ctx context.Context) {
	token, ok := c.currentToken()
	if !ok {
		c.logger.Warn("No auth token available, heartbeat skipped")

		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := c.api.UpdateLastActive(ctx, token); err != nil {
			if errors.IsAny(err, context.Canceled, context.DeadlineExceeded) {
				c.logger.Warn("Heartbeat cut short", slog.Any("error", err))

				return
			}
			c.logger.Warn("Heartbeat failed", slog.Any("error", err))

			return
		}
		c.logger.Info("Heartbeat sent")
	}()

	select {
	case <-done:
	case <-ctx.Done():
		c.logger.Warn("Heartbeat abandoned", slog.Any("error", ctx.Err()))
	}
}

// Start subscribes the session to submitted usernames. Each submission is handled on its
// own goroutine so the emitter never waits on the network.
func (c *sessionClient) Start() error {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	if c.sub != nil {
		return nil
	}

	sub, err := c.bus.UsernameSubmitted.Subscribe(c.onUsernameSubmitted)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to submitted usernames")
	}

	c.runCtx, c.cancel = context.WithCancel(context.Background())
	c.sub = sub
	c.accepting = true

	return nil
}

// onUsernameSubmitted starts the update on its own goroutine. Submissions delivered
// after Stop began are dropped, so no goroutine is added once Stop waits.
func (c *sessionClient) onUsernameSubmitted(_ context.Context, username string) {
	c.subMu.Lock()
	if !c.accepting {
		c.subMu.Unlock()
		c.logger.Warn("Session stopped, submitted username dropped", slog.String("username", username))

		return
	}
	runCtx := c.runCtx
	c.wg.Add(1)
	c.subMu.Unlock()

	go func() {
		defer c.wg.Done()

		if _, err := c.UpdateUsername(runCtx, username); err != nil {
			c.logger.Warn("Submitted username not sent", slog.String("username", username), slog.Any("error", err))
		}
	}()
}

// Stop unsubscribes and waits for in-flight submissions to finish.
func (c *sessionClient) Stop() {
	c.subMu.Lock()
	sub, cancel := c.sub, c.cancel
	c.sub, c.cancel = nil, nil
	c.accepting = false
	c.subMu.Unlock()

	if sub == nil {
		return
	}

	sub.Unsubscribe()
	cancel()
	c.wg.Wait()
}

func (c *sessionClient) State() entity.SessionState {
	return entity.SessionState(c.state.Load())
}

func (c *sessionClient) Profile() (entity.AccountProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.profile, c.hasProfile
}

func (c *sessionClient) Authenticated() bool {
	_, ok := c.currentToken()

	return ok
}

func (c *sessionClient) setState(state entity.SessionState) {
	c.state.Store(int32(state))
}

func (c *sessionClient) currentToken() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token, c.token != ""
}

func (c *sessionClient) logTokenClaims(token string) {
	info, err := c.inspector.Inspect(token)
	if err != nil {
		c.logger.Debug("Token claims not readable", slog.Any("error", err))

		return
	}

	attrs := []any{slog.String("subject", info.Subject)}
	if !info.ExpiresAt.IsZero() {
		attrs = append(attrs,
			slog.Time("expires_at", info.ExpiresAt),
			slog.String("expires_in", util.FormatDuration(time.Until(info.ExpiresAt))),
		)
	}
	c.logger.Info("Logged in", attrs...)
}

// classifyUsernameStatus maps the update response onto an outcome. Any transport error
// is a server error regardless of status, and so is every 5xx.
func classifyUsernameStatus(status int, err error) entity.UsernameChangeOutcome {
	if err != nil {
		return entity.UsernameOutcomeServerError
	}

	switch {
	case status == http.StatusOK:
		return entity.UsernameOutcomeSuccess
	case status == http.StatusConflict:
		return entity.UsernameOutcomeTaken
	case status == http.StatusNotFound:
		return entity.UsernameOutcomeNotFound
	case status >= http.StatusInternalServerError:
		return entity.UsernameOutcomeServerError
	default:
		return entity.UsernameOutcomeUnexpectedStatus
	}
}
