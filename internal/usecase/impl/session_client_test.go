package impl

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"cabinet/internal/domain/entity"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/event"
	mockService "cabinet/internal/mocks/service"
	"cabinet/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubIdentity struct {
	identity entity.DeviceIdentity
	err      error
}

func (s stubIdentity) GetOrCreateIdentity(context.Context) (entity.DeviceIdentity, error) {
	return s.identity, s.err
}

// recorder collects everything emitted on the bus.
type recorder struct {
	mu       sync.Mutex
	profiles []entity.AccountProfile
	outcomes []entity.UsernameChangeOutcome
}

func (r *recorder) attach(t *testing.T, bus *event.Bus) {
	var group event.Group
	sub, err := bus.ProfileReceived.Subscribe(func(_ context.Context, p entity.AccountProfile) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.profiles = append(r.profiles, p)
	})
	require.NoError(t, err)
	group.Add(sub)

	sub, err = bus.UsernameOutcome.Subscribe(func(_ context.Context, o entity.UsernameChangeOutcome) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.outcomes = append(r.outcomes, o)
	})
	require.NoError(t, err)
	group.Add(sub)

	t.Cleanup(group.Close)
}

func (r *recorder) Profiles() []entity.AccountProfile {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.AccountProfile(nil), r.profiles...)
}

func (r *recorder) Outcomes() []entity.UsernameChangeOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]entity.UsernameChangeOutcome(nil), r.outcomes...)
}

type sessionClientFixtures struct {
	client    usecase.SessionUsecase
	api       *mockService.MockAccountAPI
	inspector *mockService.MockTokenInspector
	bus       *event.Bus
	events    *recorder
	identity  entity.DeviceIdentity
}

func createTestSessionClient(t *testing.T, identityErr error) sessionClientFixtures {
	api := mockService.NewMockAccountAPI(t)
	inspector := mockService.NewMockTokenInspector(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := event.NewBus(logger)
	identity := entity.NewDeviceIdentity()

	inspector.EXPECT().Inspect(mock.Anything).
		Return(service.TokenInfo{Subject: identity.String(), ExpiresAt: time.Now().Add(time.Hour)}, nil).
		Maybe()

	events := &recorder{}
	events.attach(t, bus)

	client := NewSessionClient(stubIdentity{identity: identity, err: identityErr}, api, inspector, bus, logger)

	return sessionClientFixtures{
		client:    client,
		api:       api,
		inspector: inspector,
		bus:       bus,
		events:    events,
		identity:  identity,
	}
}

func (fx sessionClientFixtures) login(t *testing.T) {
	fx.api.EXPECT().Login(mock.Anything, fx.identity.String()).Return("token-1", nil).Once()

	token, err := fx.client.Login(context.Background(), fx.identity)
	require.NoError(t, err)
	require.Equal(t, "token-1", token)
}

func (fx sessionClientFixtures) loadProfile(t *testing.T, username string) {
	fx.api.EXPECT().GetMe(mock.Anything, "token-1").
		Return(&entity.AccountProfile{GUID: fx.identity.String(), Username: username}, nil).
		Once()

	_, err := fx.client.FetchProfile(context.Background())
	require.NoError(t, err)
}

func TestSessionClient_Bootstrap_Success(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	ctx := context.Background()

	fx.api.EXPECT().Login(ctx, fx.identity.String()).Return("token-1", nil).Once()
	fx.api.EXPECT().GetMe(ctx, "token-1").Return(&entity.AccountProfile{
		GUID:          fx.identity.String(),
		Username:      "guest",
		RawCreatedAt:  "2024-05-01T10:00:00Z",
		RawLastActive: "2024-05-02T11:30:00.1234567",
	}, nil).Once()

	err := fx.client.Bootstrap(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.SessionStateAuthenticated, fx.client.State())
	assert.True(t, fx.client.Authenticated())

	want := entity.AccountProfile{
		GUID:          fx.identity.String(),
		Username:      "guest",
		CreatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		LastActive:    time.Date(2024, 5, 2, 11, 30, 0, 123456700, time.UTC),
		RawCreatedAt:  "2024-05-01T10:00:00Z",
		RawLastActive: "2024-05-02T11:30:00.1234567",
	}
	profiles := fx.events.Profiles()
	require.Len(t, profiles, 1)
	if diff := cmp.Diff(want, profiles[0], cmpopts.EquateApproxTime(0)); diff != "" {
		t.Errorf("emitted profile mismatch (-want +got):\n%s", diff)
	}

	cached, ok := fx.client.Profile()
	assert.True(t, ok)
	assert.Equal(t, "guest", cached.Username)
}

func TestSessionClient_Bootstrap_LoginFailureSkipsFetch(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		loginErr error
	}{
		{"transport error", "", domainerrors.ErrTransportFailure.WithDetails("connection refused")},
		{"rejected", "", domainerrors.ErrAuthFailure.WithHTTPCode(http.StatusUnauthorized)},
		{"empty token", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionClient(t, nil)
			ctx := context.Background()

			fx.api.EXPECT().Login(ctx, fx.identity.String()).Return(tt.token, tt.loginErr).Once()

			err := fx.client.Bootstrap(ctx)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrAuthFailure))
			assert.Equal(t, entity.SessionStateFailed, fx.client.State())
			assert.False(t, fx.client.Authenticated())
			assert.Empty(t, fx.events.Profiles())
			fx.api.AssertNotCalled(t, "GetMe", mock.Anything, mock.Anything)
		})
	}
}

func TestSessionClient_Bootstrap_LoginTransportErrorStaysMatchable(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	ctx := context.Background()

	fx.api.EXPECT().Login(ctx, fx.identity.String()).Return("", domainerrors.ErrTransportFailure).Once()

	err := fx.client.Bootstrap(ctx)

	assert.True(t, errors.Is(err, domainerrors.ErrAuthFailure))
	assert.True(t, errors.Is(err, domainerrors.ErrTransportFailure))
}

func TestSessionClient_Bootstrap_IdentityFailureSkipsLogin(t *testing.T) {
	fx := createTestSessionClient(t, domainerrors.ErrStorageUnavailable)

	err := fx.client.Bootstrap(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
	assert.Equal(t, entity.SessionStateFailed, fx.client.State())
	fx.api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestSessionClient_Bootstrap_FetchFailureIsNotFatal(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	ctx := context.Background()

	fx.api.EXPECT().Login(ctx, fx.identity.String()).Return("token-1", nil).Once()
	fx.api.EXPECT().GetMe(ctx, "token-1").Return(nil, domainerrors.ErrServerError).Once()

	err := fx.client.Bootstrap(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.SessionStateAuthenticated, fx.client.State())
	assert.Empty(t, fx.events.Profiles())
	_, ok := fx.client.Profile()
	assert.False(t, ok)
}

func TestSessionClient_RequiresToken(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	ctx := context.Background()

	_, err := fx.client.FetchProfile(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	outcome, err := fx.client.UpdateUsername(ctx, "alice")
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	assert.Equal(t, entity.UsernameOutcomeNone, outcome)

	assert.Empty(t, fx.events.Outcomes())
	assert.Equal(t, entity.SessionStateIdle, fx.client.State())
}

func TestSessionClient_FailedLoginDropsEarlierToken(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	ctx := context.Background()
	fx.login(t)
	require.True(t, fx.client.Authenticated())

	fx.api.EXPECT().Login(ctx, fx.identity.String()).Return("", domainerrors.ErrTransportFailure).Once()
	require.Error(t, fx.client.Bootstrap(ctx))

	assert.Equal(t, entity.SessionStateFailed, fx.client.State())
	assert.False(t, fx.client.Authenticated())

	outcome, err := fx.client.UpdateUsername(ctx, "alice")
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	assert.Equal(t, entity.UsernameOutcomeNone, outcome)

	_, err = fx.client.FetchProfile(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	fx.api.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
	fx.api.AssertNotCalled(t, "GetMe", mock.Anything, mock.Anything)
	assert.Empty(t, fx.events.Outcomes())
}

func TestSessionClient_UpdateUsername_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		err      error
		want     entity.UsernameChangeOutcome
		username string
	}{
		{"ok", http.StatusOK, nil, entity.UsernameOutcomeSuccess, "alice"},
		{"conflict", http.StatusConflict, nil, entity.UsernameOutcomeTaken, "guest"},
		{"not found", http.StatusNotFound, nil, entity.UsernameOutcomeNotFound, "guest"},
		{"teapot", http.StatusTeapot, nil, entity.UsernameOutcomeUnexpectedStatus, "guest"},
		{"internal error", http.StatusInternalServerError, nil, entity.UsernameOutcomeServerError, "guest"},
		{"bad gateway", http.StatusBadGateway, nil, entity.UsernameOutcomeServerError, "guest"},
		{"transport error", 0, domainerrors.ErrTransportFailure, entity.UsernameOutcomeServerError, "guest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionClient(t, nil)
			ctx := context.Background()
			fx.login(t)
			fx.loadProfile(t, "guest")

			fx.api.EXPECT().UpdateUsername(ctx, "token-1", "alice").Return(tt.status, tt.err).Once()

			outcome, err := fx.client.UpdateUsername(ctx, "alice")

			require.NoError(t, err)
			assert.Equal(t, tt.want, outcome)
			assert.Equal(t, []entity.UsernameChangeOutcome{tt.want}, fx.events.Outcomes())
			assert.Equal(t, entity.SessionStateAuthenticated, fx.client.State())

			cached, ok := fx.client.Profile()
			require.True(t, ok)
			assert.Equal(t, tt.username, cached.Username)
		})
	}
}

func TestSessionClient_UpdateUsername_RejectsConcurrentUpdate(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	ctx := context.Background()
	fx.login(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.api.EXPECT().UpdateUsername(mock.Anything, "token-1", "first").
		RunAndReturn(func(context.Context, string, string) (int, error) {
			close(entered)
			<-release

			return http.StatusOK, nil
		}).
		Once()

	type result struct {
		outcome entity.UsernameChangeOutcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		outcome, err := fx.client.UpdateUsername(ctx, "first")
		done <- result{outcome, err}
	}()

	<-entered
	assert.Equal(t, entity.SessionStateUpdatingUsername, fx.client.State())

	outcome, err := fx.client.UpdateUsername(ctx, "second")
	assert.ErrorIs(t, err, domainerrors.ErrUpdateInProgress)
	assert.Equal(t, entity.UsernameOutcomeNone, outcome)

	close(release)
	first := <-done

	require.NoError(t, first.err)
	assert.Equal(t, entity.UsernameOutcomeSuccess, first.outcome)
	assert.Equal(t, []entity.UsernameChangeOutcome{entity.UsernameOutcomeSuccess}, fx.events.Outcomes())
}

func TestSessionClient_NotifyShutdown(t *testing.T) {
	t.Run("sends heartbeat with token", func(t *testing.T) {
		fx := createTestSessionClient(t, nil)
		fx.login(t)
		fx.api.EXPECT().UpdateLastActive(mock.Anything, "token-1").Return(nil).Once()

		fx.client.NotifyShutdown(context.Background())
	})

	t.Run("skipped without token", func(t *testing.T) {
		fx := createTestSessionClient(t, nil)

		fx.client.NotifyShutdown(context.Background())

		fx.api.AssertNotCalled(t, "UpdateLastActive", mock.Anything, mock.Anything)
	})

	t.Run("skipped after failed login", func(t *testing.T) {
		fx := createTestSessionClient(t, nil)
		fx.api.EXPECT().Login(mock.Anything, fx.identity.String()).Return("", domainerrors.ErrAuthFailure).Once()
		require.Error(t, fx.client.Bootstrap(context.Background()))

		fx.client.NotifyShutdown(context.Background())

		fx.api.AssertNotCalled(t, "UpdateLastActive", mock.Anything, mock.Anything)
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		fx := createTestSessionClient(t, nil)
		fx.login(t)
		fx.api.EXPECT().UpdateLastActive(mock.Anything, "token-1").Return(domainerrors.ErrTransportFailure).Once()

		assert.NotPanics(t, func() { fx.client.NotifyShutdown(context.Background()) })
	})

	t.Run("bounded by context", func(t *testing.T) {
		fx := createTestSessionClient(t, nil)
		fx.login(t)
		fx.api.EXPECT().UpdateLastActive(mock.Anything, "token-1").
			RunAndReturn(func(ctx context.Context, _ string) error {
				<-ctx.Done()

				return ctx.Err()
			}).
			Once()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		fx.client.NotifyShutdown(ctx)

		assert.Less(t, time.Since(start), 2*time.Second)
	})
}

func TestSessionClient_StartHandlesSubmissions(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	fx.login(t)
	fx.loadProfile(t, "guest")

	fx.api.EXPECT().UpdateUsername(mock.Anything, "token-1", "alice").Return(http.StatusOK, nil).Once()

	require.NoError(t, fx.client.Start())
	require.NoError(t, fx.client.Start())
	assert.Equal(t, 1, fx.bus.UsernameSubmitted.SubscriberCount())

	fx.bus.UsernameSubmitted.Emit(context.Background(), "alice")

	assert.Eventually(t, func() bool {
		return len(fx.events.Outcomes()) == 1
	}, time.Second, 10*time.Millisecond)

	fx.client.Stop()
	fx.client.Stop()

	assert.Equal(t, 0, fx.bus.UsernameSubmitted.Emit(context.Background(), "bob"))
	cached, _ := fx.client.Profile()
	assert.Equal(t, "alice", cached.Username)
}

func TestSessionClient_SubmissionAfterStopIsDropped(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	fx.login(t)
	require.NoError(t, fx.client.Start())
	fx.client.Stop()

	// A delivery from an emit that snapshotted its subscribers before Stop.
	client, ok := fx.client.(*sessionClient)
	require.True(t, ok)
	client.onUsernameSubmitted(context.Background(), "late")
	client.wg.Wait()

	fx.api.AssertNotCalled(t, "UpdateUsername", mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, fx.events.Outcomes())
}

func TestSessionClient_RestartAcceptsSubmissions(t *testing.T) {
	fx := createTestSessionClient(t, nil)
	fx.login(t)
	fx.api.EXPECT().UpdateUsername(mock.Anything, "token-1", "alice").Return(http.StatusOK, nil).Once()

	require.NoError(t, fx.client.Start())
	fx.client.Stop()
	require.NoError(t, fx.client.Start())
	t.Cleanup(fx.client.Stop)

	assert.Equal(t, 1, fx.bus.UsernameSubmitted.Emit(context.Background(), "alice"))
	assert.Eventually(t, func() bool {
		return len(fx.events.Outcomes()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestClassifyUsernameStatus(t *testing.T) {
	assert.Equal(t, entity.UsernameOutcomeServerError, classifyUsernameStatus(http.StatusOK, errors.New("reset")))
	assert.Equal(t, entity.UsernameOutcomeSuccess, classifyUsernameStatus(http.StatusOK, nil))
	assert.Equal(t, entity.UsernameOutcomeUnexpectedStatus, classifyUsernameStatus(http.StatusCreated, nil))
	assert.Equal(t, entity.UsernameOutcomeUnexpectedStatus, classifyUsernameStatus(http.StatusTeapot, nil))
	assert.Equal(t, entity.UsernameOutcomeServerError, classifyUsernameStatus(http.StatusInternalServerError, nil))
	assert.Equal(t, entity.UsernameOutcomeServerError, classifyUsernameStatus(http.StatusServiceUnavailable, nil))
}
