// Package terminal is the interactive front end: it renders the account profile and turns
// typed lines into username submissions.
package terminal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"cabinet/internal/domain/entity"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"
	"cabinet/internal/event"
	"cabinet/internal/usecase"

	"golang.org/x/term"
)

// Controller refusals that are not username rule violations.
const (
	MsgProfileNotLoaded = "Profile is not loaded yet."
	MsgChangePending    = "Username change already in progress."
)

// ProfileController observes profile and outcome events and validates submissions
// before publishing them.
type ProfileController struct {
	bus       *event.Bus
	validator *usecase.UsernameValidator
	identity  usecase.IdentityUsecase
	qr        service.QRCodeService
	logger    *slog.Logger

	outMu sync.Mutex
	out   io.Writer

	mu         sync.Mutex
	profile    entity.AccountProfile
	loaded     bool
	pending    string
	hasPending bool
	status     usecase.StatusMessage

	subs    event.Group
	enabled bool
}

// NewProfileController creates a detached controller; call Enable to start observing.
func NewProfileController(
	bus *event.Bus,
	validator *usecase.UsernameValidator,
	identity usecase.IdentityUsecase,
	qr service.QRCodeService,
	out io.Writer,
	logger *slog.Logger,
) *ProfileController {
	return &ProfileController{
		bus:       bus,
		validator: validator,
		identity:  identity,
		qr:        qr,
		out:       out,
		logger:    logger.With(slog.String("component", "profile_ui")),
	}
}

// Enable subscribes to profile and outcome events. Calling it twice is a no-op.
func (pc *ProfileController) Enable() error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.enabled {
		return nil
	}

	profileSub, err := pc.bus.ProfileReceived.Subscribe(pc.onProfileReceived)
	if err != nil {
		return errors.Wrap(err, "subscribe to profiles")
	}
	outcomeSub, err := pc.bus.UsernameOutcome.Subscribe(pc.onUsernameOutcome)
	if err != nil {
		profileSub.Unsubscribe()

		return errors.Wrap(err, "subscribe to username outcomes")
	}

	pc.subs.Add(profileSub, outcomeSub)
	pc.enabled = true

	return nil
}

// Disable drops every subscription. Safe to call repeatedly.
func (pc *ProfileController) Disable() {
	pc.mu.Lock()
	pc.enabled = false
	pc.mu.Unlock()

	pc.subs.Close()
}

// Submit validates candidate against the displayed username and publishes it when it
// passes. It reports whether the candidate was published.
func (pc *ProfileController) Submit(ctx context.Context, candidate string) bool {
	pc.mu.Lock()
	var refusal *usecase.StatusMessage
	switch {
	case !pc.loaded:
		refusal = &usecase.StatusMessage{Text: MsgProfileNotLoaded, Severity: usecase.SeverityNeutral}
	case pc.hasPending:
		refusal = &usecase.StatusMessage{Text: MsgChangePending, Severity: usecase.SeverityNeutral}
	default:
		refusal = pc.validator.Validate(candidate, pc.profile.Username)
	}

	if refusal != nil {
		pc.status = *refusal
		pc.mu.Unlock()
		pc.renderStatus(*refusal)

		return false
	}

	pc.status = usecase.StatusMessage{}
	pc.pending = candidate
	pc.hasPending = true
	pc.mu.Unlock()

	if delivered := pc.bus.UsernameSubmitted.Emit(ctx, candidate); delivered == 0 {
		pc.logger.Warn("Nobody handles username submissions", slog.String("username", candidate))

		pc.mu.Lock()
		pc.hasPending = false
		pc.pending = ""
		pc.mu.Unlock()

		return false
	}

	return true
}

// Status returns the current status line.
func (pc *ProfileController) Status() usecase.StatusMessage {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return pc.status
}

// DisplayedProfile returns the profile as currently shown.
func (pc *ProfileController) DisplayedProfile() (entity.AccountProfile, bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return pc.profile, pc.loaded
}

// Pending reports whether a submission awaits its outcome.
func (pc *ProfileController) Pending() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	return pc.hasPending
}

func (pc *ProfileController) onProfileReceived(_ context.Context, profile entity.AccountProfile) {
	pc.mu.Lock()
	pc.profile = profile
	pc.loaded = true
	pc.mu.Unlock()

	pc.renderProfile(profile)
}

func (pc *ProfileController) onUsernameOutcome(_ context.Context, outcome entity.UsernameChangeOutcome) {
	msg := usecase.OutcomeMessage(outcome)

	pc.mu.Lock()
	if outcome == entity.UsernameOutcomeSuccess && pc.hasPending {
		pc.profile = pc.profile.WithUsername(pc.pending)
	}
	pc.pending = ""
	pc.hasPending = false
	pc.status = msg
	profile := pc.profile
	pc.mu.Unlock()

	pc.renderStatus(msg)
	if outcome == entity.UsernameOutcomeSuccess {
		pc.renderProfile(profile)
	}
}

func (pc *ProfileController) renderProfile(profile entity.AccountProfile) {
	pc.printf("GUID:     %s\nUsername: %s\n", profile.GUID, profile.Username)
}

func (pc *ProfileController) renderStatus(msg usecase.StatusMessage) {
	if msg.Text == "" {
		return
	}
	pc.printf("[%s] %s\n", msg.Severity, msg.Text)
}

func (pc *ProfileController) printf(format string, args ...any) {
	pc.outMu.Lock()
	defer pc.outMu.Unlock()

	if _, err := fmt.Fprintf(pc.out, format, args...); err != nil {
		pc.logger.Debug("Write to terminal failed", slog.Any("error", err))
	}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
