// Package event connects the session client and its observers through a fixed set of
// typed channels owned by a single Bus.
//
// Each channel carries exactly one payload type:
//
//	profileReceived    entity.AccountProfile
//	usernameSubmitted  string
//	usernameOutcome    entity.UsernameChangeOutcome
//
// Subscribing returns a *Subscription handle; removal always goes through the handle,
// and Unsubscribe is idempotent. Observers that hold several handles collect them in a
// Group and detach with a single Close.
//
// Delivery is synchronous in the emitter's goroutine. Every active subscription receives
// every emission exactly once; the order among subscriptions is registration order but
// callers must not rely on it. A panicking handler is recovered and logged and does not
// prevent delivery to the remaining subscriptions.
package event
