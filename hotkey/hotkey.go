// Package hotkey turns global key grabs into press/release channels for the
// push-to-talk key and a distinguished cancel key.
package hotkey

// Source emits press/release notifications for the configured target key and
// a cancel signal for the escape key.
type Source interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
	Cancel() <-chan struct{}
}
