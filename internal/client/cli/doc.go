// Package cli provides the interactive creditapp terminal client.
//
// It wires configuration, the local state database, the backend API client,
// and a screen loop gated by the persisted auth state. On every iteration the
// loop shows whichever screen the auth gate dictates: the login prompt, PIN
// setup, PIN entry, or the unlocked command screen. A restarted binary lands
// on exactly the screen the previous run left behind.
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
