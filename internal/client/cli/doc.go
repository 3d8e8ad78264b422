// Package cli is the terminal front-end of the SafeSnap client: a small
// REPL over the auth, upload and incident services. It is deliberately thin;
// all lifecycle rules (session persistence, guarded navigation, the per-file
// upload protocol) live in the packages it calls.
package cli
