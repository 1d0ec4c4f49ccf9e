// Package cli provides the interactive GoFinances command-line client.
//
// It wires configuration, the local store, the identity providers, the
// session manager and the ledger, then runs a REPL. Nothing is shown until
// the stored session has been restored.
//
// Signed out, the user can sign in with Google or Apple. Signed in, the
// user can register transactions, list them and see a summary.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
