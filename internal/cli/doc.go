// Package cli provides the interactive vault command-line client.
//
// It wires configuration, local storage and the application services into an
// interactive REPL. Typical flow: register or log in with the master
// passphrase, then manage credentials until logout or exit.
//
// Key features:
//   - Register / Login / Logout (the vault key lives only in the session)
//   - Add, edit and delete credentials
//   - List / Search entries without decrypting anything
//   - Show a single credential with its secrets revealed
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
