// Package cli provides the interactive bookmarket command-line client.
//
// It wires configuration, the local credential store, the API client and
// the session manager into an interactive REPL. On start the session is
// restored from disk; commands are then gated by the session state and
// the user's role, so a buyer never sees seller or admin verbs succeed
// locally only to be rejected by the server.
//
// Key features:
//   - Login / Logout / Register with persisted tokens
//   - Catalog browsing, favorites, purchases and invoices
//   - Seller inventory management
//   - Admin moderation: users, approvals, categories, tickets, reports
//
// The REPL is started via App.Root(ctx), which blocks until the user
// exits. See App, commands and runREPL for details.
package cli
