// Package cli provides the interactive moodkeeper command-line client.
//
// It wires configuration, the local key/value store, the session and theme
// state, the backend client and the views into a read–eval–print loop.
// Typical flow: log in (or register), land on the dashboard, then move
// between journal, insights, resources, settings and chat with commands.
//
// Key features:
//   - Login / Register / Logout; any command that finds no valid session,
//     or gets HTTP 401 from the backend, falls back to the login prompt
//   - Dashboard with mood sparkline, insights and today's prompt
//   - Journal: list, show, write, delete (with typed confirmation)
//   - Resources with local bookmarks, and "retry" for the current screen
//   - Settings: profile, password, account deletion, light/dark theme
//   - A background watcher that shows whether the backend is reachable
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
