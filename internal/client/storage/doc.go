// Package storage is the client's persistent key/value store, the terminal
// counterpart of browser local storage. Values are opaque byte slices kept in
// a single SQLite table created by embedded goose migrations.
//
// Keys in use (see package common): the bearer token, the theme name, saved
// resource ids and per-user chat history.
package storage
