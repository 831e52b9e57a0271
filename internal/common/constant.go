// Package common contains shared constants, sentinel errors and tiny helpers
// used across moodkeeper components.
package common

// Keys of the local key/value store. They mirror the keys the web client
// keeps in browser local storage.
const (
	StorageKeyToken           = "token"
	StorageKeyTheme           = "theme"
	StorageKeySavedResources  = "savedResources"
	StorageKeyChatHistoryBase = "chatHistory_"
)

// ChatHistoryKey returns the per-user chat history key.
func ChatHistoryKey(userID string) string {
	return StorageKeyChatHistoryBase + userID
}

const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)
