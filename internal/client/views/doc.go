// Package views implements the screens of the client: dashboard, journal,
// insights, resources, settings and chat.
//
// A view is mounted when its command runs and unmounted when another view
// replaces it. While mounted it owns one resource.Resource per widget, so
// "retry" re-issues exactly the requests of the current screen. Every
// protected view first checks the token store; without a token whose user
// id can be decoded it returns common.ErrLoginRequired before any request
// is made. An HTTP 401 clears the token and yields the same error.
package views
