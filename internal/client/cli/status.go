package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt prefix, e.g. "(user 42 online)".
func (a *App) getStatus() string {
	var parts []string
	if s := a.session.Session(context.Background()); s.Authenticated() {
		parts = append(parts, "user "+s.UserID)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}
