package session

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// userIDClaims are checked in order; the first non-empty one wins.
var userIDClaims = [...]string{"sub", "user_id", "id"}

var parser = jwt.NewParser(jwt.WithJSONNumber(), jwt.WithPaddingAllowed())

// DecodeUserID extracts the user identifier from a bearer token's payload.
//
// The signature is NOT verified: the backend is the only authority on token
// validity, and the client uses the id solely to pick per-user local keys.
// Never treat the result as proof of identity.
//
// Tokens that do not have exactly three segments, or whose payload is not a
// base64url JSON object, yield ("", false).
func DecodeUserID(token string) (string, bool) {
	if strings.Count(token, ".") != 2 {
		return "", false
	}

	claims := jwt.MapClaims{}
	// An unknown or missing "alg" only makes the token unverifiable; the
	// claims are decoded by then, which is all we need.
	if _, _, err := parser.ParseUnverified(token, claims); err != nil && !errors.Is(err, jwt.ErrTokenUnverifiable) {
		return "", false
	}

	for _, name := range userIDClaims {
		if id, ok := claimString(claims[name]); ok {
			return id, true
		}
	}
	return "", false
}

func claimString(v any) (string, bool) {
	switch value := v.(type) {
	case string:
		return value, value != ""
	case json.Number:
		return value.String(), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	default:
		return "", false
	}
}
