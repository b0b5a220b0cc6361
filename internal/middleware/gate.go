package middleware

import (
	"net/http"
	"path"
	"strings"

	"vidvault/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session token for browser page flows; API
// clients send the same token as a Bearer header.
const SessionCookie = "vv_session"

const (
	landingPath = "/home"
	signInPath  = "/sign-in"
)

// routePattern is one allow-list entry. Exact match unless Prefix is set.
type routePattern struct {
	Pattern string
	Prefix  bool
}

// publicPages are reachable without a session. The bare "home" entry is
// kept from the legacy matcher; normalized request paths always start with
// a slash, so it never matches and /home stays private.
var publicPages = []routePattern{
	{Pattern: "/sign-in"},
	{Pattern: "/sign-up"},
	{Pattern: "/"},
	{Pattern: "home"},
}

var publicAPIs = []routePattern{
	{Pattern: "/api/videos"},
	{Pattern: "/api/image-upload"},
}

func matchRoute(table []routePattern, p string) bool {
	for _, r := range table {
		if r.Prefix {
			if strings.HasPrefix(p, r.Pattern) {
				return true
			}
			continue
		}
		if p == r.Pattern {
			return true
		}
	}
	return false
}

// Gate is the per-request router: it resolves the caller's identity, looks
// the path up in the allow-lists and either redirects or passes through.
//
//   - logged in on a public page (other than the landing page): redirect to
//     the landing page
//   - anonymous on a private page: redirect to sign-in
//   - anonymous on a private API route: redirect to sign-in
//   - everything else passes unchanged
//
// Identity resolution fails closed: any token problem means anonymous.
func Gate(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path

		// Static assets bypass the gate entirely.
		if !strings.HasPrefix(p, "/api") && path.Ext(p) != "" {
			c.Next()
			return
		}

		userID, authenticated := resolveIdentity(c, tokens)
		if authenticated {
			c.Set("user_id", userID)
		}

		isAPI := strings.HasPrefix(p, "/api")

		switch {
		case authenticated && matchRoute(publicPages, p) && p != landingPath:
			c.Redirect(http.StatusFound, landingPath)
			c.Abort()
		case !authenticated && !isAPI && !matchRoute(publicPages, p):
			c.Redirect(http.StatusFound, signInPath)
			c.Abort()
		case !authenticated && isAPI && !matchRoute(publicAPIs, p):
			c.Redirect(http.StatusFound, signInPath)
			c.Abort()
		default:
			c.Next()
		}
	}
}

// resolveIdentity reads the session token from the Authorization header or
// the session cookie and validates it. Returns (0, false) for anything that
// is not a well-formed, correctly signed, unexpired token.
func resolveIdentity(c *gin.Context, tokens *jwt.Service) (int64, bool) {
	tokenStr := ""

	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		tokenStr = strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if tokenStr == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenStr = cookie
		}
	}
	if tokenStr == "" {
		return 0, false
	}

	claims, err := tokens.ValidateToken(tokenStr)
	if err != nil {
		return 0, false
	}
	return claims.UserID, true
}
