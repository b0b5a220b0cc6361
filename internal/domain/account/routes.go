package account

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the page-level routes. /sign-up, /sign-in and /
// are on the public allow-list; /home is private and the gate redirects
// anonymous callers to /sign-in before the handler runs.
func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.Index)
	r.POST("/sign-up", h.SignUp)
	r.POST("/sign-in", h.SignIn)
	r.GET("/home", h.Home)
}
