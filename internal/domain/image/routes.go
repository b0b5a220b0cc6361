package image

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the image upload endpoint under /api. The path is
// on the public-API allow-list, so the gate lets anonymous requests through
// and the handler itself rejects them.
func RegisterRoutes(api *gin.RouterGroup, h *Handler) {
	api.POST("/image-upload", h.Upload)
}
