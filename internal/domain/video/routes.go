package video

import "github.com/gin-gonic/gin"

// RegisterRoutes attaches the video endpoints under /api. The route gate
// decides access; /api/videos is on the public allow-list, /api/video-upload
// is not.
func RegisterRoutes(api *gin.RouterGroup, h *Handler) {
	api.POST("/video-upload", h.Upload)
	api.GET("/videos", h.List)
}
