package video

import (
	"errors"
	"io"
	"net/http"

	"vidvault/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the upload flow over HTTP. The route gate already
// redirects anonymous callers, but the handler re-checks identity itself so
// a misrouted request can never write anything.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload accepts a multipart form (file, title, description, originalSize),
// forwards the file to the media host and returns the stored record.
func (h *Handler) Upload(c *gin.Context) {
	userID := mustUserID(c)
	if userID == 0 {
		return
	}

	if !h.service.Ready() {
		response.Error(c, http.StatusInternalServerError, "MEDIA_CONFIG_MISSING", "media host credentials not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "no file found")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "no file found")
		return
	}
	defer file.Close()

	// The whole payload is buffered before transmission; the host receives
	// one complete body, never a partial stream.
	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FILE_READ_FAILED", "failed to read uploaded file")
		return
	}

	v, err := h.service.Upload(c.Request.Context(), UploadInput{
		Data:         data,
		Filename:     fileHeader.Filename,
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		OriginalSize: c.PostForm("originalSize"),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusInternalServerError, "MEDIA_CONFIG_MISSING", err.Error())
		case errors.Is(err, ErrNoFile):
			response.Error(c, http.StatusBadRequest, "NO_FILE", err.Error())
		case errors.Is(err, ErrUploadFailed):
			response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "PERSISTENCE_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, v)
}

// List returns all stored records, newest first. Public per the route table.
func (h *Handler) List(c *gin.Context) {
	videos, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "failed to list videos")
		return
	}
	response.Success(c, http.StatusOK, videos)
}

func mustUserID(c *gin.Context) int64 {
	id, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return 0
	}
	if v, ok := id.(int64); ok {
		return v
	}
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid user id")
	return 0
}
