package image

import (
	"io"
	"net/http"

	"vidvault/internal/media"
	"vidvault/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler uploads still images to the media host. Unlike videos no record
// is persisted; the caller only gets the asset reference back.
type Handler struct {
	uploader media.Uploader
	folder   string
}

// NewHandler takes a nil uploader when the media-host credentials are
// missing; uploads then fail with a configuration error.
func NewHandler(uploader media.Uploader, folder string) *Handler {
	return &Handler{uploader: uploader, folder: folder}
}

func (h *Handler) Upload(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	if h.uploader == nil {
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

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FILE_READ_FAILED", "failed to read uploaded file")
		return
	}

	result, err := h.uploader.Upload(c.Request.Context(), data, fileHeader.Filename, h.folder)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPLOAD_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"public_id": result.PublicID})
}
