package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/middleware"
	"github.com/azpsen/tailfin-api/internal/service"
)

// maxImageSize bounds uploads at 16 MiB, matching the store's document
// chunking comfort zone.
const maxImageSize = 16 << 20

// ImageHandler handles flight photo HTTP requests.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new ImageHandler instance.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload godoc
// @Summary Upload image
// @Description Upload a flight photo, tagged with the uploading user
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file to upload"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /images/upload [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing image file")
		return
	}
	if fileHeader.Size > maxImageSize {
		respondError(c, http.StatusBadRequest, "image too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to read image")
		return
	}

	id, err := h.imageService.Upload(c.Request.Context(), middleware.CurrentUser(c), fileHeader.Filename, data)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"filename": fileHeader.Filename,
		"file_id":  id.Hex(),
	})
}

// Get godoc
// @Summary Retrieve image
// @Description Retrieve an uploaded flight photo
// @Tags images
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /images/{id} [get]
func (h *ImageHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	file, err := h.imageService.Get(c.Request.Context(), middleware.CurrentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(file.Data), file.Data)
}

// Delete godoc
// @Summary Delete image
// @Description Delete an uploaded flight photo
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /images/{id} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid image id")
		return
	}

	if err := h.imageService.Delete(c.Request.Context(), middleware.CurrentUser(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "image deleted"})
}
