package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jcamargo/bascula-api/internal/application/dto"
)

// Extensiones de imagen aceptadas para fotos de pesaje.
var allowedPhotoExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

const maxPhotoSize = 10 << 20 // 10 MB

// UploadHandler recibe fotos de pesaje (multipart) y las guarda en disco local.
type UploadHandler struct {
	uploadDir string
	publicURL string
}

// NewUploadHandler construye el handler. uploadDir se crea si no existe.
func NewUploadHandler(uploadDir, publicURL string) *UploadHandler {
	_ = os.MkdirAll(uploadDir, 0o755)
	return &UploadHandler{uploadDir: uploadDir, publicURL: strings.TrimRight(publicURL, "/")}
}

// UploadPhoto godoc
// @Summary      Subir foto de pesaje
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Imagen (jpg, png, webp)"
// @Success      201  {object}  dto.UploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "campo 'file' requerido"})
	}
	if fileHeader.Size > maxPhotoSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "archivo demasiado grande (máx 10MB)"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedPhotoExts[ext]; !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_ERROR", Message: "formato no permitido (jpg, png, webp)"})
	}

	filename := uuid.New().String() + ext
	dest := filepath.Join(h.uploadDir, filename)
	if err := c.SaveFile(fileHeader, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo guardar el archivo"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		PhotoURL: fmt.Sprintf("%s/uploads/%s", h.publicURL, filename),
	})
}
