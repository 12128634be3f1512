package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"dormhub/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload folders per purpose.
const (
	folderPaymentProofs = "dormhub/payment-proofs"
	folderRoomPhotos    = "dormhub/rooms"
)

// StorageHandler exposes file upload endpoints backed by Cloudinary.
type StorageHandler struct {
	Svc    storage.StorageService
	Logger *zap.Logger
}

// NewStorageHandler constructs a StorageHandler.
func NewStorageHandler(svc storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Svc: svc, Logger: logger}
}

// upload receives a multipart file, stages it to a temp path, and pushes
// it to the destination folder.
func (h *StorageHandler) upload(c *gin.Context, destFolder string) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		h.Logger.Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stage upload"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Svc.UploadFile(c.Request.Context(), tmpPath, destFolder)
	if err != nil {
		h.Logger.Error("Failed to upload file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	url, err := h.Svc.GetDownloadURL(c.Request.Context(), "image", publicID, 24*time.Hour)
	if err != nil {
		h.Logger.Error("Failed to build download URL", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build download URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"public_id": publicID, "url": url})
}

// UploadPaymentProof receives a proof-of-payment image.
func (h *StorageHandler) UploadPaymentProof(c *gin.Context) {
	h.upload(c, folderPaymentProofs)
}

// UploadRoomPhoto receives a room photo (admin).
func (h *StorageHandler) UploadRoomPhoto(c *gin.Context) {
	h.upload(c, folderRoomPhotos)
}
