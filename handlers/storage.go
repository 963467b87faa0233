package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"fixify/services/storage"
	"fixify/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles image uploads for profile photos and approval
// evidence.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// allowedFolders defines the permitted upload destinations.
var allowedFolders = map[string]bool{
	"profiles":  true,
	"approvals": true,
	"services":  true,
}

// Upload stores a multipart file in Cloudinary and returns its URL.
func (h *StorageHandler) Upload(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "Invalid upload folder", folder)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "fixify/"+folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, "image", publicID, 0)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to construct download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId":    publicID,
		"downloadURL": downloadURL,
	})
}

// Delete removes an uploaded file.
func (h *StorageHandler) Delete(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "publicId query parameter is required", "")
		return
	}

	if err := h.StorageSvc.DeleteFile(c, publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete file", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
