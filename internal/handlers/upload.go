package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"recipebook/internal/storage"
)

const maxImageSize = 10 << 20

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// UploadImage accepts a single recipe image, hands it to the storage
// collaborator and returns the stored file reference. The client attaches
// that reference to a subsequent addRecipe call; the two operations are
// independent and non-atomic.
func UploadImage(files storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		extension := strings.ToLower(filepath.Ext(file.Filename))
		if extension == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file extension is required"})
			return
		}
		if _, ok := allowedImageExts[extension]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported image type: %s", extension)})
			return
		}
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file too large (max 10MB)"})
			return
		}

		src, err := file.Open()
		if err != nil {
			log.Println("[UPLOAD] [ERROR] open upload failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
			return
		}
		defer src.Close()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		url, err := files.Save(ctx, extension, src)
		if err != nil {
			log.Println("[UPLOAD] [ERROR] store image failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store image"})
			return
		}

		log.Println("[UPLOAD] [INFO] image stored:", url)
		c.JSON(http.StatusOK, gin.H{"file": url})
	}
}
