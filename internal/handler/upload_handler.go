package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadAsset stores an uploaded image or PDF in the object store and
// returns the public download URL the CRUD tables reference.
func (a *API) UploadAsset(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No file provided")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
		respondError(c, http.StatusBadRequest, "Only image or PDF uploads are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		a.logError(err, "failed to open uploaded file", nil)
		respondError(c, http.StatusInternalServerError, "Server Error")
		return
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	objectPath := fmt.Sprintf("uploads/%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	url, err := a.objects.UploadObject(c.Request.Context(), objectPath, contentType, src)
	if err != nil {
		a.logError(err, "failed to store uploaded file", logrus.Fields{"path": objectPath})
		respondError(c, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
