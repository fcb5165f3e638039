package delivery

import (
	"log"
	"net/http"

	"howler-relay/pkg/gcs"

	"github.com/gin-gonic/gin"
)

type StorageHandler struct {
	gcsClient *gcs.Client
}

func NewStorageHandler(gcsClient *gcs.Client) *StorageHandler {
	return &StorageHandler{gcsClient: gcsClient}
}

// SignedURL hands the client a short-lived upload URL for one object.
func (h *StorageHandler) SignedURL(c *gin.Context) {
	var req struct {
		FileName    string `json:"fileName" binding:"required"`
		ContentType string `json:"contentType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	signedUploadURL, imageURL, err := h.gcsClient.SignedUploadURL(req.FileName, req.ContentType)
	if err != nil {
		log.Printf("[GCS] signed url failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"signedUploadUrl": signedUploadURL,
		"imageUrl":        imageURL,
	})
}

func (h *StorageHandler) BucketMetadata(c *gin.Context) {
	attrs, err := h.gcsClient.BucketMetadata(c.Request.Context())
	if err != nil {
		log.Printf("[GCS] bucket metadata failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	c.JSON(http.StatusOK, attrs)
}
