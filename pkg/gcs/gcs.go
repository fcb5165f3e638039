package gcs

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const signedURLExpiry = 15 * time.Minute

// Client wraps the object-storage operations the API exposes: signed upload
// URLs and bucket metadata.
type Client struct {
	client *storage.Client
	bucket string
}

func NewClient(ctx context.Context, credentialsFile, bucket string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	log.Println("[GCS] Client initialized successfully")
	return &Client{client: client, bucket: bucket}, nil
}

// SignedUploadURL returns a V4 signed PUT URL for the object and the public
// URL the object will be readable at once uploaded.
func (c *Client) SignedUploadURL(fileName, contentType string) (signedUploadURL, imageURL string, err error) {
	signedUploadURL, err = c.client.Bucket(c.bucket).SignedURL(fileName, &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     time.Now().Add(signedURLExpiry),
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("sign upload url for %q: %w", fileName, err)
	}

	imageURL = fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, fileName)
	return signedUploadURL, imageURL, nil
}

// BucketMetadata returns the bucket's attributes.
func (c *Client) BucketMetadata(ctx context.Context) (*storage.BucketAttrs, error) {
	attrs, err := c.client.Bucket(c.bucket).Attrs(ctx)
	if err != nil {
		return nil, fmt.Errorf("bucket metadata: %w", err)
	}
	return attrs, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
