package storage

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

const MaxUploadBytes = 10 * 1024 * 1024 // 10MB

// AllowedMIMETypes is the upload allow-list.
var AllowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Client wraps the Supabase Storage API for the media ingestion gateway:
// it accepts validated bytes and hands back a publicly fetchable URL.
type Client struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewClient(supabaseURL, serviceKey, bucket string) (*Client, error) {
	baseURL := supabaseURL
	if len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &Client{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadFile stores the bytes under a collision-free name and returns the
// public URL.
func (s *Client) UploadFile(filename, contentType string, data []byte) (string, error) {
	storagePath := fmt.Sprintf("uploads/%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.New().String()[:8],
		unsafeNameRe.ReplaceAllString(filename, "_"))

	upsert := true
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.PublicURL(storagePath), nil
}

func (s *Client) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

func (s *Client) DeleteFile(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
