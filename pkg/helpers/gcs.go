package helpers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSStore writes uploaded blobs to a single bucket.
type GCSStore struct {
	client    *storage.Client
	bucket    string
	publicACL bool
}

func NewGCSStore(client *storage.Client, bucket string, publicACL bool) *GCSStore {
	return &GCSStore{client: client, bucket: bucket, publicACL: publicACL}
}

// Upload stores data at objectPath and returns its public URL. When publicACL is set the
// object is made world readable after the write completes.
func (s *GCSStore) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if s == nil || s.client == nil || s.bucket == "" {
		return "", errors.New("gcs not configured")
	}
	obj := s.client.Bucket(s.bucket).Object(objectPath)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // disable chunking for small files
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	if s.publicACL {
		if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
			_ = obj.Delete(ctx)
			return "", fmt.Errorf("make public: %w", err)
		}
	}
	return PublicURL(s.bucket, objectPath), nil
}

// Delete removes an object; a missing object is not an error.
func (s *GCSStore) Delete(ctx context.Context, objectPath string) error {
	if s == nil || s.client == nil || s.bucket == "" {
		return errors.New("gcs not configured")
	}
	err := s.client.Bucket(s.bucket).Object(objectPath).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

// DeleteURL removes the object a PublicURL of this bucket points at. URLs outside
// the bucket are left alone.
func (s *GCSStore) DeleteURL(ctx context.Context, rawURL string) error {
	if s == nil || s.client == nil || s.bucket == "" {
		return errors.New("gcs not configured")
	}
	objectPath, ok := ObjectPathFromURL(s.bucket, rawURL)
	if !ok {
		return nil
	}
	return s.Delete(ctx, objectPath)
}

// PublicURL builds a public URL for an object (assuming public read access or signed URLs).
// Each path segment is escaped so names with spaces, '#' or '?' still resolve.
func PublicURL(bucket, objectPath string) string {
	segs := strings.Split(objectPath, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", url.PathEscape(bucket), strings.Join(segs, "/"))
}

// ObjectPathFromURL reverses PublicURL for objects in bucket; ok is false for
// any other URL.
func ObjectPathFromURL(bucket, rawURL string) (string, bool) {
	prefix := "https://storage.googleapis.com/" + url.PathEscape(bucket) + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	p, err := url.PathUnescape(strings.TrimPrefix(rawURL, prefix))
	if err != nil || p == "" {
		return "", false
	}
	return p, true
}
