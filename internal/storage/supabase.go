package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hellorory/careers-api/internal/intake"
	storage_go "github.com/supabase-community/storage-go"
)

// Buckets maps a submission kind to the Supabase Storage bucket its
// attachments land in.
var Buckets = map[string]string{
	intake.Posting.Name:     "job-image",
	intake.Application.Name: "cvs",
}

// SupabaseStore implements intake.AttachmentStore on Supabase Storage.
type SupabaseStore struct {
	client *storage_go.Client
}

func NewSupabaseStore(projectURL, serviceKey string) *SupabaseStore {
	return &SupabaseStore{
		client: storage_go.NewClient(projectURL+"/storage/v1", serviceKey, nil),
	}
}

// Store uploads the attachment under a timestamped key and returns the
// public URL. Uploads are low-frequency, so the millisecond prefix is
// unique enough; a real collision surfaces as the store's own error.
func (s *SupabaseStore) Store(ctx context.Context, kind *intake.Kind, att *intake.Attachment) (string, error) {
	bucket, ok := Buckets[kind.Name]
	if !ok {
		return "", fmt.Errorf("no bucket configured for kind %q", kind.Name)
	}

	key := ObjectKey(att.Filename)
	contentType := att.ContentType
	_, err := s.client.UploadFile(bucket, key, bytes.NewReader(att.Data), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}

	return s.client.GetPublicUrl(bucket, key).SignedURL, nil
}

// ObjectKey derives the storage key for an uploaded file.
func ObjectKey(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
}
