package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSBucket struct {
	client *gcs.Client
	bucket string
}

func NewGCSBucket(ctx context.Context, bucket string, credentialsFile string) (*GCSBucket, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSBucket{client: c, bucket: bucket}, nil
}

func (b *GCSBucket) Close() error { return b.client.Close() }

func (b *GCSBucket) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	obj := b.client.Bucket(b.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	// make public so the frontend can render it directly
	if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.bucket, objectName), nil
}

func (b *GCSBucket) Remove(ctx context.Context, publicURL string) error {
	objectName, err := b.objectFromURL(publicURL)
	if err != nil {
		return err
	}
	return b.client.Bucket(b.bucket).Object(objectName).Delete(ctx)
}

func (b *GCSBucket) objectFromURL(publicURL string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", b.bucket)
	if !strings.HasPrefix(publicURL, prefix) {
		return "", fmt.Errorf("url %q is not in bucket %s", publicURL, b.bucket)
	}
	return strings.TrimPrefix(publicURL, prefix), nil
}
