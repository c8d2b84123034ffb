package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/rotisserie/eris"
	"google.golang.org/api/option"
)

// ObjectStore abstracts the cloud bucket holding uploaded images and PDFs.
type ObjectStore interface {
	// UploadObject stores the content under path and returns its public
	// download URL.
	UploadObject(ctx context.Context, path, contentType string, r io.Reader) (string, error)
	// DeleteObject removes the object at the bucket-internal path.
	DeleteObject(ctx context.Context, path string) error
}

// Bucket implements ObjectStore over a Google Cloud Storage bucket, the
// backing store of Firebase Storage.
type Bucket struct {
	bucket *gcs.BucketHandle
	name   string
}

var _ ObjectStore = (*Bucket)(nil)

// NewBucket connects to the named bucket. credentialsFile may be empty, in
// which case application default credentials are used.
func NewBucket(ctx context.Context, bucketName, credentialsFile string) (*Bucket, error) {
	name := strings.TrimSpace(bucketName)
	if name == "" {
		return nil, eris.New("storage bucket name is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, eris.Wrap(err, "creating storage client")
	}

	return &Bucket{bucket: client.Bucket(name), name: name}, nil
}

// UploadObject writes the content and returns the firebase-style public URL,
// which ObjectPathFromURL can later reverse back into the object path.
func (b *Bucket) UploadObject(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	writer := b.bucket.Object(path).NewWriter(ctx)
	if contentType != "" {
		writer.ContentType = contentType
	}

	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()
		return "", eris.Wrapf(err, "writing object %s", path)
	}
	if err := writer.Close(); err != nil {
		return "", eris.Wrapf(err, "finalizing object %s", path)
	}

	return b.downloadURL(path), nil
}

// DeleteObject removes the object. Deleting a missing object surfaces the
// store's error unchanged; callers decide whether that aborts anything.
func (b *Bucket) DeleteObject(ctx context.Context, path string) error {
	if err := b.bucket.Object(path).Delete(ctx); err != nil {
		return eris.Wrapf(err, "deleting object %s", path)
	}
	return nil
}

func (b *Bucket) downloadURL(path string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		b.name, url.QueryEscape(path))
}
