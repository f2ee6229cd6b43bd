// Package backend holds the key-value stores the collections are persisted in.
package backend

import (
	"context"
	"strings"

	"agenda/internal/domain/repository"
	"agenda/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const blobKeySuffix = ".json"

// blobStore keeps each key as one object in a gocloud bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the bucket at bucketURL (file://, mem://, gs://, s3://).
func NewBlobStore(ctx context.Context, bucketURL string) (repository.KeyValueStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

func (s *blobStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to read %s", key)
	}

	return string(data), true, nil
}

func (s *blobStore) Set(ctx context.Context, key, value string) error {
	err := s.bucket.WriteAll(ctx, objectKey(key), []byte(value), &blob.WriterOptions{
		ContentType: "application/json",
	})

	return errors.Wrapf(err, "failed to write %s", key)
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, objectKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

func objectKey(key string) string {
	return strings.TrimSpace(key) + blobKeySuffix
}
