package assets

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"time"

	"asset-loader/core/loader"
	"asset-loader/core/storage"

	"github.com/minio/minio-go/v7"
)

// NewResolver returns a loader.Resolver that fetches object bodies from the
// given bucket. The minio client connects lazily, so fetch errors (including
// missing objects) surface while reading the body, which is exactly where the
// loader's retry loop wants them.
func NewResolver(client storage.Client, bucket string) loader.Resolver {
	return func(ctx context.Context, id string) (any, error) {
		obj, err := client.GetObject(ctx, bucket, id, minio.GetObjectOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch object %s: %w", id, err)
		}
		defer obj.Close()

		data, err := io.ReadAll(obj)
		if err != nil {
			return nil, fmt.Errorf("failed to read object %s: %w", id, err)
		}

		contentType := mime.TypeByExtension(path.Ext(id))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		return &Asset{
			Key:         id,
			ContentType: contentType,
			Size:        int64(len(data)),
			LoadedAt:    time.Now(),
			Data:        data,
		}, nil
	}
}
