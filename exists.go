package samplesheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// exists reports whether path resolves to an existing file, consulting Google
// Storage for gs:// paths and the local filesystem (following symlinks)
// otherwise.
func (b *RecordBuilder) exists(path string) (bool, error) {
	if strings.HasPrefix(path, "gs://") {
		return statFromGoogleStorage(path, b.StorageClient)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, pfx.Err(err)
	}

	return true, nil
}

func statFromGoogleStorage(path string, client *storage.Client) (bool, error) {
	if client == nil {
		return false, fmt.Errorf("%s: no Google Storage client was configured", path)
	}

	// Detect the bucket and the path to the actual file
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 {
		return false, fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}
	bucketName := pathParts[0]
	pathName := pathParts[1]

	_, err := client.Bucket(bucketName).Object(pathName).Attrs(context.Background())
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	} else if err != nil {
		return false, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return true, nil
}
