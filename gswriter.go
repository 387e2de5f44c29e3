package autofill

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// MaybeCreateWriterToGoogleStorage creates (or truncates) the file at path. If
// path is a gs:// URL and a client was provided, the object is uploaded when
// the returned writer is closed, so Close errors must be checked.
func MaybeCreateWriterToGoogleStorage(path string, client *storage.Client) (io.WriteCloser, error) {
	if client != nil && IsGoogleStoragePath(path) {
		bucketName, pathName, err := SplitGoogleStoragePath(path)
		if err != nil {
			return nil, err
		}

		w := client.Bucket(bucketName).Object(pathName).NewWriter(context.Background())
		w.ContentType = "text/plain"

		return w, nil
	}

	f, err := os.OpenFile(ExpandHome(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// SiblingPath returns the path of a file called name in the same directory as
// the file at path. gs:// URLs keep their scheme and bucket.
func SiblingPath(of, name string) string {
	if IsGoogleStoragePath(of) {
		return "gs://" + path.Join(path.Dir(of[len("gs://"):]), name)
	}

	return filepath.Join(filepath.Dir(ExpandHome(of)), name)
}
