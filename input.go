package autofill

import (
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"golang.org/x/net/html/charset"
)

// DecodeCharset wraps r so that it yields UTF-8. An empty label or any
// spelling of UTF-8 leaves r untouched.
func DecodeCharset(r io.Reader, label string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return r, nil
	}

	// Layouts saved from Excel on Windows are frequently windows-1252 or UTF-16.
	return charset.NewReaderLabel(label, r)
}

// ReadInput loads the whole file at path, which may be local, ~-prefixed, or
// a gs:// URL, and may be compressed. The bytes are decoded from encoding
// into UTF-8.
func ReadInput(path string, client *storage.Client, encoding string) ([]byte, error) {
	f, err := MaybeOpenSeekerFromGoogleStorage(path, client)
	if err != nil {
		// Unwrapped, so callers can still test for fs.ErrNotExist
		return nil, err
	}
	defer f.Close()

	r, err := MaybeDecompressReadCloser(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	decoded, err := DecodeCharset(r, encoding)
	if err != nil {
		return nil, pfx.Err(err)
	}

	out, err := io.ReadAll(decoded)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
