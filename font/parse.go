package font

import "os"
import "io"
import "io/fs"
import "fmt"
import "strings"
import "compress/gzip"

// Parses the given font bytes with the given backend. Decoding
// failures are wrapped with [ErrDecode]. The bytes must not be
// modified while the face is in use.
//
// Font collections are not supported; only the first font
// would be accessible in the best case.
func ParseFromBytes(fontBytes []byte, backend Backend) (Face, error) {
	var face Face
	var err error
	switch backend {
	case BackendSfnt:
		face, err = newSfntFace(fontBytes)
	case BackendGoText:
		face, err = newGoTextFace(fontBytes)
	default:
		return nil, fmt.Errorf("%w: unknown backend %s", ErrDecode, backend)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return face, nil
}

// Reads the font file at the given path and parses it. Paths ending
// in ".gz" are transparently decompressed first. Errors opening or
// reading the file are returned as they are, while decoding errors
// are wrapped with [ErrDecode].
func ParseFromPath(path string, backend Backend) (Face, error) {
	file, err := os.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file, isGzipped(path), backend)
}

// Same as [ParseFromPath](), but for arbitrary filesystems
// (e.g. embedded fonts).
func ParseFromFS(filesys fs.FS, path string, backend Backend) (Face, error) {
	file, err := filesys.Open(path)
	if err != nil { return nil, err }
	return parseFontFileAndClose(file, isGzipped(path), backend)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser, gzipped bool, backend Backend) (Face, error) {
	fileCloser := onceCloser{ closer: file }
	defer fileCloser.Close()

	var reader io.Reader = file
	if gzipped {
		gzipReader, err := gzip.NewReader(file)
		if err != nil { return nil, err }
		gzipCloser := onceCloser{ closer: gzipReader }
		defer gzipCloser.Close()
		reader = gzipReader
	}

	fontBytes, err := io.ReadAll(reader)
	if err != nil { return nil, err }
	err = fileCloser.Close()
	if err != nil { return nil, err }
	return ParseFromBytes(fontBytes, backend)
}

func isGzipped(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}

// onceCloser makes it easier to both defer closes (to cover for early error
// returns) and check close errors manually when done with other operations,
// without having to suffer from "file already closed" and similar issues.
type onceCloser struct {
	closer io.Closer
	alreadyClosed bool
}

func (self *onceCloser) Close() error {
	if self.alreadyClosed { return nil }
	self.alreadyClosed = true
	return self.closer.Close()
}
