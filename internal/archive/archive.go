// Package archive resolves the record log inside a health export archive.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNoRecordLog is returned when an archive holds no export.xml entry.
var ErrNoRecordLog = errors.New("archive does not contain a record log")

const recordLogName = "export.xml"

// Export provides repeated read access to the record log of one archive.
// A bare .xml path is accepted directly for local use.
type Export struct {
	path  string
	zr    *zip.ReadCloser
	entry *zip.File
}

// Open opens a zip export archive, or a bare .xml record log, and locates
// the record log entry.
func Open(archivePath string) (*Export, error) {
	if strings.EqualFold(filepath.Ext(archivePath), ".xml") {
		if _, err := os.Stat(archivePath); err != nil {
			return nil, fmt.Errorf("open record log: %w", err)
		}
		return &Export{path: archivePath}, nil
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	entry := findRecordLog(zr)
	if entry == nil {
		zr.Close()
		return nil, ErrNoRecordLog
	}

	return &Export{path: archivePath, zr: zr, entry: entry}, nil
}

// findRecordLog prefers the canonical export.xml entry at any depth, then
// falls back to any other xml entry except the clinical-document export.
func findRecordLog(zr *zip.ReadCloser) *zip.File {
	var fallback *zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "__MACOSX/") || f.FileInfo().IsDir() {
			continue
		}
		base := path.Base(f.Name)
		if base == recordLogName {
			return f
		}
		if fallback == nil && strings.EqualFold(path.Ext(base), ".xml") && base != "export_cda.xml" {
			fallback = f
		}
	}
	return fallback
}

// NewReader opens a fresh reader over the record log.
func (e *Export) NewReader() (io.ReadCloser, error) {
	if e.zr == nil {
		return os.Open(e.path)
	}
	return e.entry.Open()
}

// Path reports the resolved location of the record log.
func (e *Export) Path() string {
	if e.zr == nil {
		return e.path
	}
	return e.entry.Name
}

// Close releases the underlying archive.
func (e *Export) Close() error {
	if e.zr == nil {
		return nil
	}
	return e.zr.Close()
}
