package export

import (
	"github.com/rusuraluca/apple-health-wrapped/internal/archive"
	"github.com/rusuraluca/apple-health-wrapped/internal/domain"
)

// Opener opens export archives into engine record sources.
type Opener struct{}

// NewOpener constructs an Opener.
func NewOpener() Opener {
	return Opener{}
}

// Open resolves the record log inside the archive and wraps it as a source.
func (Opener) Open(archivePath string) (domain.ExportSource, error) {
	ar, err := archive.Open(archivePath)
	if err != nil {
		return nil, err
	}
	return &openedExport{Source: NewSource(ar), ar: ar}, nil
}

type openedExport struct {
	*Source
	ar *archive.Export
}

func (o *openedExport) Path() string {
	return o.ar.Path()
}

func (o *openedExport) Close() error {
	return o.ar.Close()
}
