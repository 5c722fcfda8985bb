package interchange

import (
	"path/filepath"
	"strings"

	apperrors "ratersync/internal/errors"
	"ratersync/pkg/contracts/domain"
)

// ReadFile parses an interchange file, dispatching on extension.
func ReadFile(path string) ([]*domain.Project, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ParseXML(path)
	case ".csv":
		return ParseCSV(path)
	default:
		return nil, apperrors.Ef("interchange.ReadFile", apperrors.CodeUnsupportedFormat,
			"no interchange reader for %q", filepath.Ext(path))
	}
}

// WriteFile serializes records to an interchange file, dispatching on
// extension.
func WriteFile(projects []*domain.Project, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return WriteXML(projects, path)
	case ".csv":
		return WriteCSV(projects, path)
	default:
		return apperrors.Ef("interchange.WriteFile", apperrors.CodeUnsupportedFormat,
			"no interchange writer for %q", filepath.Ext(path))
	}
}
