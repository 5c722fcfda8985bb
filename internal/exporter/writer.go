package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "ratersync/internal/errors"
	"ratersync/pkg/contracts/domain"
)

// WriteJSON writes a submission document to path, creating parent
// directories as needed. The output is indented for human review before
// upload.
func WriteJSON(doc *domain.SubmissionDocument, path string, logger *slog.Logger) error {
	const op = "exporter.WriteJSON"
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, fmt.Errorf("create directory: %w", err))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, fmt.Errorf("marshal document: %w", err))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.E(op, apperrors.CodeFileSystem, fmt.Errorf("write file: %w", err))
	}

	logger.Info("Submission document written",
		slog.String("file", path),
		slog.Int("homes", doc.Metadata.Count))
	return nil
}
