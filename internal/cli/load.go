package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ratersync/internal/dataprocessing"
	"ratersync/internal/files"
	"ratersync/internal/interchange"
	"ratersync/internal/validation"
	"ratersync/pkg/contracts/domain"
)

// loadBatch reads any supported input file into a keyed batch. A directory
// path resolves to its newest input file. Builder spreadsheets go through
// the workbook parser; XML and CSV go through the interchange codec.
func loadBatch(path string) (*domain.Batch, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		latest, err := files.NewDiscovery(path).LatestInput(".")
		if err != nil {
			return nil, err
		}
		logger.Info("Using newest input in directory", slog.String("file", latest.Path))
		path = latest.Path
	}
	if err := validation.NewFileValidator(logger).ValidateInputFile(path); err != nil {
		return nil, err
	}

	if strings.ToLower(filepath.Ext(path)) == ".xlsx" {
		return dataprocessing.LoadWorkbook(path, logger)
	}
	projects, err := interchange.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dataprocessing.BuildBatch(projects, logger), nil
}
