package dataprocessing

import (
	"fmt"
	"log/slog"
	"strings"

	"ratersync/pkg/contracts/domain"
)

// DeriveKey produces the stable batch key for a project: the same
// "{Subdivision}_Lot{Lot}" shape the submission export uses for builder
// home IDs. Projects missing either identity field fall back to a
// row-positional key so they are never silently dropped.
func DeriveKey(p *domain.Project, row int) string {
	sub := strings.TrimSpace(p.Subdivision)
	lot := strings.TrimSpace(p.Lot)
	if sub != "" && lot != "" {
		return fmt.Sprintf("%s_Lot%s", sub, lot)
	}
	if addr := strings.TrimSpace(p.StreetAddress); addr != "" {
		if len(addr) > 20 {
			addr = addr[:20]
		}
		return fmt.Sprintf("Row%d_%s", row+1, addr)
	}
	return fmt.Sprintf("Row%d", row+1)
}

// BuildBatch keys a slice of parsed projects into an ordered batch.
// Duplicate keys get a numeric suffix rather than clobbering each other.
func BuildBatch(projects []*domain.Project, logger *slog.Logger) *domain.Batch {
	if logger == nil {
		logger = slog.Default()
	}
	batch := domain.NewBatch()
	for i, p := range projects {
		key := DeriveKey(p, i)
		if batch.Has(key) {
			base := key
			for n := 2; ; n++ {
				key = fmt.Sprintf("%s_%d", base, n)
				if !batch.Has(key) {
					break
				}
			}
			logger.Warn("Duplicate project key, suffixed",
				slog.String("original", base),
				slog.String("key", key))
		}
		batch.Add(key, p)
	}
	return batch
}

// LoadWorkbook is the one-call path the CLI uses: parse a spreadsheet and
// key its rows into a batch.
func LoadWorkbook(path string, logger *slog.Logger) (*domain.Batch, error) {
	projects, err := ParseWorkbook(path, logger)
	if err != nil {
		return nil, err
	}
	return BuildBatch(projects, logger), nil
}
