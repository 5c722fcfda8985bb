package exporter

import (
	"log/slog"
	"strings"
	"time"

	"ratersync/internal/compliance"
	"ratersync/internal/schema"
	"ratersync/pkg/contracts/domain"
)

// SubmissionSource is the fixed source tag stamped into every generated
// document's metadata.
const SubmissionSource = "DSLD v9"

// DefaultBuilderHomeIDTemplate is the identifier template used when the
// configuration does not override it.
const DefaultBuilderHomeIDTemplate = "{Subdivision1}_Lot{Lot1}"

// Generator builds submission documents from project batches.
type Generator struct {
	// Template is the builder-home-ID template. Placeholders are
	// {FieldName} over the identity-field subset of the schema.
	Template string

	// TargetVersion is the standard label stamped on every home entry.
	TargetVersion string

	// Orientation is the compass code applied to every home's general
	// info block.
	Orientation string

	logger *slog.Logger
}

// NewGenerator creates a generator. Empty template, version or
// orientation fall back to the defaults.
func NewGenerator(template, targetVersion, orientation string, logger *slog.Logger) *Generator {
	if template == "" {
		template = DefaultBuilderHomeIDTemplate
	}
	if targetVersion == "" {
		targetVersion = compliance.DefaultVersion
	}
	if orientation == "" {
		orientation = "N"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		Template:      template,
		TargetVersion: targetVersion,
		Orientation:   orientation,
		logger:        logger,
	}
}

// BuilderHomeID resolves the identifier template against one record.
// Each placeholder becomes the record's value with whitespace replaced by
// underscores, or the empty string when absent.
func (g *Generator) BuilderHomeID(p *domain.Project) string {
	id := g.Template
	for _, name := range schema.TemplateFields() {
		field, ok := schema.Lookup(name)
		if !ok {
			continue
		}
		value := ""
		if v, present := field.Value(p); present {
			value = strings.ReplaceAll(strings.TrimSpace(v), " ", "_")
		}
		id = strings.ReplaceAll(id, "{"+name+"}", value)
	}
	return id
}

// residue is what the template collapses to when no placeholder resolves:
// its literal text with every placeholder removed. An identifier equal to
// the residue identifies a record with no usable identity fields.
func (g *Generator) residue() string {
	r := g.Template
	for _, name := range schema.TemplateFields() {
		r = strings.ReplaceAll(r, "{"+name+"}", "")
	}
	return r
}

// Generate builds a submission document for the selected batch keys (all
// keys when the selection is nil). Records with no data or an unresolved
// identifier are skipped silently; the skip is logged but never an error.
func (g *Generator) Generate(batch *domain.Batch, keys []string, runID string) *domain.SubmissionDocument {
	if keys == nil {
		keys = batch.Keys()
	}
	residue := g.residue()

	homes := make([]domain.Home, 0, len(keys))
	for _, key := range keys {
		p := batch.Get(key)
		if p.IsEmpty() {
			continue
		}
		id := g.BuilderHomeID(p)
		if id == "" || id == residue {
			g.logger.Debug("Skipping project with unresolved builder home ID",
				slog.String("project", key))
			continue
		}
		homes = append(homes, g.buildHome(id, p))
	}

	doc := &domain.SubmissionDocument{
		Homes: homes,
		Metadata: domain.SubmissionMetadata{
			Generated: time.Now().Format(time.RFC3339),
			Source:    SubmissionSource,
			Count:     len(homes),
			RunID:     runID,
		},
	}
	g.logger.Info("Submission document generated",
		slog.Int("selected", len(keys)),
		slog.Int("included", len(homes)),
		slog.String("target_version", g.TargetVersion))
	return doc
}

func (g *Generator) buildHome(id string, p *domain.Project) domain.Home {
	home := domain.Home{
		BuilderHomeID:           id,
		RatingType:              compliance.DetermineRating(p),
		TargetEnergyStarVersion: g.TargetVersion,
	}

	if p.StreetAddress != "" {
		home.Address = &domain.HomeAddress{
			Street: p.StreetAddress,
			City:   p.City,
			State:  p.State,
			Zip:    p.ZipCode,
		}
	}

	// Always present; conditioned area is null on the wire when absent.
	home.GeneralInfo = &domain.GeneralInfo{
		ConditionedFloorArea: p.LivingArea,
		Orientation:          g.Orientation,
	}

	if p.BlowerDoorCFM != nil {
		home.Infiltration = &domain.Infiltration{
			Value: *p.BlowerDoorCFM,
			Unit:  "CFM50",
		}
	}

	if p.TotalDuctLeakage != nil || p.LeakageToOutside != nil {
		home.DistributionSystems = []domain.DistributionSystem{{
			Index:                 0,
			TotalDuctLeakageCFM25: p.TotalDuctLeakage,
			LeakageToOutsideCFM25: p.LeakageToOutside,
		}}
	}

	return home
}
