package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ratersync/internal/compliance"
	"ratersync/internal/exporter"
	"ratersync/internal/infrastructure"
	"ratersync/internal/validation"
	"ratersync/pkg/contracts/domain"
)

var (
	syncInput       string
	syncOutput      string
	syncRegion      string
	syncStatus      string
	syncOrientation string
	syncVersion     string
	syncIncludeAll  bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Load projects, evaluate them, and write a submission document",
	Long: `The sync command runs the full pipeline: load the input file, validate
every project for completeness, check compliance against the target
standard, and write a rating-submission JSON document.

Projects that fail completeness validation are excluded from the
submission unless --include-all is set. Compliance results never block
the export; they are reported for review.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := loadBatch(syncInput)
		if err != nil {
			return err
		}
		if syncRegion != "" || syncStatus != "" {
			batch = batch.Filter(syncRegion, syncStatus)
		}
		if batch.Len() == 0 {
			return fmt.Errorf("no projects to sync in %s", syncInput)
		}

		orientation := orientationOrDefault(syncOrientation)
		if !compliance.ValidOrientation(orientation) {
			return fmt.Errorf("unknown orientation %q", orientation)
		}
		std, err := compliance.GetStandard(versionOrDefault(syncVersion))
		if err != nil {
			return err
		}
		eval, err := validation.NewEvaluator(std, logger).EvaluateBatch(cmd.Context(), batch)
		if err != nil {
			return err
		}

		keys := batch.Keys()
		if !syncIncludeAll {
			ready := keys[:0]
			for _, key := range keys {
				if eval.Validation[key].IsValid {
					ready = append(ready, key)
				} else {
					fmt.Printf("  skipped %s: %s\n", key, validation.SummarizeIssues(eval.Validation[key]))
				}
			}
			keys = ready
		}

		gen := exporter.NewGenerator(
			cfg.Export.BuilderHomeIDTemplate,
			versionOrDefault(syncVersion),
			orientation,
			logger,
		)
		doc := gen.Generate(batch, keys, infrastructure.GetRunID(cmd.Context()))
		if err := exporter.WriteJSON(doc, syncOutput, logger); err != nil {
			return err
		}

		fmt.Printf("Synced %d of %d project(s) to %s\n", doc.Metadata.Count, batch.Len(), syncOutput)
		fmt.Printf("Compliance: %d PASS, %d WARN, %d FAIL\n",
			eval.CountByStatus(domain.StatusPass),
			eval.CountByStatus(domain.StatusWarn),
			eval.CountByStatus(domain.StatusFail))
		return nil
	},
}

func versionOrDefault(v string) string {
	if v == "" {
		return cfg.Export.TargetVersion
	}
	return v
}

func orientationOrDefault(o string) string {
	if o == "" {
		return cfg.Export.DefaultOrientation
	}
	return o
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVarP(&syncInput, "input", "i", "", "input file or directory holding inputs (.xlsx, .xml or .csv)")
	syncCmd.Flags().StringVarP(&syncOutput, "output", "o", "exports/submission.json", "submission document path")
	syncCmd.Flags().StringVar(&syncRegion, "region", "", "only sync projects in this region")
	syncCmd.Flags().StringVar(&syncStatus, "status", "", "only sync projects with this pass/fail status")
	syncCmd.Flags().StringVar(&syncOrientation, "orientation", "", "orientation code applied to every home (default from config)")
	syncCmd.Flags().StringVar(&syncVersion, "target-version", "", "target standard label (default from config)")
	syncCmd.Flags().BoolVar(&syncIncludeAll, "include-all", false, "export projects even when completeness validation fails")
	syncCmd.MarkFlagRequired("input")
}
