package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ratersync/internal/compliance"
	"ratersync/internal/validation"
	"ratersync/pkg/contracts/domain"
)

var (
	checkInput   string
	checkVersion string
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate and compliance-check projects without exporting",
	Long: `The check command loads projects and reports completeness validation
and compliance results for each, without writing any export artifact.
Use it to review a spreadsheet before a sync.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := loadBatch(checkInput)
		if err != nil {
			return err
		}
		if batch.Len() == 0 {
			return fmt.Errorf("no projects found in %s", checkInput)
		}

		std, err := compliance.GetStandard(versionOrDefault(checkVersion))
		if err != nil {
			return err
		}
		eval, err := validation.NewEvaluator(std, logger).EvaluateBatch(cmd.Context(), batch)
		if err != nil {
			return err
		}

		for _, key := range batch.Keys() {
			verdict := eval.Compliance[key]
			result := eval.Validation[key]
			fmt.Printf("%s: %s (%d pass, %d warn, %d fail)\n",
				key, verdict.Overall, verdict.PassCount, verdict.WarnCount, verdict.FailCount)
			if issues := validation.SummarizeIssues(result); issues != "" {
				fmt.Printf("  issues: %s\n", issues)
			}
			if len(verdict.FootnotesApplied) > 0 {
				fmt.Printf("  footnotes: %v\n", verdict.FootnotesApplied)
			}
			if checkVerbose {
				for _, c := range verdict.Checks {
					fmt.Printf("  %-28s %-14s req %-16s %s\n",
						c.Component, c.Value, c.Requirement, c.Status)
				}
			}
		}

		fmt.Printf("\n%d project(s): %d PASS, %d WARN, %d FAIL; %d ready for export\n",
			batch.Len(),
			eval.CountByStatus(domain.StatusPass),
			eval.CountByStatus(domain.StatusWarn),
			eval.CountByStatus(domain.StatusFail),
			eval.ExportReady())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkInput, "input", "i", "", "input file or directory holding inputs (.xlsx, .xml or .csv)")
	checkCmd.Flags().StringVar(&checkVersion, "target-version", "", "target standard label (default from config)")
	checkCmd.Flags().BoolVar(&checkVerbose, "details", false, "print every individual check")
	checkCmd.MarkFlagRequired("input")
}
