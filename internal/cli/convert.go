package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ratersync/internal/interchange"
	"ratersync/internal/validation"
)

var (
	convertInput  string
	convertOutput string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between spreadsheet and REM interchange formats",
	Long: `The convert command reads projects from any supported input file and
writes them as a REM interchange document. The output format follows the
output file's extension: .xml produces the hierarchical REM export, .csv
produces the display-oriented summary table with a derived ACH50 column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := loadBatch(convertInput)
		if err != nil {
			return err
		}
		if batch.Len() == 0 {
			return fmt.Errorf("no projects found in %s", convertInput)
		}
		if err := validation.NewFileValidator(logger).ValidateOutputFile(convertOutput); err != nil {
			return err
		}
		if err := interchange.WriteFile(batch.Projects(), convertOutput); err != nil {
			return err
		}
		fmt.Printf("Converted %d project(s): %s -> %s\n", batch.Len(), convertInput, convertOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "input file or directory holding inputs (.xlsx, .xml or .csv)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output interchange file (.xml or .csv)")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
}
