package cmd

import (
	"csv-adapter/feature/adapt"

	"github.com/spf13/cobra"
)

// checkCmd reports what adapt would do without writing anything.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report what adapt would change, without writing any output",
	Long: `Check runs the full reconciliation pipeline against every CSV file in
the input directory and reports the planned actions per file, but never
writes output files or copies invalid ones.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&inputDirFlag, "input", "", "Input directory (overrides configuration)")
	checkCmd.Flags().StringVar(&schemaFileFlag, "schema", "", "Schema file (overrides configuration)")

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, l, err := buildService(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	report, err := svc.Run(cmd.Context(), adapt.RunOptions{DryRun: true})
	if err != nil {
		return err
	}

	printReport(l, report)
	return nil
}
