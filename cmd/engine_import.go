package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multirex.GO/config"
	"multirex.GO/service/importer"
)

var (
	importFile  string
	importBatch int
	importDry   bool
)

var importCmd = &cobra.Command{
	Use:   "engines:import",
	Short: "Import engines from CSV, creating referenced receptions on the fly",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(importFile)
		if err != nil {
			fmt.Printf("Failed to open CSV: %v\n", err)
			return
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}

		res, err := importer.ImportEngines(db, f, importer.ImportOptions{
			BatchSize: importBatch,
			DryRun:    importDry,
		})
		if err != nil {
			fmt.Printf("Import failed: %v\n", err)
			return
		}

		for _, w := range res.Warnings {
			fmt.Printf("  [warn] %s\n", w)
		}

		fmt.Printf(`
=== Import Report ===
CSV rows:           %d
Engines created:    %d
Receptions created: %d
Skipped:            %d
Total time:         %v
`, res.TotalRows, res.Created, res.ReceptionsCreated, res.Skipped, res.TotalTime)
		if importDry {
			fmt.Println("Dry run: nothing written.")
		}
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "engines.csv", "CSV file to import")
	importCmd.Flags().IntVarP(&importBatch, "batch", "b", 500, "Insert batch size")
	importCmd.Flags().BoolVar(&importDry, "dry-run", false, "Parse and validate without writing")
	rootCmd.AddCommand(importCmd)
}
