package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multirex.GO/config"
	"multirex.GO/database"
)

var migrateUpCmd = &cobra.Command{
	Use:   "migrate:up",
	Short: "Apply pending schema migrations and recreate the availability views",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		if err := database.MigrateUp(db); err != nil {
			fmt.Printf("Migration failed: %v\n", err)
			os.Exit(1)
		}
		version, dirty, err := database.Version(db)
		if err != nil {
			fmt.Printf("Migration applied, version unknown: %v\n", err)
			return
		}
		fmt.Printf("Schema at version %d (dirty=%v)\n", version, dirty)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "migrate:down",
	Short: "Roll back the most recent schema migration",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		if err := database.MigrateDown(db); err != nil {
			fmt.Printf("Rollback failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Rolled back one migration.")
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "migrate:version",
	Short: "Print the current schema migration version",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			os.Exit(1)
		}
		version, dirty, err := database.Version(db)
		if err != nil {
			fmt.Printf("Version lookup failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Schema at version %d (dirty=%v)\n", version, dirty)
	},
}

func init() {
	rootCmd.AddCommand(migrateUpCmd)
	rootCmd.AddCommand(migrateDownCmd)
	rootCmd.AddCommand(migrateVersionCmd)
}
