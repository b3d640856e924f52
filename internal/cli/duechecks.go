package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var duechecksCmd = &cobra.Command{
	Use:   "duechecks",
	Short: "List parts overdue per manufacturer/industry lifespan guidance",
	RunE:  runDuechecks,
}

func runDuechecks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	resolver := buildResolver(cfg)
	scanner := buildScanner(cfg, db, resolver)

	checks, err := scanner.Scan(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(checks); err != nil {
		return fmt.Errorf("encode due checks: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%d pairs due for check\n", len(checks))
	return nil
}
