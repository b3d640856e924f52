package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict next replacement per (equipment, part) pair",
	Long:  "Computes per-pair replacement predictions from history and prints them as JSON.",
	RunE:  runPredict,
}

func runPredict(cmd *cobra.Command, args []string) error {
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
	predictor := buildPredictor(cfg, db, resolver)

	predictions, err := predictor.Predict(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(predictions); err != nil {
		return fmt.Errorf("encode predictions: %w", err)
	}

	due := 0
	for _, p := range predictions {
		if p.Due {
			due++
		}
	}
	fmt.Fprintf(os.Stderr, "%d pairs, %d due\n", len(predictions), due)
	return nil
}
