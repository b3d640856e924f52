package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/partwatch/partwatch/internal/lifespan"
)

var (
	lifespanMachine      string
	lifespanManufacturer string
)

var lifespanCmd = &cobra.Command{
	Use:   "lifespan <part name>",
	Short: "Resolve a maintenance interval for a part through the cascade",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLifespan,
}

func init() {
	lifespanCmd.Flags().StringVarP(&lifespanMachine, "machine", "m", "", "Machine/equipment name")
	lifespanCmd.Flags().StringVar(&lifespanManufacturer, "manufacturer", "", "Part manufacturer")
}

func runLifespan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resolver := buildResolver(cfg)

	est := resolver.Resolve(cmd.Context(), lifespan.Request{
		PartName:     strings.Join(args, " "),
		MachineName:  lifespanMachine,
		Manufacturer: lifespanManufacturer,
	})

	fmt.Printf("%d months (source: %s)\n", est.Months, est.Source)
	return nil
}
