package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/zonevault/internal/backup"
	"github.com/lite-lake/zonevault/internal/config"
	"github.com/lite-lake/zonevault/internal/providers/dns"
)

func newZonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List visible zones",
		Long:  "List every hosted zone the configured credentials can see, in backup order.",
		Run: func(cmd *cobra.Command, args []string) {
			runZones()
		},
	}
}

func runZones() {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Run.Deadline)
	defer cancel()

	provider, err := dns.NewFactory().Create(ctx, &cfg.Provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating DNS provider: %v\n", err)
		os.Exit(1)
	}

	zones, err := backup.EnumerateZones(ctx, provider, cfg.Run.CallTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing zones: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Zones (%s)", provider.Name())))
	for _, zone := range zones {
		fmt.Printf("%-40s %s\n", zone.Name, dimStyle.Render(backup.BareZoneID(zone.ID)))
	}
	fmt.Printf("%d zone(s)\n", len(zones))
}
