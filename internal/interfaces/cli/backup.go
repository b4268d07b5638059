package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/zonevault/internal/backup"
	"github.com/lite-lake/zonevault/internal/config"
	"github.com/lite-lake/zonevault/internal/domain/entity"
	"github.com/lite-lake/zonevault/internal/providers/dns"
	"github.com/lite-lake/zonevault/internal/storage"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Back up all zones now",
		Long:  "Run a full backup of every zone visible to the configured credentials.",
		Run: func(cmd *cobra.Command, args []string) {
			if code := runBackup(); code != 0 {
				os.Exit(code)
			}
		},
	}
}

// runBackup returns an exit code instead of calling os.Exit so deferred
// cleanup (the store's session) runs before the process ends.
func runBackup() int {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Run.Deadline)
	defer cancel()

	provider, err := dns.NewFactory().Create(ctx, &cfg.Provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating DNS provider: %v\n", err)
		return 1
	}

	store, err := storage.NewStore(ctx, &cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating storage: %v\n", err)
		return 1
	}
	defer store.Close()

	orch := backup.NewOrchestrator(provider, store,
		backup.WithCallTimeout(cfg.Run.CallTimeout))

	report, err := orch.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Backup run failed: %v\n", err)
		return 1
	}

	renderReport(report)
	if report.HasFailures() {
		return 1
	}
	return 0
}

func renderReport(report *entity.RunReport) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Backup run %s", report.StartedAt)))
	fmt.Printf("Zones processed: %d\n", report.TotalZones())

	for _, id := range report.Succeeded {
		fmt.Printf("%s %s\n", successStyle.Render("✓"), id)
	}
	for _, f := range report.Failed {
		fmt.Printf("%s %s %s\n",
			failureStyle.Render("✗"),
			f.ZoneID,
			dimStyle.Render(f.Err.Error()))
	}

	if report.HasFailures() {
		fmt.Println(failureStyle.Render(fmt.Sprintf("%d zone(s) failed", len(report.Failed))))
	}
}
