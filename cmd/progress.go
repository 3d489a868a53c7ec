package main

import (
	"context"
	"fmt"
	"sort"

	"tabata_timer/internal/catalog"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/repository"
	"tabata_timer/internal/repository/db"
	"tabata_timer/internal/service"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved workout progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProgress(func(ctx context.Context, cat *catalog.Catalog, p *service.ProgressTracker) error {
			sum := p.Summary()
			if len(sum.Records) == 0 {
				fmt.Println("No progress recorded")
				return nil
			}

			ids := make([]string, 0, len(sum.Records))
			for id := range sum.Records {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			for _, id := range ids {
				rec := sum.Records[id]
				name := id
				if w, err := cat.Get(id); err == nil {
					name = w.Name
				}
				if rec.IsCompleted {
					at := ""
					if rec.CompletedAt != nil {
						at = rec.CompletedAt.Local().Format("2006-01-02 15:04")
					}
					fmt.Printf("✅ %s | completed %s\n", name, at)
					continue
				}
				fmt.Printf("⏸  %s | pair %d, round %d\n", name, rec.CurrentPairIndex+1, rec.CurrentRound)
			}
			fmt.Printf("\nCompleted %d of %d workouts (%d%%)\n", sum.CompletedCount, sum.TotalCount, sum.OverallPercent)
			return nil
		})
	},
}

var progressClearCmd = &cobra.Command{
	Use:   "clear [workout-id]",
	Short: "Clear progress for one workout, or all of it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withProgress(func(ctx context.Context, _ *catalog.Catalog, p *service.ProgressTracker) error {
			if len(args) == 1 {
				p.ResetProgress(ctx, args[0])
				fmt.Printf("Progress cleared for %s\n", args[0])
				return nil
			}
			p.ClearAll(ctx)
			fmt.Println("All progress cleared")
			return nil
		})
	},
}

func init() {
	progressCmd.AddCommand(progressClearCmd)
}

// withProgress opens the store and runs fn against a loaded tracker.
func withProgress(fn func(ctx context.Context, cat *catalog.Catalog, p *service.ProgressTracker) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log.Level)

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()
	repos := repository.NewRepository(sqlDB)
	cat := loadCatalog(cfg, log)
	return fn(ctx, cat, service.NewProgressTracker(ctx, repos.KV, cat, log))
}
