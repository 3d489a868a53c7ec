package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"tabata_timer/internal/duration"
	"tabata_timer/internal/logger"
	"tabata_timer/internal/repository"
	"tabata_timer/internal/repository/db"
	"tabata_timer/internal/service"

	"github.com/spf13/cobra"
)

var (
	workoutsSearch string
	workoutsSort   string
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List the workout catalog with durations",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		repos := repository.NewRepository(sqlDB)
		cat := loadCatalog(cfg, log)
		progress := service.NewProgressTracker(context.Background(), repos.KV, cat, log)
		list := service.NewWorkoutService(cat, progress, log).List(workoutsSearch, workoutsSort)

		if len(list) == 0 {
			fmt.Println("No workouts found matching the criteria")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPAIRS\tROUNDS\tDURATION\tREST\tDONE")
		for _, s := range list {
			done := ""
			if s.Completed {
				done = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
				s.ID, s.Name, len(s.Pairs), s.Rounds,
				s.FormattedTotal, s.FormattedRest, done)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		total := 0
		for _, s := range list {
			total += s.TotalDuration
		}
		fmt.Printf("\nTotal: %d workouts, %s\n", len(list), duration.FormatDuration(total))
		return nil
	},
}

func init() {
	workoutsCmd.Flags().StringVarP(&workoutsSearch, "search", "s", "", "filter by workout or exercise name")
	workoutsCmd.Flags().StringVar(&workoutsSort, "sort", "", "sort by name or duration")
}
