package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/niteshnanu12/vybe/internal/adapters/snapshot"
	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
)

var (
	workoutDir  string
	workoutUser string
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Inspect persisted workout sessions",
}

var workoutStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a user's workout as the server would resume it",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := snapshot.NewFileStore(workoutDir, workoutUser)
		snap, err := store.Load(cmd.Context())
		out := cmd.OutOrStdout()
		if errors.Is(err, domain.ErrNoSnapshot) {
			fmt.Fprintf(out, "no workout snapshot at %s\n", store.Path())
			return nil
		}
		if err != nil {
			return err
		}

		session := snap.SessionAt(time.Now())
		state := "idle"
		if session.IsRunning {
			state = "running"
		}
		fmt.Fprintf(out, "state\t%s\n", state)
		fmt.Fprintf(out, "type\t%s\n", session.Type)
		fmt.Fprintf(out, "elapsed\t%s\n", scoring.FormatElapsed(session.ElapsedSeconds))
		if session.StartTime != nil {
			fmt.Fprintf(out, "started\t%s\n", session.StartTime.Local().Format(time.RFC3339))
		}
		fmt.Fprintf(out, "saved\t%s\n", snap.LastUpdatedAt().Local().Format(time.RFC3339))
		return nil
	},
}

func init() {
	workoutStatusCmd.Flags().StringVar(&workoutDir, "dir", "./data/workouts", "Snapshot directory (SNAPSHOT_DIR)")
	workoutStatusCmd.Flags().StringVar(&workoutUser, "user", "", "User ID; empty reads the single-user snapshot")

	workoutCmd.AddCommand(workoutStatusCmd)
	rootCmd.AddCommand(workoutCmd)
}
