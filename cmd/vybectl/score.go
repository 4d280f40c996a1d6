package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/scoring"
)

var (
	scoreWeight      float64
	scoreHeight      float64
	scoreSteps       int
	scoreStepGoal    int
	scoreSleepHours  float64
	scoreSleepGoal   float64
	scoreSleepQual   int
	scoreCalories    float64
	scoreCalorieGoal float64
	scoreGlasses     int
	scoreWaterGoal   int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute a day's growth index and BMI without a server",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := "offline"
		in := scoring.GrowthInputs{
			Steps:     &domain.DailyStepRecord{Day: day, Count: scoreSteps, Goal: scoreStepGoal},
			Sleep:     &domain.SleepRecord{Day: day, Duration: scoreSleepHours, Quality: scoreSleepQual},
			SleepGoal: scoreSleepGoal,
			Nutrition: &domain.NutritionRecord{
				Day:      day,
				Calories: scoreCalories,
				Goals:    domain.MacroGoals{Calories: scoreCalorieGoal},
			},
			Hydration: domain.NewHydrationRecord("", day, scoreWaterGoal, domain.DefaultGlassSizeMl),
		}
		in.Hydration.SetGlasses(scoreGlasses)

		res := scoring.GrowthIndex(in)
		badge := scoring.Badge(res.GrowthIndex)
		bmi := scoring.BMI(scoreWeight, scoreHeight)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "COMPONENT\tSCORE")
		fmt.Fprintf(out, "activity\t%d\n", res.ActivityConsistency)
		fmt.Fprintf(out, "sleep\t%d\n", res.SleepScore)
		fmt.Fprintf(out, "nutrition\t%d\n", res.NutritionScore)
		fmt.Fprintf(out, "hydration\t%d\n", res.HydrationScore)
		fmt.Fprintf(out, "growth\t%d (%s)\n", res.GrowthIndex, badge.Label)
		if bmi != nil {
			fmt.Fprintf(out, "bmi\t%.1f (%s)\n", *bmi, scoring.BMICategory(bmi))
		} else {
			fmt.Fprintf(out, "bmi\t- (%s)\n", scoring.BMICategory(nil))
		}
		return nil
	},
}

func init() {
	defaults := domain.DefaultProfile()

	scoreCmd.Flags().Float64Var(&scoreWeight, "weight", defaults.WeightKg, "Body weight in kg")
	scoreCmd.Flags().Float64Var(&scoreHeight, "height", defaults.HeightCm, "Height in cm")
	scoreCmd.Flags().IntVar(&scoreSteps, "steps", 0, "Steps walked")
	scoreCmd.Flags().IntVar(&scoreStepGoal, "step-goal", defaults.StepGoal, "Daily step goal")
	scoreCmd.Flags().Float64Var(&scoreSleepHours, "sleep", 0, "Hours slept")
	scoreCmd.Flags().Float64Var(&scoreSleepGoal, "sleep-goal", defaults.SleepGoal, "Sleep goal in hours")
	scoreCmd.Flags().IntVar(&scoreSleepQual, "sleep-quality", 0, "Sleep quality 0-100")
	scoreCmd.Flags().Float64Var(&scoreCalories, "calories", 0, "Calories eaten")
	scoreCmd.Flags().Float64Var(&scoreCalorieGoal, "calorie-goal", float64(defaults.CalorieGoal), "Calorie goal")
	scoreCmd.Flags().IntVar(&scoreGlasses, "water", 0, "Glasses of water")
	scoreCmd.Flags().IntVar(&scoreWaterGoal, "water-goal", defaults.WaterGoal, "Water goal in glasses")

	rootCmd.AddCommand(scoreCmd)
}
