package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/core/services"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <year> <month>",
		Short: "Generate the shift schedule for a month",
		Long:  "Plan every shift slot of the month, assigning employees under the full rule set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month must be a number: %w", err)
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			force, _ := cmd.Flags().GetBool("force")

			app.Logger.Debug("generate command",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Bool("dry_run", dryRun),
				zap.Bool("force", force))

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.GenerateScheduleInput{
				Year:   year,
				Month:  month,
				DryRun: dryRun,
				Force:  force,
			})
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			fmt.Printf("\n🗓  Schedule for %s\n\n", result.Period)
			if dryRun {
				fmt.Printf("Mode:   🧪 DRY RUN (not saved)\n")
			} else if result.Saved && result.Success {
				fmt.Printf("Status: ✅ SUCCESS (saved to database)\n")
			} else if result.Saved {
				fmt.Printf("Status: ⚠️  FORCED (saved with unfilled shifts)\n")
			} else {
				fmt.Printf("Status: ❌ INCOMPLETE (not saved)\n")
			}
			fmt.Printf("Shifts: %d planned, %d unfilled\n\n", len(result.Shifts), len(result.Problems))

			for _, shift := range result.Shifts {
				marker := "  "
				who := shift.EmployeeID
				if !shift.Assigned() {
					marker = "⚠️ "
					who = "(unfilled)"
				}
				fmt.Printf("%s%s  %-14s %s-%s  %s\n",
					marker,
					shift.Date.Format("2006-01-02 Mon"),
					shift.Type,
					shift.StartTime,
					shift.EndTime,
					who)
			}
			fmt.Println()

			if len(result.Problems) > 0 {
				fmt.Printf("⚠️  Unfilled shifts (%d):\n", len(result.Problems))
				for _, problem := range result.Problems {
					fmt.Printf("  • %s %s\n", problem.Date.Format("2006-01-02"), problem.Type)
					for _, detail := range problem.UnassignmentDetails {
						for _, reason := range detail.Reasons {
							fmt.Printf("      %s: %s\n", detail.EmployeeID, reason.Code)
						}
					}
				}
				fmt.Println()
				if !result.Saved && !dryRun {
					fmt.Println("💡 Use --force to save anyway, or adjust constraints and retry.")
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Plan without saving to database")
	cmd.Flags().Bool("force", false, "Save even if some shifts are unfilled")

	return cmd
}
