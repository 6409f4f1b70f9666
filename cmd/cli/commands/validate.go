package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/core/services"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <year> <month>",
		Short: "Check the stored schedule for rule violations",
		Long:  "Re-run the full rule set against the stored month, catching violations from manual edits",
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

			app.Logger.Debug("validate command",
				zap.Int("year", year),
				zap.Int("month", month))

			result, err := services.ValidateSchedule(app.Ctx, app.Database, app.Cfg, app.Logger, services.ValidateScheduleInput{
				Year:  year,
				Month: month,
			})
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			fmt.Printf("\n🔍 Validation of %s\n\n", result.Period)
			fmt.Printf("Shifts:  %d stored, %d checked\n", result.TotalShifts, result.CheckedShifts)

			if result.Clean {
				fmt.Printf("Status:  ✅ CLEAN - no rule violations\n\n")
				return nil
			}

			fmt.Printf("Status:  ❌ %d violations\n\n", len(result.Violations))
			for _, v := range result.Violations {
				fmt.Printf("  • %s %-14s %s\n", v.Date.Format("2006-01-02"), v.ShiftType, v.EmployeeID)
				for _, reason := range v.Reasons {
					fmt.Printf("      %s: %s\n", reason.Code, reason.Detail)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
