package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/core/services"
)

// SubmitConstraintCmd creates the submitConstraint command
func SubmitConstraintCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submitConstraint <employee_id> <date>",
		Short: "Record an availability constraint for an employee",
		Long:  "Record a per-date unavailability or shift preference; a later entry for the same date supersedes the earlier one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			employeeID := args[0]
			date := args[1]
			unavailable, _ := cmd.Flags().GetBool("unavailable")
			preference, _ := cmd.Flags().GetString("preference")
			notes, _ := cmd.Flags().GetString("notes")

			app.Logger.Debug("submitConstraint command",
				zap.String("employee_id", employeeID),
				zap.String("date", date),
				zap.Bool("unavailable", unavailable),
				zap.String("preference", preference))

			record, err := services.SubmitConstraint(app.Ctx, app.Database, app.Logger, services.SubmitConstraintInput{
				EmployeeID:  employeeID,
				Date:        date,
				Unavailable: unavailable,
				Preference:  preference,
				Notes:       notes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Constraint saved for %s on %s\n", record.EmployeeID, date)
			if unavailable {
				fmt.Println("   Marked unavailable")
			}
			if preference != "" {
				fmt.Printf("   Preference: %s\n", preference)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("unavailable", false, "Mark the employee unavailable on the date")
	cmd.Flags().String("preference", "", "Shift preference: SHORT, LONG, MORNING or EVENING")
	cmd.Flags().String("notes", "", "Free-form notes")

	return cmd
}
