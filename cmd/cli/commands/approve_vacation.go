package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natbar-dev/shiftplan/pkg/core/services"
)

// ApproveVacationCmd creates the approveVacation command
func ApproveVacationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approveVacation <request_id>",
		Short: "Approve or reject a pending vacation request",
		Long:  "Review a pending vacation request; approval blocks every date of the range for scheduling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID := args[0]
			reject, _ := cmd.Flags().GetBool("reject")
			notes, _ := cmd.Flags().GetString("notes")

			app.Logger.Debug("approveVacation command",
				zap.String("request_id", requestID),
				zap.Bool("reject", reject))

			result, err := services.ApproveVacation(app.Ctx, app.Database, app.Logger, services.ApproveVacationInput{
				RequestID:    requestID,
				Approve:      !reject,
				ManagerNotes: notes,
			})
			if err != nil {
				return err
			}

			if reject {
				fmt.Printf("\n❌ Vacation request %s rejected\n\n", result.Request.ID)
				return nil
			}

			fmt.Printf("\n✅ Vacation request %s approved\n\n", result.Request.ID)
			fmt.Printf("Employee:     %s\n", result.Request.EmployeeID)
			fmt.Printf("Range:        %s to %s\n",
				result.Request.StartDate.Format("2006-01-02"),
				result.Request.EndDate.Format("2006-01-02"))
			fmt.Printf("Days blocked: %d\n\n", result.DaysBlocked)

			return nil
		},
	}

	cmd.Flags().Bool("reject", false, "Reject the request instead of approving it")
	cmd.Flags().String("notes", "", "Manager notes to record with the decision")

	return cmd
}
