package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newDraftCmd creates the draft management command.
func newDraftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage saved configuration drafts",
	}

	cmd.AddCommand(newDraftListCmd())
	cmd.AddCommand(newDraftShowCmd())
	cmd.AddCommand(newDraftRmCmd())

	return cmd
}

func newDraftListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openDraftStore()
			if err != nil {
				return err
			}
			drafts, err := store.List()
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				printInfo("No drafts saved")
				return nil
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(StyleDim).
				StyleFunc(func(row, _ int) lipgloss.Style {
					if row == -1 {
						return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
					}
					return StyleValue
				}).
				Headers("ID", "NAME", "SHAPE", "SIZE", "UPDATED")
			for _, d := range drafts {
				t.Row(d.ID.String(),
					d.Name,
					string(d.Config.Shape),
					fmt.Sprintf("%d × %d × %d", d.Config.LengthMm, d.Config.WidthMm, d.Config.ThicknessMm),
					d.Updated.Local().Format("2006-01-02 15:04"))
			}
			fmt.Println(t.Render())
			return nil
		},
	}
}

func newDraftShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a draft as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid draft id: %w", err)
			}
			store, err := openDraftStore()
			if err != nil {
				return err
			}
			draft, err := store.Load(id)
			if err != nil {
				return err
			}
			return writeJSONReport(draft, "")
		},
	}
}

func newDraftRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid draft id: %w", err)
			}
			store, err := openDraftStore()
			if err != nil {
				return err
			}
			if err := store.Delete(id); err != nil {
				return err
			}
			printSuccess("Deleted draft %s", id)
			return nil
		},
	}
}
