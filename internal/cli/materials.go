package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/config"
)

// newMaterialsCmd creates the materials command, listing the catalogue the
// configurator resolves against.
func newMaterialsCmd(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the material catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			materials, err := loadMaterials(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d materials", len(materials)))

			if asJSON {
				return writeJSONReport(materials, "")
			}
			printMaterialsTable(materials)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the catalogue as JSON")
	return cmd
}

func printMaterialsTable(materials []catalog.Material) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			return StyleValue
		}).
		Headers("ID", "NAME", "TYPE", "FINISH", "MAX", "THICKNESSES")

	for _, m := range materials {
		maxSize := ""
		if l, ok := m.MaxLengthMm(); ok {
			maxSize = fmt.Sprintf("%d", l)
			if w, ok := m.MaxWidthMm(); ok {
				maxSize += fmt.Sprintf(" × %d", w)
			}
		}
		thicknesses := make([]string, 0, len(m.AvailableThicknesses))
		for _, mm := range catalog.Thicknesses(&m) {
			thicknesses = append(thicknesses, fmt.Sprintf("%d", mm))
		}
		t.Row(m.ID, m.Name, m.MaterialType, m.Finish, maxSize, strings.Join(thicknesses, ", "))
	}

	fmt.Println(t.Render())
}
