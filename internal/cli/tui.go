package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/config"
	"github.com/plankworks/plank/pkg/pricing"
	"github.com/plankworks/plank/pkg/resolve"
	"github.com/plankworks/plank/pkg/session"
	"github.com/plankworks/plank/pkg/tabletop"
)

// List styles
var (
	fieldSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	fieldNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	fieldDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	fieldEditStyle     = lipgloss.NewStyle().Foreground(colorYellow)
)

// newTUICmd creates the tui command running the interactive configurator.
func newTUICmd(configPath *string) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive tabletop configurator",
		Long: `Interactive tabletop configurator.

Every edit is resolved immediately: dimensions clamp to the limits of
the selected material, thickness snaps to its available set, and the
price re-estimates as you type. The local estimate appears instantly;
the authoritative price follows once the configuration settles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, *configPath, offline)
		},
	}

	cmd.Flags().BoolVar(&offline, "offline", false, "skip the authoritative pricing service")
	return cmd
}

func runTUI(cmd *cobra.Command, configPath string, offline bool) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	materials, err := loadMaterials(ctx, cfg)
	if err != nil {
		return err
	}

	runner := newRunner(ctx, cfg, offline, false)
	defer runner.Cache.Close()

	estimates := make(chan pricing.Estimate, 8)
	est := pricing.NewEstimator(runner.Quoter, pricing.Options{
		OnEstimate: func(e pricing.Estimate) {
			// Runs with the estimator's lock held; never block.
			select {
			case estimates <- e:
			default:
			}
		},
		Logger: loggerFromContext(ctx),
	})
	defer est.Close()

	model := newConfiguratorModel(materials, est, estimates)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(configuratorModel); ok && m.savedDraft != nil {
		printSuccess("Saved draft %s", m.savedDraft.ID)
		printDetail("Reprice it with: plank quote --draft %s", m.savedDraft.ID)
	}
	return nil
}

// =============================================================================
// configuratorModel - Interactive configuration editing
// =============================================================================

// fieldID identifies one editable row.
type fieldID int

const (
	fieldShape fieldID = iota
	fieldLength
	fieldWidth
	fieldThickness
	fieldEdgeRadius
	fieldExponent
	fieldMaterial
	fieldFinish
	fieldEdgeProfile
	fieldQuantity
)

var shapeOrder = []tabletop.Shape{
	tabletop.ShapeRect,
	tabletop.ShapeRoundedRect,
	tabletop.ShapeRoundTop,
	tabletop.ShapeRound,
	tabletop.ShapeEllipse,
	tabletop.ShapeSuperEllipse,
}

var profileOrder = []tabletop.EdgeProfile{
	tabletop.EdgeSquare,
	tabletop.EdgeChamfer,
	tabletop.EdgeRoundOver,
}

// estimateMsg carries a published estimate into the update loop.
type estimateMsg pricing.Estimate

// configuratorModel is the bubbletea model for the configurator.
type configuratorModel struct {
	state     resolve.State
	materials []catalog.Material
	// materialIdx indexes materials; -1 means none selected.
	materialIdx int

	cursor fieldID
	// inputs holds provisional text per numeric field.
	inputs map[fieldID]resolve.TextField

	estimator *pricing.Estimator
	estimates chan pricing.Estimate
	estimate  pricing.Estimate

	savedDraft *session.Draft
	status     string
}

func newConfiguratorModel(materials []catalog.Material, est *pricing.Estimator, estimates chan pricing.Estimate) configuratorModel {
	m := configuratorModel{
		state:       resolve.NewState(),
		materials:   materials,
		materialIdx: -1,
		estimator:   est,
		estimates:   estimates,
	}
	m.inputs = map[fieldID]resolve.TextField{}
	m.syncInputs()
	return m
}

// syncInputs settles every numeric input on the resolved configuration.
func (m *configuratorModel) syncInputs() {
	c := m.state.Config
	for id, v := range map[fieldID]int{
		fieldLength:     c.LengthMm,
		fieldWidth:      c.WidthMm,
		fieldThickness:  c.ThicknessMm,
		fieldEdgeRadius: c.EdgeRadiusMm,
		fieldQuantity:   c.Quantity,
	} {
		f, ok := m.inputs[id]
		if !ok {
			f = resolve.NewTextField(v)
		} else if !f.Editing() {
			f = f.Blur(v)
		} else {
			f = f.Commit(v)
		}
		m.inputs[id] = f
	}
}

// apply routes an event through the resolver and re-estimates.
func (m *configuratorModel) apply(ev resolve.Event) {
	m.state = resolve.Apply(m.state, ev)
	m.syncInputs()
	m.estimator.Update(m.state.Config.Payload())
}

func waitForEstimate(ch chan pricing.Estimate) tea.Cmd {
	return func() tea.Msg {
		return estimateMsg(<-ch)
	}
}

func (m configuratorModel) Init() tea.Cmd {
	m.estimator.Update(m.state.Config.Payload())
	return waitForEstimate(m.estimates)
}

// fields returns the rows visible for the current shape.
func (m configuratorModel) fields() []fieldID {
	fields := []fieldID{fieldShape, fieldLength}
	switch m.state.Config.Shape {
	case tabletop.ShapeRound:
		// Single diameter; width mirrors length.
	case tabletop.ShapeRoundedRect:
		fields = append(fields, fieldWidth, fieldEdgeRadius)
	case tabletop.ShapeSuperEllipse:
		fields = append(fields, fieldWidth, fieldExponent)
	default:
		fields = append(fields, fieldWidth)
	}
	return append(fields, fieldThickness, fieldMaterial, fieldEdgeProfile, fieldQuantity)
}

func (m configuratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case estimateMsg:
		m.estimate = pricing.Estimate(msg)
		return m, waitForEstimate(m.estimates)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m configuratorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.fields()
	pos := 0
	for i, id := range fields {
		if id == m.cursor {
			pos = i
			break
		}
	}
	m.cursor = fields[pos]
	m.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		if !m.editing() {
			return m, tea.Quit
		}

	case "up", "shift+tab":
		m.blurCursor()
		if pos > 0 {
			m.cursor = fields[pos-1]
		}
		return m, nil

	case "down", "tab":
		m.blurCursor()
		if pos < len(fields)-1 {
			m.cursor = fields[pos+1]
		}
		return m, nil

	case "left":
		m.step(-1)
		return m, nil

	case "right":
		m.step(+1)
		return m, nil

	case "enter":
		m.commitCursor()
		return m, nil

	case "esc":
		if m.editing() {
			m.blurCursor()
			return m, nil
		}
		return m, tea.Quit

	case "s":
		if !m.editing() {
			return m.saveDraft()
		}

	case "backspace":
		if f, ok := m.inputs[m.cursor]; ok {
			text := f.Text()
			if len(text) > 0 {
				m.typeInto(text[:len(text)-1])
			}
			return m, nil
		}
	}

	if key := msg.String(); len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		if f, ok := m.inputs[m.cursor]; ok {
			text := key
			if f.Editing() {
				text = f.Text() + key
			}
			m.typeInto(text)
			return m, nil
		}
	}
	return m, nil
}

// editing reports whether the cursor's field holds provisional text.
func (m configuratorModel) editing() bool {
	f, ok := m.inputs[m.cursor]
	return ok && f.Editing()
}

// typeInto stores text as the cursor field's provisional value and, when
// it parses, immediately resolves it so the preview tracks the keystroke.
func (m *configuratorModel) typeInto(text string) {
	f := m.inputs[m.cursor].WithInput(text)
	m.inputs[m.cursor] = f
	if v, ok := f.Parse(); ok {
		m.applyNumeric(m.cursor, v)
		m.inputs[m.cursor] = m.inputs[m.cursor].WithInput(text)
	}
}

// commitCursor ends the edit on the cursor field, settling on the resolved
// value.
func (m *configuratorModel) commitCursor() {
	m.blurCursor()
}

func (m *configuratorModel) blurCursor() {
	f, ok := m.inputs[m.cursor]
	if !ok || !f.Editing() {
		return
	}
	if v, parsed := f.Parse(); parsed {
		m.applyNumeric(m.cursor, v)
	} else {
		m.apply(resolve.Normalize{})
	}
	m.inputs[m.cursor] = m.inputs[m.cursor].Blur(m.committedValue(m.cursor))
}

// committedValue reads the resolved value backing a numeric field.
func (m *configuratorModel) committedValue(id fieldID) int {
	c := m.state.Config
	switch id {
	case fieldLength:
		return c.LengthMm
	case fieldWidth:
		return c.WidthMm
	case fieldThickness:
		return c.ThicknessMm
	case fieldEdgeRadius:
		return c.EdgeRadiusMm
	case fieldQuantity:
		return c.Quantity
	}
	return 0
}

func (m *configuratorModel) applyNumeric(id fieldID, v int) {
	switch id {
	case fieldLength:
		m.apply(resolve.SetLength{Mm: v})
	case fieldWidth:
		m.apply(resolve.SetWidth{Mm: v})
	case fieldThickness:
		m.apply(resolve.SetThickness{Mm: v})
	case fieldEdgeRadius:
		m.apply(resolve.SetEdgeRadius{Mm: v})
	case fieldQuantity:
		m.apply(resolve.SetQuantity{N: v})
	}
}

// step adjusts the cursor field by one unit in the given direction.
func (m *configuratorModel) step(dir int) {
	c := m.state.Config
	switch m.cursor {
	case fieldShape:
		m.apply(resolve.SetShape{Shape: cycle(shapeOrder, c.Shape, dir)})
	case fieldLength:
		m.apply(resolve.SetLength{Mm: c.LengthMm + dir*10})
	case fieldWidth:
		m.apply(resolve.SetWidth{Mm: c.WidthMm + dir*10})
	case fieldThickness:
		m.stepThickness(dir)
	case fieldEdgeRadius:
		m.apply(resolve.SetEdgeRadius{Mm: c.EdgeRadiusMm + dir*5})
	case fieldExponent:
		m.apply(resolve.SetExponent{Value: c.SuperEllipseExponent + float64(dir)*0.5})
	case fieldMaterial:
		m.stepMaterial(dir)
	case fieldEdgeProfile:
		m.apply(resolve.SetEdgeProfile{Profile: cycle(profileOrder, c.EdgeProfile, dir)})
	case fieldQuantity:
		m.apply(resolve.SetQuantity{N: c.Quantity + dir})
	}
}

// stepThickness moves to the adjacent entry of the active thickness set
// rather than snapping an arbitrary increment.
func (m *configuratorModel) stepThickness(dir int) {
	set := m.state.ActiveThicknesses()
	cur := m.state.Config.ThicknessMm
	idx := 0
	for i, mm := range set {
		if mm == cur {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 || idx >= len(set) {
		return
	}
	m.apply(resolve.SetThickness{Mm: set[idx]})
}

// stepMaterial cycles through none plus the catalogue, reselecting limits
// and thicknesses as it goes.
func (m *configuratorModel) stepMaterial(dir int) {
	m.materialIdx += dir
	if m.materialIdx < -1 {
		m.materialIdx = len(m.materials) - 1
	}
	if m.materialIdx >= len(m.materials) {
		m.materialIdx = -1
	}
	if m.materialIdx < 0 {
		m.apply(resolve.SelectMaterial{Material: nil})
		return
	}
	m.apply(resolve.SelectMaterial{Material: &m.materials[m.materialIdx]})
}

// cycle returns the entry dir steps away from current, wrapping.
func cycle[T comparable](order []T, current T, dir int) T {
	idx := 0
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	return order[idx]
}

func (m configuratorModel) saveDraft() (tea.Model, tea.Cmd) {
	store, err := openDraftStore()
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	draft := session.NewDraft(fmt.Sprintf("%s %d×%d", m.state.Config.Shape, m.state.Config.LengthMm, m.state.Config.WidthMm), m.state.Config)
	if err := store.Save(draft); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.savedDraft = draft
	return m, tea.Quit
}

// =============================================================================
// View
// =============================================================================

func (m configuratorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Plank Configurator"))
	b.WriteString("\n")
	b.WriteString(fieldDimStyle.Render("↑/↓ field  ←/→ adjust  0-9 type  ⏎ commit  s save draft  q quit"))
	b.WriteString("\n\n")

	for _, id := range m.fields() {
		b.WriteString(m.renderField(id))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderEstimate())
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(m.status))
	}
	b.WriteString("\n")
	return b.String()
}

func (m configuratorModel) renderField(id fieldID) string {
	cursor := "  "
	style := fieldNormalStyle
	if id == m.cursor {
		cursor = "▸ "
		style = fieldSelectedStyle
	}

	label, value := m.fieldText(id)
	if f, ok := m.inputs[id]; ok && f.Editing() && id == m.cursor {
		value = fieldEditStyle.Render(f.Text() + "▏")
	} else {
		value = style.Render(value)
	}

	labelStyle := fieldDimStyle.Width(14)
	return cursor + labelStyle.Render(label) + value
}

func (m configuratorModel) fieldText(id fieldID) (label, value string) {
	c := m.state.Config
	lim := resolve.EffectiveLimits(c.Shape, m.state.Material)

	switch id {
	case fieldShape:
		return "shape", string(c.Shape)
	case fieldLength:
		if c.Shape == tabletop.ShapeRound {
			return "diameter", fmt.Sprintf("%d mm  (max %d)", c.LengthMm, lim.MaxLengthMm)
		}
		return "length", fmt.Sprintf("%d mm  (max %d)", c.LengthMm, lim.MaxLengthMm)
	case fieldWidth:
		return "width", fmt.Sprintf("%d mm  (max %d)", c.WidthMm, lim.MaxWidthMm)
	case fieldThickness:
		set := make([]string, 0, 8)
		for _, mm := range m.state.ActiveThicknesses() {
			s := fmt.Sprintf("%d", mm)
			if mm == c.ThicknessMm {
				s = StyleHighlight.Render(s)
			}
			set = append(set, s)
		}
		return "thickness", strings.Join(set, " ")
	case fieldEdgeRadius:
		return "edge radius", fmt.Sprintf("%d mm", c.EdgeRadiusMm)
	case fieldExponent:
		return "exponent", fmt.Sprintf("%.1f", c.SuperEllipseExponent)
	case fieldMaterial:
		if m.state.Material == nil {
			return "material", fieldDimStyle.Render("none")
		}
		return "material", m.state.Material.Name
	case fieldEdgeProfile:
		return "edge", string(c.EdgeProfile)
	case fieldQuantity:
		return "quantity", fmt.Sprintf("%d", c.Quantity)
	}
	return "", ""
}

func (m configuratorModel) renderEstimate() string {
	e := m.estimate
	if e.State == "" || e.State == pricing.StateIdle {
		return fieldDimStyle.Render("estimating…")
	}

	price := StyleHighlight.Render(fmt.Sprintf("%.2f", e.Price))
	switch e.State {
	case pricing.StateEstimating:
		return price + " " + fieldDimStyle.Render("· estimating…")
	case pricing.StateSettled:
		return price + " " + StyleSuccess.Render("· confirmed")
	case pricing.StateDegraded:
		return price + " " + StyleWarning.Render("· estimate only") + "\n" + fieldDimStyle.Render(e.ErrMessage)
	}
	return price
}
