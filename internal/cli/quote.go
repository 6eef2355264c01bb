package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/plankworks/plank/pkg/catalog"
	"github.com/plankworks/plank/pkg/config"
	"github.com/plankworks/plank/pkg/resolve"
	"github.com/plankworks/plank/pkg/tabletop"
)

// quoteOpts holds the command-line flags for the quote command.
type quoteOpts struct {
	shape      string
	lengthMm   int
	widthMm    int
	thickness  int
	edgeRadius int
	exponent   float64
	quantity   int
	material   string
	draft      string
	offline    bool
	noCache    bool
	asJSON     bool
}

// newQuoteCmd creates the quote command. It resolves the flags into a
// consistent configuration, then prices it along both paths: the local
// estimate always, the authoritative service when one is configured.
func newQuoteCmd(configPath *string) *cobra.Command {
	def := tabletop.Default()
	opts := quoteOpts{
		shape:     string(def.Shape),
		lengthMm:  def.LengthMm,
		widthMm:   def.WidthMm,
		thickness: def.ThicknessMm,
		exponent:  def.SuperEllipseExponent,
		quantity:  def.Quantity,
	}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a tabletop configuration",
		Long: `Price a tabletop configuration.

Dimensions are clamped and the thickness snapped exactly as the
interactive configurator would, so the quoted configuration may differ
from the flags you passed; the resolved values are printed alongside
the price.

Examples:
  plank quote --length 2000 --width 900 --thickness 25
  plank quote --shape round --length 1100 --material oak-veneer
  plank quote --draft 5f8c... --quantity 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, &opts, *configPath)
		},
	}

	cmd.Flags().StringVar(&opts.shape, "shape", opts.shape, "shape (rect, rounded-rect, round-top, round, ellipse, super-ellipse)")
	cmd.Flags().IntVar(&opts.lengthMm, "length", opts.lengthMm, "length in mm")
	cmd.Flags().IntVar(&opts.widthMm, "width", opts.widthMm, "width in mm")
	cmd.Flags().IntVar(&opts.thickness, "thickness", opts.thickness, "thickness in mm")
	cmd.Flags().IntVar(&opts.edgeRadius, "edge-radius", 0, "corner radius in mm (rounded-rect only)")
	cmd.Flags().Float64Var(&opts.exponent, "exponent", opts.exponent, "super-ellipse exponent")
	cmd.Flags().IntVarP(&opts.quantity, "quantity", "q", opts.quantity, "order quantity")
	cmd.Flags().StringVarP(&opts.material, "material", "m", "", "catalogue material id")
	cmd.Flags().StringVar(&opts.draft, "draft", "", "start from a saved draft id")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "skip the authoritative pricing service")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the quote cache")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit the result as JSON")

	return cmd
}

func runQuote(cmd *cobra.Command, opts *quoteOpts, configPath string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	st, err := buildState(cmd, opts, cfg)
	if err != nil {
		return err
	}

	runner := newRunner(ctx, cfg, opts.offline, opts.noCache)
	defer runner.Cache.Close()

	res := runner.Quote(ctx, st.Config.Payload())

	if opts.asJSON {
		return writeJSONReport(struct {
			Config tabletop.Config `json:"config"`
			Local  float64         `json:"local"`
			Price  *float64        `json:"price,omitempty"`
		}{st.Config, res.Local, res.Authoritative}, "")
	}

	c := st.Config
	fmt.Println(StyleTitle.Render("Quote"))
	printKeyValue("shape", string(c.Shape))
	printKeyValue("size", fmt.Sprintf("%d × %d × %d mm", c.LengthMm, c.WidthMm, c.ThicknessMm))
	if st.Material != nil {
		printKeyValue("material", st.Material.Name)
	}
	printKeyValue("quantity", fmt.Sprintf("%d", c.Quantity))
	printPriceLine("estimate", res.Local, false)
	if res.Authoritative != nil {
		printPriceLine("price", *res.Authoritative, res.CacheHit)
	} else if res.Degraded != "" {
		printWarning("estimate only: %s", res.Degraded)
	}
	return nil
}

// buildState folds the flags into a resolved configurator state. Events go
// through the same resolver as interactive edits, so every clamp and snap
// applies.
func buildState(cmd *cobra.Command, opts *quoteOpts, cfg config.Config) (resolve.State, error) {
	st := resolve.NewState()

	if opts.draft != "" {
		id, err := uuid.Parse(opts.draft)
		if err != nil {
			return resolve.State{}, fmt.Errorf("invalid draft id: %w", err)
		}
		store, err := openDraftStore()
		if err != nil {
			return resolve.State{}, err
		}
		draft, err := store.Load(id)
		if err != nil {
			return resolve.State{}, err
		}
		st.Config = draft.Config
	}

	if opts.material != "" {
		materials, err := loadMaterials(cmd.Context(), cfg)
		if err != nil {
			return resolve.State{}, err
		}
		m := catalog.FindByID(materials, opts.material)
		if m == nil {
			return resolve.State{}, fmt.Errorf("unknown material: %s", opts.material)
		}
		st = resolve.Apply(st, resolve.SelectMaterial{Material: m})
	}

	flags := cmd.Flags()
	if flags.Changed("shape") {
		shape := tabletop.Shape(opts.shape)
		if !shape.Valid() || shape == tabletop.ShapeCustom {
			return resolve.State{}, fmt.Errorf("unknown shape: %s", opts.shape)
		}
		st = resolve.Apply(st, resolve.SetShape{Shape: shape})
	}
	if flags.Changed("length") {
		st = resolve.Apply(st, resolve.SetLength{Mm: opts.lengthMm})
	}
	if flags.Changed("width") {
		st = resolve.Apply(st, resolve.SetWidth{Mm: opts.widthMm})
	}
	if flags.Changed("thickness") {
		st = resolve.Apply(st, resolve.SetThickness{Mm: opts.thickness})
	}
	if flags.Changed("edge-radius") {
		st = resolve.Apply(st, resolve.SetEdgeRadius{Mm: opts.edgeRadius})
	}
	if flags.Changed("exponent") {
		st = resolve.Apply(st, resolve.SetExponent{Value: opts.exponent})
	}
	if flags.Changed("quantity") {
		st = resolve.Apply(st, resolve.SetQuantity{N: opts.quantity})
	}
	return resolve.Apply(st, resolve.Normalize{}), nil
}
