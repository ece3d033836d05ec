package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/scroller/internal/config"
	"github.com/charmbracelet/scroller/internal/scroller"
	"github.com/charmbracelet/scroller/internal/scroller/scrollertest"
	"github.com/charmbracelet/x/exp/charmtone"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	traceCmd.Flags().Float64("viewport", 20, "Viewport length in cells")
	traceCmd.Flags().Int("steps", 10, "Number of scroll steps when no positions are given")
	traceCmd.Flags().Float64("by", 0, "Cells per scroll step when no positions are given, defaults to one item")
	traceCmd.Flags().StringP("format", "f", "", "Output format: table, json or yaml")
}

var traceCmd = &cobra.Command{
	Use:   "trace [position...]",
	Short: "Replay scroll positions and print the pool window",
	Long: heredoc.Doc(`
		Replay a sequence of scroll positions without a terminal UI and print,
		for every position, the first visible item, the branch the recycler
		took and the item each pooled widget shows.

		Positions are distances from the start of the list in cells. Negative
		positions scroll past the start.
	`),
	Example: heredoc.Doc(`
		# Scroll one row at a time
		scroller trace --steps 5

		# Jump far enough to move the whole pool
		scroller trace 0 3 300 297 -f json

		# Wrap around a short loop
		scroller trace --loop -n 5 -- 0 -3 -6 -9
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		viewport, _ := cmd.Flags().GetFloat64("viewport")
		opts := traceOptions{
			Config:   cfg.Scroller(),
			Viewport: viewport,
			Item:     itemSize(cfg),
			Start:    cfg.StartIndex,
		}

		positions, err := parsePositions(args)
		if err != nil {
			return err
		}
		if len(positions) == 0 {
			steps, _ := cmd.Flags().GetInt("steps")
			by, _ := cmd.Flags().GetFloat64("by")
			if by == 0 {
				by = opts.Item + max(0, cfg.Spacing)
			}
			for i := 1; i <= steps; i++ {
				positions = append(positions, float64(i)*by)
			}
		}

		trace, err := runTrace(opts, positions)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()
		if format == "" {
			format = "json"
			if f, ok := out.(term.File); ok && term.IsTerminal(f.Fd()) {
				format = "table"
			}
		}
		return writeTrace(out, format, trace)
	},
}

// itemSize returns the size of an item along the scroll axis.
func itemSize(cfg *config.Config) float64 {
	if cfg.Direction == scroller.Horizontal {
		return float64(cfg.Item.Width)
	}
	return float64(cfg.Item.Height)
}

func parsePositions(args []string) ([]float64, error) {
	positions := make([]float64, 0, len(args))
	for _, arg := range args {
		p, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", arg, err)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

type traceOptions struct {
	Config scroller.Config
	// Viewport and Item are lengths along the scroll axis.
	Viewport float64
	Item     float64
	Start    int
}

// traceStep is the state of the pool after one scroll position.
type traceStep struct {
	Position float64 `json:"position" yaml:"position"`
	First    int     `json:"first" yaml:"first"`
	Last     int     `json:"last" yaml:"last"`
	Path     string  `json:"path" yaml:"path"`
	Delta    int     `json:"delta" yaml:"delta"`
	Moves    int     `json:"moves" yaml:"moves"`
	// Window holds the virtual index of every slot, in slot order.
	Window []int `json:"window" yaml:"window,flow"`
	// Display holds the item index every slot shows when looping.
	Display []int `json:"display,omitempty" yaml:"display,flow,omitempty"`
}

// runTrace initializes a headless list and scrolls it through positions. The
// first step is the state right after initialization.
func runTrace(opts traceOptions, positions []float64) ([]traceStep, error) {
	cfg := opts.Config
	cfg.Staggered = false

	width, height := 1.0, opts.Viewport
	if cfg.Direction == scroller.Horizontal {
		width, height = opts.Viewport, 1
	}
	surface := scrollertest.NewSurface(width, height)
	tmpl := scrollertest.NewTemplate(opts.Item, opts.Item)

	ctrl := scroller.New(cfg, surface, tmpl)
	defer ctrl.Close()
	if err := ctrl.Initialize(opts.Start); err != nil {
		return nil, err
	}

	state := ctrl.State()
	steps := []traceStep{
		newTraceStep(ctrl, position(cfg.Direction, surface.Offset()), scroller.Result{First: state.First, Last: state.LastOld}),
	}

	for _, pos := range positions {
		offset := scroller.Vec{X: pos}
		if cfg.Direction == scroller.Vertical {
			offset = scroller.Vec{Y: -pos}
		}

		var res scroller.Result
		if offset == surface.Offset() {
			state := ctrl.State()
			res = scroller.Result{First: state.First, Last: state.LastOld}
		} else {
			surface.SetOffset(offset)
			res = ctrl.LastResult()
		}
		steps = append(steps, newTraceStep(ctrl, pos, res))
	}
	return steps, nil
}

// position returns the distance of offset from the start of the content.
func position(dir scroller.Direction, offset scroller.Vec) float64 {
	if dir == scroller.Horizontal {
		return offset.X
	}
	return 0 - offset.Y
}

func newTraceStep(ctrl *scroller.Controller, pos float64, res scroller.Result) traceStep {
	step := traceStep{
		Position: pos,
		First:    res.First,
		Last:     res.Last,
		Path:     res.Path.String(),
		Delta:    res.Delta,
		Moves:    res.Moves,
		Window:   ctrl.Window(),
	}
	cfg := ctrl.Config()
	if cfg.Loop {
		for _, idx := range step.Window {
			step.Display = append(step.Display, scroller.DisplayIndex(idx, cfg.Count))
		}
	}
	return step
}

func writeTrace(w io.Writer, format string, steps []traceStep) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(steps)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(steps); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		_, err := fmt.Fprintln(colorprofile.NewWriter(w, os.Environ()), traceTable(steps))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func traceTable(steps []traceStep) string {
	var (
		header = lipgloss.NewStyle().Foreground(charmtone.Charple).Bold(true).Padding(0, 1)
		cell   = lipgloss.NewStyle().Foreground(charmtone.Ash).Padding(0, 1)
		reset  = cell.Foreground(charmtone.Coral)
		border = lipgloss.NewStyle().Foreground(charmtone.Charcoal)
	)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("POSITION", "FIRST", "LAST", "PATH", "DELTA", "MOVES", "WINDOW").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case steps[row].Path == scroller.PathReset.String():
				return reset
			default:
				return cell
			}
		})
	for _, s := range steps {
		window := s.Window
		if s.Display != nil {
			window = s.Display
		}
		t.Row(
			strconv.FormatFloat(s.Position, 'f', -1, 64),
			strconv.Itoa(s.First),
			strconv.Itoa(s.Last),
			s.Path,
			strconv.Itoa(s.Delta),
			strconv.Itoa(s.Moves),
			joinInts(window),
		)
	}
	return t.Render()
}

func joinInts(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
