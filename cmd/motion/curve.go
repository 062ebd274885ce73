package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/motion/internal/envelope"
	"github.com/vango-dev/motion/pkg/presetpack"
)

func curveCmd() *cobra.Command {
	var (
		from float64
		to   float64
		fps  int
	)

	cmd := &cobra.Command{
		Use:   "curve <spring|timing> <preset>",
		Short: "Plot a preset's envelope in the terminal",
		Long: `Sample a preset into a value-over-time curve and plot it.

The spring plot shows overshoot when the preset is underdamped; the
timing plot shows the ease-in-out shape.

Examples:
  motion curve spring bouncy
  motion curve timing slow
  motion curve spring gentle --from=20 --to=0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurve(args[0], args[1], from, to, fps)
		},
	}

	cmd.Flags().Float64Var(&from, "from", 0, "Starting value")
	cmd.Flags().Float64Var(&to, "to", 1, "Target value")
	cmd.Flags().IntVar(&fps, "fps", envelope.DefaultFPS, "Sampling rate")

	return cmd
}

func runCurve(kind, name string, from, to float64, fps int) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	library := presetpack.NewLibrary()
	if paths := cfg.PackPaths(); len(paths) > 0 {
		if err := library.Reload(paths); err != nil {
			return err
		}
	}

	var env envelope.Envelope
	switch kind {
	case "spring":
		preset, ok := library.Spring(name)
		if !ok {
			return fmt.Errorf("unknown spring preset %q", name)
		}
		env = envelope.Spring(preset, from, to, fps)
	case "timing":
		preset, ok := library.Timing(name)
		if !ok {
			return fmt.Errorf("unknown timing preset %q", name)
		}
		env = envelope.Timing(from, to, preset.Duration, fps)
	default:
		return fmt.Errorf("kind must be spring or timing, got %q", kind)
	}

	fmt.Println()
	fmt.Printf("  %s %s: %v → %v over %s (%d samples at %dfps)\n",
		kind, name, from, to, env.Duration().Round(1e6), len(env.Samples), env.FPS)
	fmt.Println()
	plot(env.Samples, 64, 16)
	fmt.Println()
	if !env.Settled {
		warn("Spring did not settle within the sample cap")
	}
	return nil
}

// plot draws samples as a rows×cols character grid, one column per
// resampled point, min to max over the full height.
func plot(samples []float64, cols, rows int) {
	if len(samples) == 0 {
		return
	}

	min, max := samples[0], samples[0]
	for _, s := range samples {
		min = math.Min(min, s)
		max = math.Max(max, s)
	}
	if max == min {
		max = min + 1
	}

	if cols > len(samples) {
		cols = len(samples)
	}
	grid := make([][]byte, rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", cols))
	}

	for col := 0; col < cols; col++ {
		idx := col * (len(samples) - 1) / maxInt(cols-1, 1)
		v := samples[idx]
		row := int(math.Round((v - min) / (max - min) * float64(rows-1)))
		grid[rows-1-row][col] = '*'
	}

	for i, line := range grid {
		label := "        "
		if i == 0 {
			label = fmt.Sprintf("%7.3g ", max)
		} else if i == rows-1 {
			label = fmt.Sprintf("%7.3g ", min)
		}
		fmt.Printf("  %s|%s\n", label, line)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
