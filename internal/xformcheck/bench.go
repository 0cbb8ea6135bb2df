package xformcheck

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/twinview/internal/logger"
	"github.com/Faultbox/twinview/pkg/xform"
)

func benchCommand() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench <script>",
		Short: "Time building and composing the script with each method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations < 1 {
				return fmt.Errorf("iterations must be at least 1, got %d", iterations)
			}
			s, err := xform.ParseFile(args[0])
			if err != nil {
				return err
			}
			return bench(cmd, args[0], s, iterations)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1000, "builds per method")
	return cmd
}

func bench(cmd *cobra.Command, path string, s *xform.Script, n int) error {
	out := cmd.OutOrStdout()

	var timings []xform.Timing
	for _, m := range []xform.Method{xform.Library, xform.Manual} {
		t, err := xform.Benchmark(s, m, n)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		logger.Debug("benchmark done",
			zap.Stringer("method", m),
			zap.Int("iterations", t.Iterations),
			zap.Duration("total", t.Total),
		)
		timings = append(timings, t)
	}

	fastest := timings[0].PerBuild()
	for _, t := range timings[1:] {
		fastest = min(fastest, t.PerBuild())
	}

	rows := make([][]string, 0, len(timings))
	for _, t := range timings {
		ratio := "-"
		if fastest > 0 {
			ratio = fmt.Sprintf("%.2fx", float64(t.PerBuild())/float64(fastest))
		}
		rows = append(rows, []string{
			t.Method.String(),
			strconv.Itoa(t.Iterations),
			t.Total.String(),
			t.PerBuild().String(),
			ratio,
		})
	}

	printTitle(out, "%s: %d operations, %d builds per method", path, s.Len(), n)
	fmt.Fprintln(out, newTable([]string{"Method", "Builds", "Total", "Per build", "Relative"}, rows, nil).Render())
	return nil
}
