package xformcheck

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Faultbox/twinview/pkg/xform"
)

// ErrMismatch is returned by verify when the methods disagree beyond the tolerance.
var ErrMismatch = errors.New("library and manual matrices differ")

func verifyCommand() *cobra.Command {
	var tolerance float32

	cmd := &cobra.Command{
		Use:   "verify <script>",
		Short: "Compare library and manual matrices for every operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := xform.ParseFile(args[0])
			if err != nil {
				return err
			}
			return verify(cmd, args[0], s, tolerance)
		},
	}

	cmd.Flags().Float32Var(&tolerance, "tolerance", xform.DefaultTolerance, "largest allowed element difference")
	return cmd
}

func verify(cmd *cobra.Command, path string, s *xform.Script, tol float32) error {
	out := cmd.OutOrStdout()

	diffs, model, err := xform.Compare(s)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(diffs))
	failed := make(map[int]bool)
	for i, d := range diffs {
		status := iconSuccess
		if !d.Within(tol) {
			status = iconError
			failed[i] = true
		}
		rows = append(rows, []string{
			strconv.Itoa(d.Op.Order),
			d.Op.Kind.String(),
			describe(d.Op),
			fmt.Sprintf("%.2e", d.Max),
			status,
		})
	}

	printTitle(out, "%s: %d operations", path, s.Len())
	if len(rows) > 0 {
		t := newTable([]string{"Order", "Kind", "Parameters", "Max diff", ""}, rows, func(row, col int) lipgloss.Style {
			switch {
			case col == 4 && failed[row]:
				return styleError
			case col == 4:
				return styleSuccess
			case col == 3:
				return styleNumber
			}
			return lipgloss.NewStyle()
		})
		fmt.Fprintln(out, t.Render())
	}

	bad := len(failed)
	if model > tol {
		bad++
	}
	if bad > 0 {
		printError(out, "composed model differs by %.2e (tolerance %.0e)", model, tol)
		printDetail(out, "%d operation(s) out of tolerance", len(failed))
		return ErrMismatch
	}
	printSuccess(out, "composed model differs by %.2e (tolerance %.0e)", model, tol)
	return nil
}

// describe formats an operation's payload without its order and kind.
func describe(op xform.Op) string {
	switch op.Kind {
	case xform.Translation:
		return fmt.Sprintf("offset %s", vec(op.Offset.Array()))
	case xform.Rotation:
		return fmt.Sprintf("%g° about %s at %s", op.Degrees, vec(op.Axis.Array()), vec(op.Point.Array()))
	case xform.Scaling:
		return fmt.Sprintf("by %s about %s", vec(op.Factors.Array()), vec(op.Point.Array()))
	case xform.Reflection:
		p := op.Plane
		return fmt.Sprintf("plane %gx %+gy %+gz %+g = 0", p[0], p[1], p[2], p[3])
	case xform.Shearing:
		return fmt.Sprintf("axis %c by %g", op.ShearAxis, op.Shear)
	}
	return ""
}

func vec(v [3]float32) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
