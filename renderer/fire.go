package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/lifeplan"
)

// Fire renders the net worth timeline and the outcome of the FIRE goal.
// goal is nil when the goal is disabled.
func Fire(points []lifeplan.NetWorthPoint, goal *lifeplan.GoalResult) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Financial Independence\n\n")
	switch {
	case goal == nil:
		fmt.Fprint(&b, "The FIRE goal is disabled for this plan.\n\n")
	case goal.Achieved:
		fmt.Fprintf(&b, "Target **%s** is reached in **%d**, at age **%d**", goal.Target, goal.Year, goal.Age)
		if len(points) > 0 {
			if n, ok := goal.YearsFrom(points[0].Year); ok {
				fmt.Fprintf(&b, ", %d years after the plan start", n)
			}
		}
		fmt.Fprint(&b, ".\n\n")
	default:
		fmt.Fprintf(&b, "Target **%s** is not reached within the plan. Final progress: %s.\n\n", goal.Target, goal.Progress)
	}

	fmt.Fprintln(&b, "| Year | Age | Cash | Assets | Net Worth | |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---:|")
	for _, pt := range points {
		mark := ""
		if goal != nil && goal.Achieved && goal.Year == pt.Year {
			mark = "FIRE"
		}
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %s |\n",
			pt.Year,
			pt.Age,
			pt.Cash,
			pt.Asset,
			pt.Total,
			mark,
		)
	}
	return b.String()
}
