package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/lifeplan"
	md "github.com/nao1215/markdown"
)

// Report renders the ranked groups of an aggregation.
func Report(title string, slices []lifeplan.Slice) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(slices) == 0 {
		doc.PlainText("No transaction in this selection.")
		return doc.String()
	}
	table := md.TableSet{Header: []string{"#", "Group", "Transactions", "Yearly Total", "Share"}}
	for i, s := range slices {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			s.Label,
			fmt.Sprint(s.Count),
			s.Total.String(),
			s.Percentage.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Diagnostics renders the diagnostics of a projection as a list.
func Diagnostics(ds lifeplan.Diagnostics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Diagnostics")
	if len(ds) == 0 {
		doc.PlainText("Nothing to report.")
		return doc.String()
	}
	items := make([]string, 0, len(ds))
	for _, d := range ds {
		items = append(items, d.String())
	}
	doc.BulletList(items...)
	return doc.String()
}
