package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/lifeplan"
	md "github.com/nao1215/markdown"
)

// Accounts renders the summary of every account, then their balance at the
// end of each plan year.
func Accounts(accounts []lifeplan.AccountProjection) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No account in this plan.")
		return doc.String()
	}

	summary := md.TableSet{Header: []string{"Account", "Initial Balance", "Net Flows", "Final Balance"}}
	for _, a := range accounts {
		summary.Rows = append(summary.Rows, []string{
			accountName(a.Account),
			a.Account.InitialBalance.String(),
			a.Flows.SignedString(),
			a.Final.String(),
		})
	}
	doc.Table(summary)

	doc.H2("Balance per Year")
	header := []string{"Year"}
	for _, a := range accounts {
		header = append(header, accountName(a.Account))
	}
	balances := md.TableSet{Header: header}
	for i, pt := range accounts[0].Series {
		row := []string{fmt.Sprint(pt.Year)}
		for _, a := range accounts {
			row = append(row, a.Series[i].Balance.String())
		}
		balances.Rows = append(balances.Rows, row)
	}
	doc.Table(balances)

	return doc.String()
}

// Dividends renders a dividend series and its total.
func Dividends(title string, series []lifeplan.DividendPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{Header: []string{"Year", "Dividends"}}
	for _, d := range series {
		if d.Amount.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{fmt.Sprint(d.Year), d.Amount.String()})
	}
	if len(table.Rows) == 0 {
		doc.PlainText("No dividend over the plan.")
		return doc.String()
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), md.Bold(lifeplan.TotalDividends(series).String())})
	doc.Table(table)
	return doc.String()
}
