package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/date"
	md "github.com/nao1215/markdown"
)

// PayoffMarkdown renders the payoff of debt d with a fixed monthly payment,
// starting on start.
func PayoffMarkdown(d debtplan.Debt, payment float64, p debtplan.Payoff, start date.Date, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Debt Payoff"
	if d.Name != "" {
		title = fmt.Sprintf("Debt Payoff for %s", d.Name)
	}
	doc.H1(title)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Payoff Date"),
			md.Bold(p.Date(start).String()),
		},
		Rows: [][]string{
			{"Balance", debtplan.M(d.Principal, cur).String()},
			{"APR", d.APR().String()},
			{"Monthly Payment", debtplan.M(payment, cur).String()},
			{"Months", fmt.Sprint(p.Months)},
			{"Total Paid", debtplan.M(p.TotalPaid, cur).String()},
			{"Total Interest", debtplan.M(p.TotalInterest, cur).String()},
		},
	})
	doc.PlainText("This is an approximate payoff timeline assuming a fixed payment and interest rate.")

	return doc.String()
}
