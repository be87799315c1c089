package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/debtplan"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders a strategy plan as an ordered waterfall table.
func PlanMarkdown(plan debtplan.Plan, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Plan", titleCase(string(plan.Strategy))))
	doc.PlainText(fmt.Sprintf("Monthly budget of %s starting on %s.", debtplan.M(plan.Budget, cur), plan.Start))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"#", "Debt", "Balance", "APR", "Payment", "Months", "Payoff Date"},
	}
	for i, row := range plan.Rows {
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(i + 1),
			row.Debt.Name,
			debtplan.M(row.Debt.Principal, cur).String(),
			row.Debt.APR().String(),
			debtplan.M(row.Payment, cur).String(),
			fmt.Sprint(row.Months),
			row.PayoffDate.String(),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Debt Free In"), md.Bold(fmt.Sprintf("%d months", plan.Months()))},
		Rows: [][]string{
			{"Total Paid", debtplan.M(plan.TotalPaid(), cur).String()},
			{"Total Interest", debtplan.M(plan.TotalInterest(), cur).String()},
		},
	})

	if len(plan.Skipped) > 0 {
		doc.H2("Already Paid Off")
		var skipped []string
		for _, d := range plan.Skipped {
			skipped = append(skipped, d.Name)
		}
		doc.BulletList(skipped...)
		doc.LF()
	}

	doc.PlainText(plan.Message)
	return doc.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
