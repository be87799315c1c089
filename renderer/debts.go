package renderer

import (
	"bytes"

	"github.com/etnz/debtplan"
	md "github.com/nao1215/markdown"
)

// DebtsMarkdown renders a debt inventory with its total.
func DebtsMarkdown(debts []debtplan.Debt, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debts")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Name", "Balance", "APR", "Type", "Category", "Min. Payment"},
	}
	for _, d := range debts {
		minPayment := "-"
		if m := debtplan.M(d.MinPayment, cur); !m.IsZero() {
			minPayment = m.String()
		}
		table.Rows = append(table.Rows, []string{
			d.Name,
			debtplan.M(d.Principal, cur).String(),
			d.APR().String(),
			d.Term.String(),
			d.Category.String(),
			minPayment,
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(debtplan.M(debtplan.TotalPrincipal(debts), cur).String()),
		"", "", "", "",
	})
	doc.Table(table)

	return doc.String()
}
