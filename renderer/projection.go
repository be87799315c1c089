package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/debtplan"
	"github.com/etnz/debtplan/date"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a balance trajectory, one row every `every`
// months (every month if every <= 1). The first and last points are always
// rendered.
func ProjectionMarkdown(title string, s debtplan.Series, start date.Date, every int, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Balance Projection for %s", title))
	if s.Len() == 0 {
		doc.PlainText("Nothing to project.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Period", "Date", "Balance"},
	}
	dates := s.Dates(start)
	last := s.Len() - 1
	for i := range s.Balances {
		if every > 1 && i%every != 0 && i != last {
			continue
		}
		table.Rows = append(table.Rows, []string{
			s.Labels[i],
			dates[i].String(),
			debtplan.M(s.Balances[i], cur).String(),
		})
	}
	doc.Table(table)

	if s.PaidOff() {
		doc.PlainText(fmt.Sprintf("Paid off after %d months, on %s.", last, dates[last]))
	} else {
		doc.PlainText(fmt.Sprintf("Not paid off after %d months: %s remaining.", last, debtplan.M(s.Final(), cur)))
	}
	return doc.String()
}
