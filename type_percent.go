package debtplan

import "fmt"

// Percent is a rate expressed in percents, 18 for 18%.
type Percent float64

// Rate returns the percent as a decimal fraction.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
