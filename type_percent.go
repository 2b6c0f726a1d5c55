package papertrade

import "fmt"

// Percent is a ratio expressed in percent points (1.0 means 1%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// compared with a fixed precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
