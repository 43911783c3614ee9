package marketfolio

import "fmt"

// Percent is a change percentage as reported by the backend (already scaled,
// 1.5 means 1.5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
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

// Direction reports the display direction of the change: "up" for a positive
// change, "down" otherwise.
func (p Percent) Direction() string {
	if p > 0 {
		return "up"
	}
	return "down"
}

// Color returns the display color convention for the change.
func (p Percent) Color() string {
	if p > 0 {
		return "green"
	}
	return "red"
}
