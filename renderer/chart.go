package renderer

import "marketfolio"

// sparkline glyphs, lowest to highest.
var sparks = []rune("▁▂▃▄▅▆▇█")

// ChartMarkdown renders a price series: a sparkline of the whole series plus
// the range figures.
func ChartMarkdown(name string, points []marketfolio.ChartPoint, v View) string {
	r := newRenderer(v)
	r.Printf("# %s price history\n\n", name)
	if len(points) == 0 {
		r.Printf("No chart data.\n")
		return r.String()
	}

	lo, hi := points[0].Price, points[0].Price
	for _, p := range points[1:] {
		if p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}

	line := make([]rune, 0, len(points))
	for _, p := range points {
		i := 0
		if hi > lo {
			i = int((p.Price - lo) / (hi - lo) * float64(len(sparks)-1))
		}
		line = append(line, sparks[i])
	}
	r.Printf("```\n%s\n```\n\n", string(line))

	first, last := points[0], points[len(points)-1]
	r.Printf("| | |\n")
	r.Printf("|:---|---:|\n")
	r.Printf("| From | %s at %s |\n", first.Time.Format("2006-01-02"), r.price(first.Price))
	r.Printf("| To | %s at %s |\n", last.Time.Format("2006-01-02"), r.price(last.Price))
	r.Printf("| Low | %s |\n", r.price(lo))
	r.Printf("| High | %s |\n", r.price(hi))
	return r.String()
}
