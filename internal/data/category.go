package data

// Category is one tracked spending category. Order of the Categories
// slice is the stacking order of the bar chart, bottom to top, and the
// legend order.
type Category struct {
	Label string
	File  string // default data file name inside the data directory
	Color string // hex color shared by chart, legend, and export
}

// Categories is the fixed category table. Not mutated after startup.
var Categories = []Category{
	{Label: "Health", File: "health.json", Color: "#2ECC71"},
	{Label: "Military", File: "military.json", Color: "#E74C3C"},
	{Label: "Education", File: "education.json", Color: "#3498DB"},
}

// CategoryLabels returns the labels in stacking order.
func CategoryLabels() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = c.Label
	}
	return out
}

// CategoryColor returns the configured color for a label, or "" when the
// label is unknown.
func CategoryColor(label string) string {
	for _, c := range Categories {
		if c.Label == label {
			return c.Color
		}
	}
	return ""
}
