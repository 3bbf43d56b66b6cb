package analysis

// ChartKind tags the payload shape a charting collaborator should expect:
// category+value pairs for bar/histogram, {x,y} points for scatter and
// cluster_scatter, a five-number summary per group for boxplot.
type ChartKind string

const (
	ChartHistogram      ChartKind = "histogram"
	ChartScatter        ChartKind = "scatter"
	ChartClusterScatter ChartKind = "cluster_scatter"
	ChartBar            ChartKind = "bar"
	ChartBoxplot        ChartKind = "boxplot"
)

// Point is a single scatter coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FiveNumberSummary is the boxplot payload for one group
type FiveNumberSummary struct {
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// ChartDataset is one labeled series. Exactly one of Values, Points or Box
// is populated, according to the chart kind.
type ChartDataset struct {
	Label  string             `json:"label"`
	Values []float64          `json:"values,omitempty"`
	Points []Point            `json:"points,omitempty"`
	Box    *FiveNumberSummary `json:"box,omitempty"`
	Color  string             `json:"color,omitempty"`
}

// Chart is the kind-tagged descriptor consumed by the external charting
// collaborator. Labels carry category names for bar/histogram kinds and axis
// names elsewhere.
type Chart struct {
	Kind     ChartKind      `json:"kind"`
	Title    string         `json:"title"`
	XLabel   string         `json:"x_label,omitempty"`
	YLabel   string         `json:"y_label,omitempty"`
	Labels   []string       `json:"labels,omitempty"`
	Datasets []ChartDataset `json:"datasets"`
}
