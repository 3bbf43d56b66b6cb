package render

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"coanalyst/domain/analysis"
)

// strongCorrelation is the absolute threshold above which a matrix cell is
// flagged in the rendered table.
const strongCorrelation = 0.7

// Render builds the View for a result
func Render(result *analysis.Result) *View {
	view := &View{
		Title:          result.Method.DisplayName(),
		Method:         string(result.Method),
		ResultType:     string(result.Type),
		Tiles:          renderTiles(result.Summary),
		Interpretation: result.Interpretation,
		GeneratedAt:    result.GeneratedAt.Time().Format(time.RFC3339),
	}

	switch {
	case result.Statistics != nil:
		view.Sections = append(view.Sections, statisticsSection(result))
	case result.CorrelationMatrix != nil:
		view.Sections = append(view.Sections, matrixSection(result))
	case result.Model != nil:
		view.Sections = append(view.Sections, modelSection(result.Model))
	case result.Clusters != nil:
		view.Sections = append(view.Sections, clusterSection(result.Clusters))
	case result.TTest != nil:
		view.Sections = append(view.Sections, ttestSection(result.TTest))
	case result.Quality != nil:
		view.Sections = append(view.Sections, qualitySection(result.Quality))
	}

	if result.ChartData != nil {
		view.Chart = renderChart(result.ChartData)
	}
	if view.Chart == nil {
		view.ChartFallback = "No chart is available for this result."
	}
	return view
}

// renderTiles formats the summary map into labeled tiles in stable key order
func renderTiles(summary map[string]interface{}) []Tile {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tiles := make([]Tile, 0, len(keys))
	for _, k := range keys {
		tiles = append(tiles, Tile{
			Label: labelFor(k),
			Value: FormatValue(summary[k]),
		})
	}
	return tiles
}

// labelFor turns a snake_case summary key into a title-case label
func labelFor(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatValue renders a summary value for display. Numbers below one keep
// four decimals, numbers below a thousand keep two, larger ones are grouped
// integers. Booleans render as yes/no and sequences are comma-joined.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case string:
		return val
	case int:
		return FormatNumber(float64(val))
	case int64:
		return FormatNumber(float64(val))
	case float32:
		return FormatNumber(float64(val))
	case float64:
		return FormatNumber(val)
	case []string:
		return strings.Join(val, ", ")
	case []interface{}:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// FormatNumber applies the magnitude-dependent number format
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs < 1:
		return strconv.FormatFloat(v, 'f', 4, 64)
	case abs < 1000:
		return strconv.FormatFloat(v, 'f', 2, 64)
	default:
		return groupDigits(int64(math.Round(v)))
	}
}

// groupDigits renders an integer with comma thousands separators
func groupDigits(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// statisticsSection renders one row per analyzed column. Row order follows
// the variables summary entry when present, falling back to sorted names.
func statisticsSection(result *analysis.Result) Section {
	order := variableOrder(result)

	rows := make([][]string, 0, len(order))
	for _, name := range order {
		cs, ok := result.Statistics[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(cs.Count),
			FormatNumber(cs.Mean),
			FormatNumber(cs.Median),
			FormatNumber(cs.Std),
			FormatNumber(cs.Min),
			FormatNumber(cs.Q25),
			FormatNumber(cs.Q75),
			FormatNumber(cs.Max),
		})
	}

	return Section{
		Title:   "Descriptive Statistics",
		Columns: []string{"Variable", "Count", "Mean", "Median", "Std", "Min", "Q25", "Q75", "Max"},
		Rows:    rows,
	}
}

func variableOrder(result *analysis.Result) []string {
	if vars, ok := result.Summary["variables"].([]string); ok && len(vars) > 0 {
		return vars
	}

	names := make([]string, 0, len(result.Statistics))
	for name := range result.Statistics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// matrixSection renders the correlation matrix with strong cells flagged
func matrixSection(result *analysis.Result) Section {
	names := make([]string, 0, len(result.CorrelationMatrix))
	for name := range result.CorrelationMatrix {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, rowName := range names {
		row := make([]string, 0, len(names)+1)
		row = append(row, rowName)
		for _, colName := range names {
			r := result.CorrelationMatrix[rowName][colName]
			cell := strconv.FormatFloat(r, 'f', 2, 64)
			if rowName != colName && math.Abs(r) > strongCorrelation {
				cell += " *"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return Section{
		Title:   "Correlation Matrix (* marks |r| > 0.7)",
		Columns: append([]string{""}, names...),
		Rows:    rows,
	}
}

// modelSection renders one row per coefficient plus the intercept
func modelSection(model *analysis.RegressionModel) Section {
	rows := make([][]string, 0, len(model.Features)+1)
	for i, feature := range model.Features {
		rows = append(rows, []string{feature, FormatNumber(model.Coefficients[i])})
	}
	rows = append(rows, []string{"(intercept)", FormatNumber(model.Intercept)})

	return Section{
		Title:   fmt.Sprintf("Model Coefficients for %s", model.Target),
		Columns: []string{"Term", "Coefficient"},
		Rows:    rows,
	}
}

// clusterSection renders size and share per cluster
func clusterSection(clusters *analysis.ClusterResult) Section {
	sizes := make([]int, clusters.K)
	for _, c := range clusters.Assignments {
		sizes[c]++
	}
	total := len(clusters.Assignments)

	rows := make([][]string, clusters.K)
	for c, size := range sizes {
		share := 0.0
		if total > 0 {
			share = float64(size) / float64(total) * 100
		}
		rows[c] = []string{
			fmt.Sprintf("Cluster %d", c),
			strconv.Itoa(size),
			fmt.Sprintf("%.1f%%", share),
		}
	}

	return Section{
		Title:   "Cluster Sizes",
		Columns: []string{"Cluster", "Rows", "Share"},
		Rows:    rows,
	}
}

// ttestSection renders one row per compared group
func ttestSection(tt *analysis.TTestResult) Section {
	rows := make([][]string, len(tt.GroupNames))
	for i, name := range tt.GroupNames {
		rows[i] = []string{
			name,
			FormatNumber(tt.GroupMeans[i]),
			FormatNumber(tt.GroupStds[i]),
			strconv.Itoa(tt.GroupSizes[i]),
		}
	}

	return Section{
		Title:   fmt.Sprintf("%s by %s", tt.ValueColumn, tt.GroupColumn),
		Columns: []string{"Group", "Mean", "Std", "N"},
		Rows:    rows,
	}
}

// qualitySection renders one row per profiled column
func qualitySection(quality *analysis.QualityReport) Section {
	rows := make([][]string, len(quality.Columns))
	for i, p := range quality.Columns {
		rows[i] = []string{
			p.Name,
			string(p.Type),
			strconv.Itoa(p.MissingCount),
			strconv.Itoa(p.UniqueCount),
			strconv.Itoa(p.OutlierCount),
			fmt.Sprintf("%.0f%%", p.NumericCoverage*100),
		}
	}

	return Section{
		Title:   "Column Profiles",
		Columns: []string{"Column", "Type", "Missing", "Unique", "Outliers", "Numeric"},
		Rows:    rows,
	}
}
