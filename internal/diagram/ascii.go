package diagram

import (
	"fmt"
	"math"
	"strings"
)

// BarRow is one layer of longitudinal bars
type BarRow struct {
	Y        float64 // centroid height above the bottom face (mm)
	Count    int
	Diameter float64 // mm
	Label    string
}

// SectionDiagramData holds data for drawing a cross-section
type SectionDiagramData struct {
	Title string

	// Outline (mm); a flange wider than the web makes a T-section
	Width           float64
	Height          float64
	FlangeWidth     float64
	FlangeThickness float64

	// Compression block depth measured from the compression face (mm)
	StressBlockDepth  float64
	CompressionBottom bool

	Rows []BarRow
}

// IsT reports whether the section has flange overhangs
func (d SectionDiagramData) IsT() bool {
	return d.FlangeWidth > d.Width && d.FlangeThickness > 0 && d.FlangeThickness < d.Height
}

// inCompression reports whether a depth from the top face lies in the
// compression block
func (d SectionDiagramData) inCompression(depth float64) bool {
	if d.StressBlockDepth <= 0 {
		return false
	}
	if d.CompressionBottom {
		return depth >= d.Height-d.StressBlockDepth
	}
	return depth <= d.StressBlockDepth
}

// PlanDiagramData holds data for drawing a footing plan
type PlanDiagramData struct {
	Title string

	// Plan dimensions (mm); x runs along Length
	Length       float64
	Width        float64
	ColumnLength float64
	ColumnWidth  float64

	// Mesh spacing in each direction (mm), zero when no mesh was found
	SpacingX float64
	SpacingY float64
	MeshX    string
	MeshY    string

	// Control perimeter distance from the column face (mm), zero if not verified
	ControlDistance float64
}

const (
	sectionChars = 36
	planChars    = 44
)

// DrawASCIISectionDiagram creates an ASCII representation of a section with
// its compression block and bar layers
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder
	if data.Width <= 0 || data.Height <= 0 {
		return ""
	}

	outer := data.Width
	if data.IsT() {
		outer = data.FlangeWidth
	}
	scale := float64(sectionChars) / outer
	webIn := max(int(math.Round(data.Width*scale)), 4)
	flangeIn := webIn
	if data.IsT() {
		flangeIn = sectionChars
		if flangeIn-webIn < 2 {
			flangeIn = webIn
		}
	}
	overhang := (flangeIn - webIn) / 2

	// Characters are about twice as tall as wide
	heightChars := int(math.Round(data.Height * scale / 2))
	heightChars = min(max(heightChars, 8), 24)

	flangeLine := -1
	if flangeIn > webIn {
		flangeLine = int(math.Round(data.FlangeThickness / data.Height * float64(heightChars)))
		if flangeLine <= 0 || flangeLine >= heightChars {
			flangeLine = -1
		}
	}

	rows := map[int]BarRow{}
	for _, r := range data.Rows {
		line := int(math.Round((data.Height - r.Y) / data.Height * float64(heightChars)))
		rows[min(max(line, 1), heightChars-1)] = r
	}

	title := data.Title
	if title == "" {
		title = "SECTION"
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(title)))))

	blockLabelled := false
	for i := 0; i <= heightChars; i++ {
		depth := float64(i) / float64(heightChars) * data.Height
		inFlange := flangeLine > 0 && i < flangeLine

		var line string
		switch {
		case i == 0:
			top := webIn
			if flangeLine > 0 {
				top = flangeIn
			}
			line = pad(overhangFor(flangeLine > 0, overhang)) + "┌" + strings.Repeat("─", top) + "┐"
		case i == heightChars:
			line = pad(overhang) + "└" + strings.Repeat("─", webIn) + "┘"
		case i == flangeLine:
			right := flangeIn - webIn - overhang
			line = "└" + strings.Repeat("─", overhang-1) + "┐" + string(fill(data, depth, webIn, nil)) +
				"┌" + strings.Repeat("─", right-1) + "┘"
		case inFlange:
			line = "│" + string(fill(data, depth, flangeIn, nil)) + "│"
		default:
			var bars *BarRow
			if r, ok := rows[i]; ok {
				bars = &r
			}
			line = pad(overhang) + "│" + string(fill(data, depth, webIn, bars)) + "│"
		}

		sb.WriteString("  " + line)
		sb.WriteString(pad(flangeIn + 2 - len([]rune(line))))

		if r, ok := rows[i]; ok {
			label := r.Label
			if label == "" {
				label = fmt.Sprintf("%d x ø%.0f", r.Count, r.Diameter)
			}
			sb.WriteString("  ◄─ " + label)
		} else if !blockLabelled && data.StressBlockDepth > 0 && blockEdge(data, i, heightChars) {
			sb.WriteString(fmt.Sprintf("  ◄─ λx = %.1f mm", data.StressBlockDepth))
			blockLabelled = true
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Compression zone\n")
	sb.WriteString("  ●●● = Reinforcement\n")
	if data.IsT() {
		sb.WriteString(fmt.Sprintf("  b_eff = %.0f mm, h_f = %.0f mm, b_w = %.0f mm, h = %.0f mm\n",
			data.FlangeWidth, data.FlangeThickness, data.Width, data.Height))
	} else {
		sb.WriteString(fmt.Sprintf("  b = %.0f mm, h = %.0f mm\n", data.Width, data.Height))
	}

	return sb.String()
}

func overhangFor(flange bool, overhang int) int {
	if flange {
		return 0
	}
	return overhang
}

// blockEdge reports whether line i is the last line of the compression block
func blockEdge(data SectionDiagramData, i, heightChars int) bool {
	edge := data.StressBlockDepth
	if data.CompressionBottom {
		edge = data.Height - data.StressBlockDepth
	}
	return i == int(math.Round(edge/data.Height*float64(heightChars)))
}

// fill builds the interior of one line
func fill(data SectionDiagramData, depth float64, width int, bars *BarRow) []rune {
	r := []rune(strings.Repeat(" ", width))
	if data.inCompression(depth) {
		r = []rune(strings.Repeat("░", width))
	}
	if bars == nil || bars.Count <= 0 || width < 3 {
		return r
	}

	n := min(bars.Count, width-2)
	if n == 1 {
		r[width/2] = '●'
		return r
	}
	for k := 0; k < n; k++ {
		pos := 1 + int(math.Round(float64(k)*float64(width-3)/float64(n-1)))
		r[pos] = '●'
	}
	return r
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// DrawFootingPlan creates an ASCII plan of a footing with its column and
// bottom mesh
func DrawFootingPlan(data PlanDiagramData) string {
	var sb strings.Builder
	if data.Length <= 0 || data.Width <= 0 {
		return ""
	}

	scale := float64(planChars) / data.Length
	cols := planChars
	lines := min(max(int(math.Round(data.Width*scale/2)), 6), 22)

	colW := max(int(math.Round(data.ColumnLength*scale)), 2)
	colH := max(int(math.Round(data.ColumnWidth*scale/2)), 1)
	colLeft := (cols - colW) / 2
	colTop := (lines - colH) / 2

	title := data.Title
	if title == "" {
		title = "FOOTING PLAN"
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(title)))))

	sb.WriteString("  ┌" + strings.Repeat("─", cols) + "┐\n")
	for i := 0; i < lines; i++ {
		r := []rune(strings.Repeat(" ", cols))
		// Mesh lines every few characters when a mesh was found
		if data.SpacingY > 0 && i%2 == 1 {
			for j := range r {
				r[j] = '·'
			}
		}
		if data.SpacingX > 0 {
			for j := 2; j < cols; j += 4 {
				if r[j] == '·' {
					r[j] = '┼'
				} else {
					r[j] = '│'
				}
			}
		}
		if i >= colTop && i < colTop+colH {
			for j := colLeft; j < colLeft+colW && j < cols; j++ {
				r[j] = '█'
			}
		}
		sb.WriteString("  │" + string(r) + "│\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", cols) + "┘\n")

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  L x B = %.0f x %.0f mm, column %.0f x %.0f mm\n",
		data.Length, data.Width, data.ColumnLength, data.ColumnWidth))
	if data.MeshX != "" {
		sb.WriteString(fmt.Sprintf("  Bars along x: %s\n", data.MeshX))
	}
	if data.MeshY != "" {
		sb.WriteString(fmt.Sprintf("  Bars along y: %s\n", data.MeshY))
	}
	if data.ControlDistance > 0 {
		sb.WriteString(fmt.Sprintf("  Control perimeter at %.0f mm from the column face\n", data.ControlDistance))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// padRight pads by rune count; %-*s counts bytes
func padRight(s string, width int) string {
	return s + pad(width-len([]rune(s)))
}
