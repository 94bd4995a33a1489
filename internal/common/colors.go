package common

// CountColors is the classic per-count digit palette, indexed by the number of
// neighboring mines. Index 0 is never painted.
var CountColors = [9]string{
	"#000000",
	"#0022FF", // light blue
	"#00DC00", // light green
	"#FF0000", // red
	"#640080", // purple
	"#A52A2A", // brown
	"#40C8D0", // turquoise
	"#000000", // black
	"#696969", // dark gray
}

// Board colors
var (
	CellBackgroundColor = "#FFFFFF"
	UnguessedColor      = "#696969"
	MineColor           = "#000000"
	BadFlagColor        = "#FF0000"
)

// CountColor returns the palette entry for n, clamping out of range counts
func CountColor(n int) string {
	if n < 0 {
		n = 0
	}
	if n >= len(CountColors) {
		n = len(CountColors) - 1
	}
	return CountColors[n]
}
