package relativity

// RestColor is the fixed display color of the rest frame and its events.
const RestColor = "#EEEEEE"

// palette holds 20 visually distinct hues for moving frames. Frame indexes
// beyond the palette wrap around.
var palette = [...]string{
	"#1F77B4", "#AEC7E8", "#FF7F0E", "#FFBB78", "#2CA02C",
	"#98DF8A", "#D62728", "#FF9896", "#9467BD", "#C5B0D5",
	"#8C564B", "#C49C94", "#E377C2", "#F7B6D2", "#7F7F7F",
	"#C7C7C7", "#BCBD22", "#DBDB8D", "#17BECF", "#9EDAE5",
}

// ColorFor returns the display color for the frame at the given registry
// index. Index 0 always yields the rest color; higher indexes map onto the
// palette by (index−1) mod 20.
func ColorFor(index int) string {
	if index == 0 {
		return RestColor
	}
	return palette[(index-1)%len(palette)]
}
