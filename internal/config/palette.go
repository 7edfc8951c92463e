package config

// Swatch is a selectable color in a palette.
type Swatch struct {
	Key   string
	Label string
	Hex   string
}

// Default palette keys.
const (
	DefaultBgColor   = "tomato"
	DefaultTextColor = "white"
)

// BackgroundPalette lists the background colors in picker order.
var BackgroundPalette = []Swatch{
	{Key: "tomato", Label: "Tomato", Hex: "#BA4949"},
	{Key: "teal", Label: "Teal", Hex: "#38858A"},
	{Key: "navy", Label: "Navy", Hex: "#397097"},
	{Key: "plum", Label: "Plum", Hex: "#7D53A2"},
	{Key: "forest", Label: "Forest", Hex: "#2F6B3F"},
	{Key: "charcoal", Label: "Charcoal", Hex: "#2B2B2B"},
	{Key: "cream", Label: "Cream", Hex: "#F4EDE4"},
}

// TextPalette lists the text colors in picker order.
var TextPalette = []Swatch{
	{Key: "white", Label: "White", Hex: "#FFFFFF"},
	{Key: "cream", Label: "Cream", Hex: "#FFF7E6"},
	{Key: "sand", Label: "Sand", Hex: "#E8D5B5"},
	{Key: "charcoal", Label: "Charcoal", Hex: "#2B2B2B"},
	{Key: "black", Label: "Black", Hex: "#000000"},
}

// LookupSwatch returns the swatch for key within palette.
func LookupSwatch(palette []Swatch, key string) (Swatch, bool) {
	for _, s := range palette {
		if s.Key == key {
			return s, true
		}
	}
	return Swatch{}, false
}

// SwatchIndex returns the position of key within palette, or 0.
func SwatchIndex(palette []Swatch, key string) int {
	for i, s := range palette {
		if s.Key == key {
			return i
		}
	}
	return 0
}
