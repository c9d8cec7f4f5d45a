package sia

// PreviewText is rendered when no input text is given.
const PreviewText = "ABCDEFGHIJKLM\n" +
	"NOPQRSTUVWXYZ\n" +
	"abcdefghijklm\n" +
	"nopqrstuvwxyz\n" +
	"1234567890\n" +
	"!@$%(){}[]"

// Defaults holds the settings used when the caller leaves one unset.
// Build it with NewDefaults; it is never mutated afterwards.
type Defaults struct {
	Theme       string
	Font        string // Built-in font name or font file path
	FontSize    FontSize
	Background  Color
	Foreground  Color
	BgAlpha     Alpha
	FgAlpha     Alpha
	Output      string
	PreviewText string
	TabWidth    int
	Workers     int
}

// NewDefaults returns the standard defaults.
func NewDefaults() Defaults {
	return Defaults{
		Theme:       "monokai",
		Font:        "builtin:gomono",
		FontSize:    FontSize{Value: 16},
		Background:  RGB(0xFF, 0xFF, 0xFF),
		Foreground:  RGB(0x00, 0x00, 0x00),
		BgAlpha:     Opaque,
		FgAlpha:     Opaque,
		Output:      "output.png",
		PreviewText: PreviewText,
		TabWidth:    4,
		Workers:     4,
	}
}
