// Package icongen renders the fixed iOS AppIcon set from a single source
// image through a pluggable converter.
package icongen

import "fmt"

const (
	// SourcePath is the vector image every icon is rendered from.
	SourcePath = "icon.svg"

	// OutputDir is the asset catalog icon set. It must already exist.
	OutputDir = "ios/CollageMaker/Images.xcassets/AppIcon.appiconset"

	// BackgroundTransparent keeps the alpha channel in every output.
	BackgroundTransparent = "transparent"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Entry is one required output: a square pixel size and its file name.
type Entry struct {
	Size     int
	Filename string
}

// Dimensions renders the entry as a WxH geometry string.
func (e Entry) Dimensions() string {
	return fmt.Sprintf("%dx%d", e.Size, e.Size)
}

// Grouped by point size (20, 29, 40, 60) at 1x/2x/3x, then the marketing icon.
var manifest = [...]Entry{
	{20, "App-Icon-20x20@1x.png"},
	{40, "App-Icon-20x20@2x.png"},
	{60, "App-Icon-20x20@3x.png"},
	{29, "App-Icon-29x29@1x.png"},
	{58, "App-Icon-29x29@2x.png"},
	{87, "App-Icon-29x29@3x.png"},
	{40, "App-Icon-40x40@1x.png"},
	{80, "App-Icon-40x40@2x.png"},
	{120, "App-Icon-40x40@3x.png"},
	{120, "App-Icon-60x60@2x.png"},
	{180, "App-Icon-60x60@3x.png"},
	{1024, "App-Icon-1024x1024@1x.png"},
}

// Manifest returns a copy of the fixed icon list in generation order.
func Manifest() []Entry {
	out := make([]Entry, len(manifest))
	copy(out, manifest[:])
	return out
}
