package icongen

import "context"

// Request describes one resize: render Source at Size×Size over Background
// and write the PNG to Output, replacing any existing file.
type Request struct {
	Source     string
	Size       int
	Background string
	Output     string
}

// Dimensions renders the requested geometry as WxH.
func (r Request) Dimensions() string {
	return Entry{Size: r.Size}.Dimensions()
}

// Converter turns the source image into a sized raster icon.
type Converter interface {
	// Name identifies the converter in progress and log output.
	Name() string
	// Probe reports whether the converter can be used right now.
	Probe(ctx context.Context) bool
	// Resize performs a single blocking conversion.
	Resize(ctx context.Context, req Request) error
}

// Installer makes a missing converter available.
type Installer interface {
	Install(ctx context.Context) error
	// ManualHint is the command a user can run by hand when Install fails.
	ManualHint() string
}
