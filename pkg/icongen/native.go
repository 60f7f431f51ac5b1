package icongen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/nfnt/resize"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Native renders icons in-process. SVG sources are rasterised directly at
// the target size; PNG and JPEG sources are rescaled. No external tool is
// involved, so it is always available and never needs installing.
type Native struct {
	Logger hclog.Logger
}

// NewNative returns a Native converter logging through logger.
func NewNative(logger hclog.Logger) *Native {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Native{Logger: logger.Named("native")}
}

func (n *Native) Name() string { return "native renderer" }

func (n *Native) Probe(context.Context) bool { return true }

func (n *Native) Install(context.Context) error { return nil }

func (n *Native) ManualHint() string { return "" }

// Resize renders req.Source into a Size×Size transparent PNG at req.Output.
func (n *Native) Resize(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Background != "" && req.Background != BackgroundTransparent {
		return fmt.Errorf("%w: %q", ErrUnsupportedBackground, req.Background)
	}
	if req.Size <= 0 {
		return fmt.Errorf("%w: %s: invalid size %d", ErrConversionFailed, req.Output, req.Size)
	}

	data, err := os.ReadFile(req.Source)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConversionFailed, req.Output, err)
	}

	var img *image.NRGBA
	if isSVG(req.Source, data) {
		n.Logger.Trace("🖌️ Rasterising SVG", "source", req.Source, "size", req.Size)
		img, err = rasterizeSVG(data, req.Size)
	} else {
		n.Logger.Trace("🖌️ Scaling raster", "source", req.Source, "size", req.Size)
		img, err = scaleRaster(data, req.Size)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConversionFailed, req.Output, err)
	}

	if err := writePNG(req.Output, img); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConversionFailed, req.Output, err)
	}
	n.Logger.Debug("✅ Icon written", "path", req.Output, "size", req.Size)
	return nil
}

func isSVG(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}

// fit returns the largest w×h with the aspect ratio of srcW×srcH that fits
// in a size×size square.
func fit(srcW, srcH float64, size int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return size, size
	}
	scale := float64(size) / max(srcW, srcH)
	w, h := int(srcW*scale+0.5), int(srcH*scale+0.5)
	return max(w, 1), max(h, 1)
}

func rasterizeSVG(data []byte, size int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	outW, outH := fit(icon.ViewBox.W, icon.ViewBox.H, size)
	offX := float64(size-outW) / 2
	offY := float64(size-outH) / 2
	icon.SetTarget(offX, offY, float64(outW), float64(outH))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	out := image.NewNRGBA(rgba.Bounds())
	draw.Draw(out, out.Bounds(), rgba, image.Point{}, draw.Src)
	return out, nil
}

func scaleRaster(data []byte, size int) (*image.NRGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := src.Bounds()
	outW, outH := fit(float64(b.Dx()), float64(b.Dy()), size)
	scaled := resize.Resize(uint(outW), uint(outH), src, resize.Lanczos3)

	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))
	at := image.Pt((size-outW)/2, (size-outH)/2)
	draw.Draw(canvas, scaled.Bounds().Sub(scaled.Bounds().Min).Add(at), scaled, scaled.Bounds().Min, draw.Over)
	return canvas, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
