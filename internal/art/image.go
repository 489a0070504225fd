// ABOUTME: Image-to-ASCII art source: stills and animated GIFs become luminance-ramp frames
// ABOUTME: CatmullRom scaling to character cells; GIF frames accumulate onto a shared canvas

package art

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	// Register still-image decoders.
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ramp orders glyphs by increasing ink coverage; luminance indexes it
// darkest-bright terminals first.
const ramp = " .:-=+*#%@"

// maxImageColumns bounds the native character width of converted
// images; the frame scaler handles everything below that.
const maxImageColumns = 100

// LoadImage converts an image file into an Animation. Animated GIFs
// yield one art frame per GIF frame; other formats yield one frame.
func LoadImage(path string) (*Animation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	if strings.ToLower(filepath.Ext(path)) == ".gif" {
		g, err := gif.DecodeAll(f)
		if err != nil {
			return nil, fmt.Errorf("decoding gif %s: %w", path, err)
		}
		return fromGIF(g)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	frame := asciiFrame(img)
	if frame == nil {
		return nil, fmt.Errorf("image %s has no visible pixels", path)
	}
	return &Animation{Frames: []*Frame{frame}}, nil
}

// fromGIF renders every GIF frame onto an accumulating canvas so
// partial frames (inter-frame deltas) compose correctly.
func fromGIF(g *gif.GIF) (*Animation, error) {
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))

	var anim Animation
	for _, src := range g.Image {
		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		if frame := asciiFrame(canvas); frame != nil {
			anim.Frames = append(anim.Frames, frame)
		}
	}
	if len(anim.Frames) == 0 {
		return nil, fmt.Errorf("gif produced no visible frames")
	}
	return &anim, nil
}

// asciiFrame scales img to character cells (half vertical resolution,
// cells being roughly twice as tall as wide) and maps luminance onto
// the glyph ramp.
func asciiFrame(img image.Image) *Frame {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return nil
	}

	targetW := srcW
	if targetW > maxImageColumns {
		targetW = maxImageColumns
	}
	targetH := srcH * targetW / srcW / 2
	if targetH < 1 {
		targetH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)

	frame := &Frame{Lines: make([]Line, targetH)}
	for y := 0; y < targetH; y++ {
		runes := make([]rune, targetW)
		for x := 0; x < targetW; x++ {
			runes[x] = rampGlyph(dst.RGBAAt(x, y))
		}
		frame.Lines[y] = Line{Runes: runes, Highlight: make([]bool, targetW)}
	}
	return frame
}

// rampGlyph maps a pixel to a ramp glyph by Rec. 709 luma;
// transparent pixels render as space.
func rampGlyph(c color.RGBA) rune {
	if c.A < 32 {
		return ' '
	}
	luma := (2126*int(c.R) + 7152*int(c.G) + 722*int(c.B)) / 10000
	idx := luma * (len(ramp) - 1) / 255
	return rune(ramp[idx])
}
