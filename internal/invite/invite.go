// Package invite renders the personalized invitation image offered to
// guests who confirm their presence.
package invite

import (
	"bytes"
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Portrait format sized for phone screens, same as the original card
const (
	width  = 1080
	height = 1920
)

var filenameSafe = regexp.MustCompile(`[^a-z0-9\-_.]`)

// Render draws the invitation card for one guest and returns it as PNG.
func Render(prenom, nom string) ([]byte, error) {
	dc := gg.NewContext(width, height)

	// Dark plum backdrop matching the landing page overlay
	grad := gg.NewLinearGradient(0, 0, 0, height)
	grad.AddColorStop(0, color.RGBA{R: 43, G: 36, B: 48, A: 255})
	grad.AddColorStop(1, color.RGBA{R: 74, G: 52, B: 82, A: 255})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, width, height)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	maxTextWidth := float64(width - 160)

	// Guest name, shrunk until it fits the horizontal margins
	title := fmt.Sprintf("%s %s", prenom, nom)
	titleSize, err := fitFontSize(dc, gobold.TTF, title, 72, 40, maxTextWidth)
	if err != nil {
		return nil, err
	}
	titleY := float64(height) * 0.42
	dc.DrawStringAnchored(title, width/2, titleY, 0.5, 0.5)

	confirmSize := titleSize * 0.66
	if confirmSize < 48 {
		confirmSize = 48
	}
	confirmFace, err := loadFace(gobold.TTF, confirmSize)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(confirmFace)
	dc.DrawStringAnchored("présence confirmée", width/2, titleY+confirmSize+20, 0.5, 0.5)

	thanksFace, err := loadFace(goregular.TTF, 30)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(thanksFace)
	dc.DrawStringAnchored("Merci de célébrer avec nous", width/2, height-130, 0.5, 0.5)

	drawRingIcon(dc, width/2, height-90, 72)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode invitation: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the download name for a rendered invitation.
func Filename(prenom, nom string) string {
	name := fmt.Sprintf("invitation-%s-%s.png", strings.ToLower(prenom), strings.ToLower(nom))
	return filenameSafe.ReplaceAllString(name, "")
}

// fitFontSize installs the largest face between max and min at which the
// text stays inside maxWidth, and returns the chosen size.
func fitFontSize(dc *gg.Context, ttf []byte, text string, max, min, maxWidth float64) (float64, error) {
	size := max
	for ; size > min; size -= 2 {
		face, err := loadFace(ttf, size)
		if err != nil {
			return 0, err
		}
		dc.SetFontFace(face)
		if w, _ := dc.MeasureString(text); w <= maxWidth {
			return size, nil
		}
	}
	face, err := loadFace(ttf, min)
	if err != nil {
		return 0, err
	}
	dc.SetFontFace(face)
	return min, nil
}

func loadFace(ttf []byte, points float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return face, nil
}

// drawRingIcon draws the engagement-ring mark used across the site:
// a ring, its mount and a diamond above it.
func drawRingIcon(dc *gg.Context, cx, cy, s float64) {
	dc.DrawCircle(cx, cy+s*0.10, s*0.25)
	dc.SetRGBA(1, 1, 1, 0.12)
	dc.FillPreserve()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(s * 0.09)
	dc.Stroke()

	dc.DrawRectangle(cx-s*0.03, cy-s*0.02, s*0.06, s*0.12)
	dc.Fill()

	dc.MoveTo(cx, cy-s*0.40)
	dc.LineTo(cx-s*0.11, cy-s*0.28)
	dc.LineTo(cx, cy-s*0.16)
	dc.LineTo(cx+s*0.11, cy-s*0.28)
	dc.ClosePath()
	dc.Fill()
}
