// Package theme loads the emblem images for the three render variants from
// the theme directories, falling back to procedurally drawn emblems so the
// face runs with zero assets installed.
package theme

import (
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/gogpu/gg"

	"gwatchface/internal/convert"
	"gwatchface/internal/face"
	"gwatchface/internal/utils"
)

// Emblem base names looked up in the theme directories.
const (
	emblemNormal  = "emblem"
	emblemDark    = "emblem_dark"
	emblemOutline = "emblem_outline"
)

// LoadEmblems resolves the three emblem variants. Assets that are missing or
// unreadable are replaced by the matching procedural fallback.
func LoadEmblems() face.Emblems {
	return face.Emblems{
		Normal:  loadEmblem(emblemNormal, fallbackNormal),
		Dark:    loadEmblem(emblemDark, fallbackDark),
		Outline: loadEmblem(emblemOutline, fallbackOutline),
	}
}

// InstallPack extracts a .wfpk theme pack into a scratch directory and makes
// it the active theme directory.
func InstallPack(pkgPath string) error {
	dir, err := os.MkdirTemp("", "gwatchface-theme-")
	if err != nil {
		return err
	}
	if err := convert.ExtractPack(pkgPath, dir); err != nil {
		return err
	}
	utils.ThemeDir = dir
	utils.Info("Theme: installed pack %s", pkgPath)
	return nil
}

func loadEmblem(name string, fallback func() image.Image) image.Image {
	path := utils.FindEmblemFile(name)
	if path == "" {
		utils.Debug("Theme: no %s asset, using the procedural emblem", name)
		return fallback()
	}

	var img image.Image
	var err error
	if strings.HasSuffix(path, ".wftx") {
		img, err = convert.LoadEmblem(path)
	} else {
		img, err = loadPNG(path)
	}
	if err != nil {
		utils.Warn("Theme: failed to load %s: %v", path, err)
		return fallback()
	}
	utils.Debug("Theme: loaded %s from %s", name, path)
	return img
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

const fallbackSize = 256

// The procedural emblem is an open ring with a bar, loosely a "G". The
// variants differ only in weight and brightness.
func drawEmblem(lineWidth, alpha float64) image.Image {
	dc := gg.NewContext(fallbackSize, fallbackSize)
	dc.SetRGBA(1, 1, 1, alpha)
	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapRound)

	const (
		cx = fallbackSize / 2
		cy = fallbackSize / 2
		r  = fallbackSize * 0.36
	)
	// Ring with a gap on the right-hand side.
	dc.DrawArc(cx, cy, r, 0.35, 6.0)
	dc.Stroke()
	// The bar closing the "G".
	dc.DrawLine(cx+r*0.2, cy, cx+r, cy)
	dc.Stroke()

	return dc.Image()
}

func fallbackNormal() image.Image  { return drawEmblem(16, 0.20) }
func fallbackDark() image.Image    { return drawEmblem(16, 0.10) }
func fallbackOutline() image.Image { return drawEmblem(4, 0.14) }
