package theme

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gwatchface/internal/convert"
	"gwatchface/internal/utils"
)

func TestLoadEmblemsFallsBackWithoutAssets(t *testing.T) {
	utils.ThemeDir = t.TempDir()
	defer func() { utils.ThemeDir = "" }()

	em := LoadEmblems()
	for name, img := range map[string]image.Image{
		"normal":  em.Normal,
		"dark":    em.Dark,
		"outline": em.Outline,
	} {
		if img == nil {
			t.Fatalf("%s emblem is nil", name)
		}
		b := img.Bounds()
		if b.Dx() != fallbackSize || b.Dy() != fallbackSize {
			t.Errorf("%s emblem bounds = %v", name, b)
		}
	}
}

func TestInstallPackMakesAssetsVisible(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := convert.EncodeEmblem(&buf, src, false); err != nil {
		t.Fatalf("EncodeEmblem: %v", err)
	}

	pkg := filepath.Join(t.TempDir(), "test.wfpk")
	err := convert.WritePack(pkg, map[string][]byte{
		"emblem.wftx": buf.Bytes(),
	})
	if err != nil {
		t.Fatalf("WritePack: %v", err)
	}

	if err := InstallPack(pkg); err != nil {
		t.Fatalf("InstallPack: %v", err)
	}
	defer func() {
		os.RemoveAll(utils.ThemeDir)
		utils.ThemeDir = ""
	}()

	em := LoadEmblems()
	if em.Normal == nil {
		t.Fatal("normal emblem is nil")
	}
	if got := em.Normal.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("installed emblem bounds = %v, want 8x8", got)
	}
	if c := color.RGBAModel.Convert(em.Normal.At(0, 0)).(color.RGBA); c.R != 0xff {
		t.Fatalf("installed emblem pixel = %v, want white", c)
	}
}
