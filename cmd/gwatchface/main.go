package main

import (
	"flag"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gwatchface/internal/convert"
	"gwatchface/internal/face"
	"gwatchface/internal/render"
	"gwatchface/internal/theme"
	"gwatchface/internal/utils"
)

func main() {
	size := flag.Int("size", 400, "Face size in pixels (the face is square)")
	themePack := flag.String("theme", "", "Path to a .wfpk theme pack")
	themeDir := flag.String("themedir", "", "Directory holding emblem assets")
	snapshot := flag.String("snapshot", "", "Render one frame to the given PNG file and exit")
	convertPNG := flag.String("convert", "", "Convert a PNG to .wftx next to the input and exit")
	rootMode := flag.Bool("root", false, "Draw onto the X11 root window instead of opening a preview window")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if *debugFlag {
		utils.CurrentLevel = utils.LevelDebug
	}

	if *convertPNG != "" {
		if err := runConvert(*convertPNG); err != nil {
			utils.Error("Convert failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if *themeDir != "" {
		utils.ThemeDir = *themeDir
	}
	if *themePack != "" {
		if err := theme.InstallPack(*themePack); err != nil {
			utils.Error("Failed to install theme pack %s: %v", *themePack, err)
			os.Exit(1)
		}
	}

	styles := face.DefaultStyles(theme.LoadEmblems())

	switch {
	case *snapshot != "":
		if err := runSnapshot(styles, *size, *snapshot); err != nil {
			utils.Error("Snapshot failed: %v", err)
			os.Exit(1)
		}
		utils.Info("Snapshot saved to %s", *snapshot)
	case *rootMode:
		if err := runRoot(styles, *size); err != nil {
			utils.Error("Root mode failed: %v", err)
			os.Exit(1)
		}
	default:
		runWindow(styles, *size)
	}
}

// runConvert encodes a PNG emblem into the compressed .wftx form.
func runConvert(pngPath string) error {
	utils.Info("Converting %s", pngPath)

	in, err := os.Open(pngPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := png.Decode(in)
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(pngPath, filepath.Ext(pngPath)) + ".wftx"
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := convert.EncodeEmblem(out, img, true); err != nil {
		return err
	}
	utils.Info("Wrote %s", outPath)
	return nil
}

// runSnapshot renders a single interactive frame at the current wall time.
func runSnapshot(styles *render.StyleSet, size int, outPath string) error {
	cv := render.NewGGCanvas(size, size)
	bounds := render.NewRect(0, 0, float64(size), float64(size))
	ct := render.TimeIn(time.Now(), nil)

	render.Frame(cv, bounds, ct, render.ModeInteractive, render.Capabilities{}, styles, render.Rect{})

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return cv.EncodePNG(f)
}
