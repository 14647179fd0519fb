package main

import (
	"image"
	"image/draw"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jezek/xgb/xproto"

	"gwatchface/internal/face"
	"gwatchface/internal/render"
	"gwatchface/internal/utils"
)

// putImageChunk keeps each PutImage request safely under the X server's
// maximum request length.
const putImageChunk = 65536

type rootHost struct {
	dirty atomic.Bool
}

// Invalidate implements face.Host.
func (h *rootHost) Invalidate() { h.dirty.Store(true) }

// runRoot draws the face centered on the X11 root window, so it shows
// through as a desktop clock. The engine stays visible and interactive until
// the process is interrupted.
func runRoot(styles *render.StyleSet, size int) error {
	if err := utils.InitX11(); err != nil {
		return err
	}
	defer utils.CloseX11()

	screen := utils.XScreen
	screenW := int(screen.WidthInPixels)
	screenH := int(screen.HeightInPixels)
	if size > screenW {
		size = screenW
	}
	if size > screenH {
		size = screenH
	}

	gc, err := xproto.NewGcontextId(utils.XConn)
	if err != nil {
		return err
	}
	err = xproto.CreateGCChecked(utils.XConn, gc, xproto.Drawable(screen.Root),
		xproto.GcForeground, []uint32{screen.BlackPixel}).Check()
	if err != nil {
		return err
	}

	host := &rootHost{}
	eng := face.New(face.Config{Styles: styles, Host: host})
	defer eng.Destroy()
	eng.SetVisible(true)
	host.Invalidate()

	cv := render.NewGGCanvas(size, size)
	bounds := render.NewRect(0, 0, float64(size), float64(size))
	dstX := (screenW - size) / 2
	dstY := (screenH - size) / 2

	utils.Info("Drawing on the root window at %d,%d (%dx%d)", dstX, dstY, size, size)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			utils.Info("Shutting down")
			return nil
		case <-tick.C:
			if host.dirty.Swap(false) {
				eng.Draw(cv, bounds)
				blitRoot(toRGBA(cv.Image()), screen, gc, dstX, dstY, size)
			}
		}
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// blitRoot uploads the frame as ZPixmap data, row-chunked so no single
// request exceeds putImageChunk bytes. The server expects BGRX byte order
// for depth-24 visuals.
func blitRoot(img *image.RGBA, screen *xproto.ScreenInfo, gc xproto.Gcontext, dstX, dstY, size int) {
	stride := size * 4
	data := make([]byte, stride*size)
	for y := 0; y < size; y++ {
		src := img.Pix[y*img.Stride:]
		row := data[y*stride:]
		for x := 0; x < size; x++ {
			row[x*4+0] = src[x*4+2]
			row[x*4+1] = src[x*4+1]
			row[x*4+2] = src[x*4+0]
			row[x*4+3] = 0xff
		}
	}

	rowsPerChunk := putImageChunk / stride
	if rowsPerChunk < 1 {
		rowsPerChunk = 1
	}
	for y := 0; y < size; y += rowsPerChunk {
		rows := rowsPerChunk
		if y+rows > size {
			rows = size - y
		}
		xproto.PutImage(utils.XConn, xproto.ImageFormatZPixmap,
			xproto.Drawable(screen.Root), gc,
			uint16(size), uint16(rows), int16(dstX), int16(dstY+y),
			0, screen.RootDepth, data[y*stride:(y+rows)*stride])
	}
}
