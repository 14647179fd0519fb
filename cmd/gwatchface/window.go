package main

import (
	"sync/atomic"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gwatchface/internal/face"
	"gwatchface/internal/render"
	"gwatchface/internal/utils"
)

// previewWindow drives the engine through the same lifecycle callbacks the
// watch platform would deliver, mapped onto keys:
//
//	A  toggle ambient mode
//	V  toggle visibility
//	L  toggle the low-bit ambient display property
//	B  toggle the burn-in protection display property
//	Z  cycle through test time zones
//
// Holding the left mouse button places a fake peek card from the pointer down
// to the bottom edge; the right button clears it.
type previewWindow struct {
	eng   *face.Engine
	zones *face.Broadcast
	cv    *render.GGCanvas
	size  int

	caps    render.Capabilities
	ambient bool
	visible bool
	zoneIdx int

	// dirty may be set from the scheduler's timer goroutine.
	dirty      atomic.Bool
	lastMinute int

	tex       rl.Texture2D
	texLoaded bool
}

// testZones cycled by the Z key. The empty name means the system zone.
var testZones = []string{"", "UTC", "America/New_York", "Asia/Tokyo"}

// Invalidate implements face.Host.
func (w *previewWindow) Invalidate() { w.dirty.Store(true) }

func runWindow(styles *render.StyleSet, size int) {
	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.InitWindow(int32(size), int32(size), "GWatchFace")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	w := &previewWindow{
		zones:      face.NewBroadcast(),
		cv:         render.NewGGCanvas(size, size),
		size:       size,
		visible:    true,
		lastMinute: -1,
	}
	w.eng = face.New(face.Config{Styles: styles, Host: w, Zones: w.zones})

	pres := w.eng.Presentation()
	utils.Debug("Presentation: peek=%d cardBackground=%d systemTime=%v",
		pres.PeekCardMode, pres.BackgroundVisibility, pres.ShowSystemTime)

	w.eng.PropertiesChanged(w.caps)
	w.eng.SetVisible(true)
	w.Invalidate()

	for !rl.WindowShouldClose() {
		w.update()

		rl.BeginDrawing()
		w.draw()
		rl.EndDrawing()
	}

	w.eng.Destroy()
	if w.texLoaded {
		rl.UnloadTexture(w.tex)
	}
}

func (w *previewWindow) update() {
	if rl.IsKeyPressed(rl.KeyA) {
		w.ambient = !w.ambient
		w.eng.SetAmbient(w.ambient)
		utils.Info("Ambient: %v", w.ambient)
	}
	if rl.IsKeyPressed(rl.KeyV) {
		w.visible = !w.visible
		w.eng.SetVisible(w.visible)
		w.Invalidate()
		utils.Info("Visible: %v", w.visible)
	}
	if rl.IsKeyPressed(rl.KeyL) {
		w.caps.LowBitAmbient = !w.caps.LowBitAmbient
		w.eng.PropertiesChanged(w.caps)
		w.Invalidate()
		utils.Info("Low-bit ambient: %v", w.caps.LowBitAmbient)
	}
	if rl.IsKeyPressed(rl.KeyB) {
		w.caps.BurnInProtection = !w.caps.BurnInProtection
		w.eng.PropertiesChanged(w.caps)
		w.Invalidate()
		utils.Info("Burn-in protection: %v", w.caps.BurnInProtection)
	}
	if rl.IsKeyPressed(rl.KeyZ) {
		w.cycleZone()
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		y := float64(rl.GetMousePosition().Y)
		w.eng.UpdateCardBounds(render.NewRect(0, y, float64(w.size), float64(w.size)-y))
	}
	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		w.eng.UpdateCardBounds(render.Rect{})
	}

	// The platform delivers a coarse tick each minute while the face is in
	// ambient mode; emulate that so the ambient frame does not go stale.
	if minute := time.Now().Minute(); minute != w.lastMinute {
		w.lastMinute = minute
		if w.ambient {
			w.eng.TimeTick()
		}
	}

	if w.dirty.Swap(false) {
		w.render()
	}
}

// cycleZone advances to the next test zone and broadcasts the change.
func (w *previewWindow) cycleZone() {
	w.zoneIdx = (w.zoneIdx + 1) % len(testZones)
	name := testZones[w.zoneIdx]

	zone := time.Local
	if name != "" {
		var err error
		zone, err = time.LoadLocation(name)
		if err != nil {
			utils.Warn("Zone %s unavailable: %v", name, err)
			return
		}
	}

	w.zones.Notify(zone)
	w.Invalidate()
	utils.Info("Zone: %s", zone)
}

// render repaints the face pixmap and swaps it into the GPU texture.
func (w *previewWindow) render() {
	bounds := render.NewRect(0, 0, float64(w.size), float64(w.size))
	w.eng.Draw(w.cv, bounds)

	img := rl.NewImageFromImage(w.cv.Image())
	if w.texLoaded {
		rl.UnloadTexture(w.tex)
	}
	w.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	w.texLoaded = true
}

func (w *previewWindow) draw() {
	rl.ClearBackground(rl.Black)

	if !w.visible {
		rl.DrawText("hidden", 10, 10, 20, rl.DarkGray)
		return
	}
	if w.texLoaded {
		rl.DrawTexture(w.tex, 0, 0, rl.White)
	}
}
