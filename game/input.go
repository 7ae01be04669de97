package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes window, keyboard and pointer input.
func (a *App) handleInput(now float64) {
	// Window resize propagation
	a.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		a.hud.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyF12) {
		a.saveScreenshot()
	}

	a.handlePointer(now)
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth = w
	a.screenHeight = h

	a.field.Resize(w, h, a.stars.Viewport().PixelRatio)
	a.effects.SetOrbCenter(float32(w)/2, float32(h)/2)
}

// handlePointer feeds mouse movement and clicks to the overlay.
func (a *App) handlePointer(now float64) {
	pos := rl.GetMousePosition()
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		a.effects.PointerMoved(pos.X, pos.Y, now)
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	// Clicks on the HUD belong to its widgets
	if a.hud.IsVisible() && a.hud.Contains(pos.X, pos.Y) {
		return
	}
	a.effects.Click(now)
}
