package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the viewer window.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Background rl.Color
}

// Run opens the window and drives the main loop. Each frame it calls update
// (input, regeneration), then clears the screen and calls draw. shutdown runs
// once after the loop exits, while the GL context still exists, so GPU
// resources can be released. ESC toggles the terminal; close via the window button.
func Run(w Window, update, draw, shutdown func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC toggles the terminal, not quit
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	if shutdown != nil {
		shutdown()
	}
}
