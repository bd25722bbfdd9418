package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/halvard/orbfall/audio"
	"github.com/halvard/orbfall/constants"
	"github.com/halvard/orbfall/game"
	"github.com/halvard/orbfall/render"
)

func main() {
	// Registered first so it runs last: by the time it fires, the screen's
	// deferred Fini has already restored the terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "orbfall crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio init failed: %v (continuing without sound)", err)
	}
	defer sound.Cleanup()

	disp := render.NewScreen()
	if err := disp.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer disp.Fini()

	world := game.NewWorld(rand.New(rand.NewSource(time.Now().UnixNano())))

	last := time.Now()
	for {
		disp.Poll()
		if disp.ShouldClose() {
			return
		}

		frameStart := time.Now()
		dt := frameStart.Sub(last).Seconds()
		last = frameStart

		for _, ev := range world.Step(dt, disp.MouseX()) {
			switch ev.Kind {
			case game.EventCatch:
				sound.PlayCatch()
			case game.EventMiss:
				sound.PlayMiss()
			}
		}

		render.Frame(disp, world, disp.MouseX())

		if elapsed := time.Since(frameStart); elapsed < constants.FrameInterval {
			time.Sleep(constants.FrameInterval - elapsed)
		}
	}
}
