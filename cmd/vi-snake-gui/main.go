// Command vi-snake-gui runs the game in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/highscore"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/service"
)

const (
	cellSize  = 24
	statusH   = 28
	minSwipe  = 30 // pixels
	titleText = "vi-snake"
)

var (
	colorBg      = color.RGBA{26, 27, 38, 255}
	colorField   = color.RGBA{36, 40, 59, 255}
	colorHead    = color.RGBA{158, 206, 106, 255}
	colorBody    = color.RGBA{115, 170, 80, 255}
	colorDead    = color.RGBA{247, 118, 142, 255}
	colorFood    = color.RGBA{255, 158, 100, 255}
	colorText    = color.RGBA{255, 255, 255, 255}
	colorTextDim = color.RGBA{150, 150, 150, 255}
	colorShade   = color.RGBA{0, 0, 0, 160}
)

// keyBindings maps window keys to the same commands as the terminal host
var keyBindings = map[ebiten.Key]input.Command{
	ebiten.KeyArrowUp:    input.CmdUp,
	ebiten.KeyArrowDown:  input.CmdDown,
	ebiten.KeyArrowLeft:  input.CmdLeft,
	ebiten.KeyArrowRight: input.CmdRight,
	ebiten.KeyW:          input.CmdUp,
	ebiten.KeyS:          input.CmdDown,
	ebiten.KeyA:          input.CmdLeft,
	ebiten.KeyD:          input.CmdRight,
	ebiten.KeyK:          input.CmdUp,
	ebiten.KeyJ:          input.CmdDown,
	ebiten.KeyH:          input.CmdLeft,
	ebiten.KeyL:          input.CmdRight,
	ebiten.KeySpace:      input.CmdPause,
	ebiten.KeyEnter:      input.CmdStart,
	ebiten.KeyR:          input.CmdRestart,
	ebiten.KeyM:          input.CmdToggleMute,
	ebiten.KeyEscape:     input.CmdQuit,
	ebiten.KeyQ:          input.CmdQuit,
}

var errQuit = errors.New("quit")

type window struct {
	session *game.Session
	router  *events.Router
	player  *audio.Player
	epoch   *engine.Epoch
	face    font.Face

	tiles int

	// Pointer drag start, for swipe steering
	dragging       bool
	dragX, dragY   int
	touchIDs       []ebiten.TouchID
	touchX, touchY int
}

func (w *window) Update() error {
	for key, cmd := range keyBindings {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := w.command(cmd); err != nil {
			return err
		}
	}
	w.pointer()

	w.session.OnFrame(w.epoch.Since())
	w.router.DispatchAll()
	w.session.RepairFood()
	return nil
}

func (w *window) command(cmd input.Command) error {
	if !input.IsHostCommand(cmd) {
		input.Apply(cmd, w.session)
		return nil
	}
	switch cmd {
	case input.CmdQuit:
		return errQuit
	case input.CmdToggleMute:
		w.player.ToggleMute()
	}
	return nil
}

// pointer classifies mouse drags and touch swipes
func (w *window) pointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.dragging = true
		w.dragX, w.dragY = ebiten.CursorPosition()
	}
	if w.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.dragging = false
		x, y := ebiten.CursorPosition()
		input.Apply(input.Swipe(w.dragX, w.dragY, x, y, minSwipe), w.session)
	}

	w.touchIDs = inpututil.AppendJustPressedTouchIDs(w.touchIDs[:0])
	for _, id := range w.touchIDs {
		w.touchX, w.touchY = ebiten.TouchPosition(id)
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		cmd := input.Swipe(w.touchX, w.touchY, x, y, minSwipe)
		if cmd == input.CmdNone {
			// Tap acts like Space
			cmd = input.CmdPause
		}
		input.Apply(cmd, w.session)
	}
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBg)
	snap := w.session.Snapshot()

	side := float32(snap.TileCount * cellSize)
	vector.DrawFilledRect(screen, 0, statusH, side, side, colorField, false)

	if snap.HasFood {
		pad := float32(cellSize) / 4
		vector.DrawFilledRect(screen,
			float32(snap.Food.X*cellSize)+pad, float32(snap.Food.Y*cellSize+statusH)+pad,
			cellSize-pad*2, cellSize-pad*2, colorFood, true)
	}

	for i := snap.Length() - 1; i >= 0; i-- {
		fx, fy := snap.Segment(i)
		c := colorBody
		switch {
		case snap.State == game.StateGameOver:
			c = colorDead
		case i == 0:
			c = colorHead
		}
		vector.DrawFilledRect(screen,
			float32(fx*cellSize)+1, float32(fy*cellSize+statusH)+1,
			cellSize-2, cellSize-2, c, false)
	}

	text.Draw(screen, fmt.Sprintf("SCORE %d   HIGH %d", snap.Score, snap.HighScore), w.face, 8, 19, colorText)
	text.Draw(screen, snap.State.String(), w.face, int(side)-70, 19, colorTextDim)

	if lines := overlay(snap); lines != nil {
		vector.DrawFilledRect(screen, 0, statusH, side, side, colorShade, false)
		y := statusH + int(side)/2 - len(lines)*10
		for _, l := range lines {
			x := (int(side) - len(l)*7) / 2
			text.Draw(screen, l, w.face, x, y, colorText)
			y += 20
		}
	}
}

func overlay(snap game.Snapshot) []string {
	switch snap.State {
	case game.StateIdle:
		return []string{"VI-SNAKE", "Enter, Space or tap to start", "arrows, wasd, hjkl or swipe to steer"}
	case game.StatePaused:
		return []string{"PAUSED", "Space to resume"}
	case game.StateGameOver:
		return []string{"GAME OVER", fmt.Sprintf("Score %d  Best %d", snap.Score, snap.HighScore), "r or Space to play again"}
	}
	return nil
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.tiles * cellSize, w.tiles*cellSize + statusH
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "vi-snake-gui: %v\n", err)
		os.Exit(1)
	}
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake-gui: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	hub := service.NewHub()
	for _, svc := range []service.Service{audio.NewService(audio.SpeakerOutput()), highscore.NewService()} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	audioCfg := audio.LoadAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = float64(cfg.Audio.MasterVolume) / 100
	if err := hub.InitAll(audioCfg, highscore.Options{Kind: cfg.HighScore.Store, Path: cfg.HighScore.Path}); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.Shutdown()

	audioSvc := service.MustGet[*audio.AudioService](hub, "audio")
	scoreSvc := service.MustGet[*highscore.HighScoreService](hub, "highscore")

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	queue := events.NewEventQueue()
	session := game.NewSession(game.Config{
		TileCount:       cfg.Game.Tiles,
		InitialInterval: cfg.TickInterval(),
		MaxCatchUp:      constant.MaxCatchUpTicks,
		HighScore:       scoreSvc.Initial(),
		Rand:            rand.New(rand.NewSource(seed)),
		Queue:           queue,
	})

	router := events.NewRouter(queue)
	router.Register(audio.NewHandler(audioSvc.Player()))
	router.Register(scoreSvc.Recorder())

	w := &window{
		session: session,
		router:  router,
		player:  audioSvc.Player(),
		epoch:   engine.NewEpoch(engine.NewMonotonicTimeProvider()),
		face:    basicfont.Face7x13,
		tiles:   cfg.Game.Tiles,
	}

	ebiten.SetWindowSize(w.Layout(0, 0))
	ebiten.SetWindowTitle(titleText)
	ebiten.SetTPS(int(time.Second / constant.FrameUpdateInterval))

	err := ebiten.RunGame(w)
	router.DispatchAll()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
