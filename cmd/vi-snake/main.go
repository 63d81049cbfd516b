package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/highscore"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/renderers"
	"github.com/lixenwraith/vi-snake/service"
	"github.com/lixenwraith/vi-snake/status"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-snake: stdout is not a terminal")
		os.Exit(1)
	}

	keys := input.DefaultKeyTable()
	if cfg.Keymap != "" {
		if keys, err = input.LoadKeyFile(cfg.Keymap); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			os.Exit(1)
		}
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, keys); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, keys *input.KeyTable) error {
	hub := service.NewHub()
	for _, svc := range []service.Service{status.NewService(), audio.NewService(audio.SpeakerOutput()), highscore.NewService()} {
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

	statusSvc := service.MustGet[*status.StatusService](hub, "status")
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
	log.Printf("session %s: %d tiles, %v ticks, seed %d", session.ID(), cfg.Game.Tiles, cfg.TickInterval(), seed)

	metrics := status.NewGameMetrics(statusSvc.Registry())
	router := events.NewRouter(queue)
	router.Register(audio.NewHandler(audioSvc.Player()))
	router.Register(scoreSvc.Recorder())
	router.Register(metrics)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer func() {
		core.SetCrashReset(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	orchestrator := render.NewRenderOrchestrator(screen)
	debug := renderers.RegisterAll(orchestrator, cfg.Debug)

	h := &host{
		screen:       screen,
		session:      session,
		keys:         keys,
		swipe:        input.NewSwipeTracker(),
		audio:        audioSvc,
		queue:        queue,
		recorder:     scoreSvc.Recorder(),
		router:       router,
		metrics:      metrics,
		registry:     statusSvc.Registry(),
		orchestrator: orchestrator,
		debug:        debug,
		events:       make(chan tcell.Event, constant.InputBufferSize),
	}
	h.loop = engine.NewFrameLoop(engine.NewMonotonicTimeProvider(), constant.FrameUpdateInterval, h.frame)

	parent, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(parent)
	g.Go(core.Guard(func() error {
		h.pump(ctx)
		return nil
	}))
	g.Go(core.Guard(func() error {
		// Quitting stops the pump: cancel covers a blocked send, Fini a blocked PollEvent
		defer screen.Fini()
		defer cancel()
		err := h.loop.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}))

	err = g.Wait()
	router.DispatchAll()
	log.Printf("session %s ended: score %d, high %d", session.ID(), session.Score(), session.HighScore())
	return err
}

// host wires terminal input and rendering to one session
// Everything except pump runs on the frame goroutine
type host struct {
	screen       tcell.Screen
	session      *game.Session
	keys         *input.KeyTable
	swipe        *input.SwipeTracker
	audio        *audio.AudioService
	queue        *events.EventQueue
	recorder     *highscore.Recorder
	router       *events.Router
	metrics      *status.GameMetrics
	registry     *status.Registry
	orchestrator *render.RenderOrchestrator
	debug        *renderers.DebugRenderer
	loop         *engine.FrameLoop

	events chan tcell.Event
}

// pump forwards terminal events until the screen is finalized or ctx ends
func (h *host) pump(ctx context.Context) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// frame drains input, advances the session and draws
func (h *host) frame(now time.Duration) bool {
drain:
	for {
		select {
		case ev := <-h.events:
			if !h.handle(ev) {
				return false
			}
		default:
			break drain
		}
	}

	h.session.OnFrame(now)
	h.router.DispatchAll()
	if h.session.RepairFood() {
		log.Printf("food regenerated at %v", h.session.Grid().Food)
	}

	snap := h.session.Snapshot()
	h.metrics.Observe(snap, h.loop.Frames())
	h.metrics.ObserveHealth(h.queue.Dropped(), h.session.FoodFallbacks())

	w, ht := h.orchestrator.Size()
	ctx := render.NewRenderContext(snap, w, ht)
	ctx.Muted = h.audio.IsDisabled() || h.audio.Player().IsMuted()
	if snap.State == game.StateGameOver {
		for _, rec := range h.recorder.Recent() {
			ctx.Recent = append(ctx.Recent, rec.Summary())
		}
	}
	if h.debug.IsVisible() {
		ctx.Metrics = h.registry.Lines()
		ctx.Food = h.metrics.Food()
	}
	h.orchestrator.RenderFrame(ctx)
	return true
}

// handle applies one terminal event, false requests shutdown
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.command(h.keys.Lookup(ev))
	case *tcell.EventMouse:
		return h.command(h.swipe.Handle(ev))
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.orchestrator.Resize(w, ht)
	}
	return true
}

func (h *host) command(cmd input.Command) bool {
	if !input.IsHostCommand(cmd) {
		input.Apply(cmd, h.session)
		return true
	}
	switch cmd {
	case input.CmdQuit:
		return false
	case input.CmdToggleMute:
		muted := h.audio.Player().ToggleMute()
		log.Printf("audio muted: %v", muted)
	case input.CmdToggleDebug:
		h.debug.Toggle()
	}
	return true
}
