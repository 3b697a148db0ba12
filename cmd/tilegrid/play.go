package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/tilegrid/internal/application/game"
	"github.com/younwookim/tilegrid/internal/application/replay"
	"github.com/younwookim/tilegrid/internal/application/scene/playing"
	"github.com/younwookim/tilegrid/internal/application/session"
	"github.com/younwookim/tilegrid/internal/application/system"
	"github.com/younwookim/tilegrid/internal/infrastructure/config"
	"github.com/younwookim/tilegrid/internal/infrastructure/ebitenio"
	"github.com/younwookim/tilegrid/internal/infrastructure/terminal"
)

const (
	backendEbiten   = "ebiten"
	backendTerminal = "terminal"
)

var (
	flagPlayMap     string
	flagPlayLevel   string
	flagPlayBackend string
	flagPlayRecord  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a map",
	Long: `Opens a window (or the terminal) showing the map scaled to fit and
runs the game loop until Escape is pressed or the window is closed.

The map comes from --map, --level, $TILEGRID_MAP, or the built-in "demo"
level, in that order. --backend defaults to $TILEGRID_BACKEND, then ebiten.

Examples:
  tilegrid play
  tilegrid play --level tiny
  tilegrid play --map ./maps/cave.map --backend terminal --record`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayMap, "map", "", "Path to a map file")
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Built-in map name (see 'tilegrid maps')")
	playCmd.Flags().StringVar(&flagPlayBackend, "backend", "", "Output backend: ebiten or terminal")
	playCmd.Flags().BoolVar(&flagPlayRecord, "record", false, "Print the played input as a simulate script on exit")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := resolveBackend(flagPlayBackend)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	src := resolveMapSource(flagPlayMap, flagPlayLevel)
	m, err := loadMap(ctx, src, cfg)
	if err != nil {
		return err
	}

	opts, err := sessionOptions(cfg)
	if err != nil {
		return err
	}
	sess := session.New(m, opts, logger)

	var recorder *replay.Recorder
	record := func(input session.InputSource) session.InputSource {
		if !flagPlayRecord {
			return input
		}
		recorder = replay.NewRecorder(input, src.String())
		return recorder
	}

	switch backend {
	case backendTerminal:
		err = playTerminal(ctx, sess, cfg, record)
	default:
		err = playEbiten(ctx, sess, cfg, record)
	}

	if recorder != nil {
		recorder.Stop()
		data := recorder.Data()
		logger.Info("input recorded", "frames", recorder.FrameCount(), "events", data.EventCount())
		fmt.Fprintln(cmd.OutOrStdout(), replay.FormatScript(data))
	}

	return err
}

// resolveBackend applies flag, then TILEGRID_BACKEND, then ebiten
func resolveBackend(flag string) (string, error) {
	backend := flag
	if backend == "" {
		backend = os.Getenv(envBackend)
	}
	if backend == "" {
		backend = backendEbiten
	}

	switch backend {
	case backendEbiten, backendTerminal:
		return backend, nil
	default:
		return "", fmt.Errorf("unknown backend %q: want %s or %s", backend, backendEbiten, backendTerminal)
	}
}

func playEbiten(ctx context.Context, sess *session.Session, cfg *config.Settings, wrap func(session.InputSource) session.InputSource) error {
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	// The closing request reaches the session as a quit event
	ebiten.SetWindowClosingHandled(true)

	input := wrap(quitOnDone(ctx, ebitenio.NewInput()))
	g := game.New(playing.New(sess, input, logger), cfg.Display.TPS)

	// RunGame returns nil after ebiten.Termination
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

func playTerminal(ctx context.Context, sess *session.Session, cfg *config.Settings, wrap func(session.InputSource) session.InputSource) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	// tcell owns the tty; logs go to --log-file or nowhere
	if flagLogFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	loop := session.NewLoop(sess, screen, wrap(terminal.NewInput(screen)), cfg.Display.TPS, logger)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// doneInput reports a quit once ctx is done, otherwise polls its source
type doneInput struct {
	ctx    context.Context
	source session.InputSource
}

func quitOnDone(ctx context.Context, source session.InputSource) session.InputSource {
	return &doneInput{ctx: ctx, source: source}
}

func (in *doneInput) Poll() []system.Event {
	if in.ctx.Err() != nil {
		return []system.Event{system.QuitEvent()}
	}
	return in.source.Poll()
}
