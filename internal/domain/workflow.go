package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/bytebeat/internal/adapter"
	"github.com/mouse-blink/bytebeat/internal/domain/expr"
	m "github.com/mouse-blink/bytebeat/internal/model"
)

// WatchInterval is how often a watched source file is polled.
const WatchInterval = 250 * time.Millisecond

// SourceArgs selects where the expression comes from. Path wins over Code;
// a Path of "-" reads standard input.
type SourceArgs struct {
	Path m.Path
	Code string
}

// PlayArgs configures an interactive session.
type PlayArgs struct {
	SourceArgs
	Config m.RenderConfig
	// Window overrides the auto-mode plot window when positive.
	Window int
	// Watch reloads Path whenever it changes on disk.
	Watch   bool
	NoAudio bool
}

// EvalArgs configures an offline evaluation listing.
type EvalArgs struct {
	SourceArgs
	Config m.RenderConfig
	From   int64
	Count  int
	Step   int64
}

// PlotArgs configures a single plot snapshot.
type PlotArgs struct {
	SourceArgs
	Config m.RenderConfig
	// At is the session time the plot window ends at.
	At     time.Duration
	Window int
	Width  int
	Height int
	// Out is the SVG destination, standard output when empty.
	Out m.Path
}

// Workflow defines the use cases exposed by the command line.
type Workflow interface {
	Play(ctx context.Context, args PlayArgs) error
	Eval(args EvalArgs) error
	Plot(args PlotArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	plotStore adapter.PlotStore
	audio     adapter.AudioAdapter
	silent    adapter.AudioAdapter
	ui        UI
	compiler  Compiler
	log       *slog.Logger
}

// NewWorkflow creates a Workflow. silent is used instead of audio when
// playback runs without a sound device.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	plotStore adapter.PlotStore,
	audio adapter.AudioAdapter,
	silent adapter.AudioAdapter,
	ui UI,
	log *slog.Logger,
) Workflow {
	log = orDiscard(log)

	return &workflow{
		fsAdapter: fsAdapter,
		plotStore: plotStore,
		audio:     audio,
		silent:    silent,
		ui:        ui,
		compiler:  NewCompiler(log),
		log:       log,
	}
}

func (w *workflow) loadSource(args SourceArgs) (m.Source, error) {
	if args.Path == "" {
		return m.Source{Text: args.Code}, nil
	}

	source, err := w.fsAdapter.Read(args.Path)
	if err != nil {
		return m.Source{}, fmt.Errorf("reading %s: %w", args.Path, err)
	}

	return source, nil
}

// Play runs the live session: the UI, the notification relay and the
// optional file watcher share one errgroup and stop together.
func (w *workflow) Play(ctx context.Context, args PlayArgs) error {
	source, err := w.loadSource(args.SourceArgs)
	if err != nil {
		return err
	}

	audio := w.audio
	if args.NoAudio {
		audio = w.silent
	}

	engine := NewEngine(w.compiler, audio.DeviceRate(), w.log)
	plotter := NewPlotter(w.compiler, nil, args.Window, w.log)
	player := NewPlayer(engine, plotter, audio, args.Config, w.log)

	defer func() {
		if err := player.Close(); err != nil {
			w.log.Warn("closing player", "error", err)
		}

		w.ui.Close()
	}()

	player.Edit(source.Text)

	if err := player.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()

		return w.ui.Run(ctx, player)
	})

	g.Go(func() error {
		return player.Run(ctx)
	})

	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case n := <-player.Notifications():
				w.ui.DisplayNotification(n)
			}
		}
	})

	if args.Watch && args.Path != "" && args.Path != adapter.StdinPath {
		g.Go(func() error {
			return w.fsAdapter.Watch(ctx, args.Path, WatchInterval, func(changed m.Source) {
				w.log.Info("source changed", "path", changed.Origin, "hash", changed.Hash)
				player.Edit(changed.Text)
			})
		})
	}

	return g.Wait()
}

// Eval lists samples and tap values for a range of ticks.
func (w *workflow) Eval(args EvalArgs) error {
	source, err := w.loadSource(args.SourceArgs)
	if err != nil {
		return err
	}

	cfg := args.Config.Normalized()

	prog, err := w.compiler.Compile(source.Text, DetectTapMode(source.Text), cfg.Classic)
	if err != nil {
		return err
	}

	step := args.Step
	if step <= 0 {
		step = 1
	}

	scope := prog.NewScope(nil)
	rows := make([]m.EvalRow, 0, max(args.Count, 0))

	for i := 0; i < args.Count; i++ {
		tick := args.From + int64(i)*step

		x := float64(tick)
		if cfg.Float {
			x /= float64(cfg.SampleRate)
		}

		res, err := prog.Eval(scope, x)
		if err != nil {
			return fmt.Errorf("evaluating t=%d: %w", tick, err)
		}

		output := expr.ByteOf(res.Sample)
		if cfg.Float {
			output = int(math.Round((clampSigned(res.Sample) + 1) / 2 * 255))
		}

		if cfg.Classic {
			emitted := res.Sample
			if !cfg.Float {
				emitted = float64(output)
			}

			scope.History().Push(historyValue(emitted, cfg.Float))
		}

		rows = append(rows, m.EvalRow{
			T:      x,
			Sample: res.Sample,
			Output: output,
			Taps:   append([]float64(nil), res.Taps...),
		})
	}

	return w.ui.DisplayEval(rows, prog.Taps())
}

// Plot renders one plot window to SVG.
func (w *workflow) Plot(args PlotArgs) error {
	source, err := w.loadSource(args.SourceArgs)
	if err != nil {
		return err
	}

	plotter := NewPlotter(w.compiler, nil, args.Window, w.log)

	if err := plotter.Load(source.Text, args.Config, DetectTapMode(source.Text)); err != nil {
		return err
	}

	series, err := plotter.SampleAt(args.At)
	if err != nil {
		return err
	}

	plots := Render(series, float64(args.Width), float64(args.Height))

	if err := w.plotStore.Save(args.Out, plots, args.Width, args.Height); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}

	if args.Out == "" {
		return nil
	}

	return w.ui.DisplayPlot(args.Out, plots)
}
