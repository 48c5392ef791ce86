package domain_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	adaptermocks "github.com/mouse-blink/bytebeat/internal/adapter/mocks"
	"github.com/mouse-blink/bytebeat/internal/domain"
	domainmocks "github.com/mouse-blink/bytebeat/internal/domain/mocks"
	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workflowFixture struct {
	fs     *adaptermocks.MockSourceFSAdapter
	store  *adaptermocks.MockPlotStore
	audio  *adaptermocks.MockAudioAdapter
	silent *adaptermocks.MockAudioAdapter
	stream *adaptermocks.MockAudioStream
	ui     *domainmocks.MockUI
	wf     domain.Workflow
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	f := workflowFixture{
		fs:     adaptermocks.NewMockSourceFSAdapter(t),
		store:  adaptermocks.NewMockPlotStore(t),
		audio:  adaptermocks.NewMockAudioAdapter(t),
		silent: adaptermocks.NewMockAudioAdapter(t),
		stream: adaptermocks.NewMockAudioStream(t),
		ui:     domainmocks.NewMockUI(t),
	}
	f.wf = domain.NewWorkflow(f.fs, f.store, f.audio, f.silent, f.ui, nil)

	return f
}

func byteConfig() m.RenderConfig {
	return m.NewRenderConfig(8000, false, false, 0.5)
}

func TestWorkflow_Eval(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayEval(mock.Anything, mock.Anything).
		RunAndReturn(func(rows []m.EvalRow, taps []m.Tap) error {
			assert.Equal(t, []m.Tap{{Name: "t>>1"}}, taps)
			assert.Equal(t, []m.EvalRow{
				{T: 0, Sample: 1, Output: 1, Taps: []float64{0}},
				{T: 2, Sample: 2, Output: 2, Taps: []float64{1}},
				{T: 4, Sample: 258, Output: 2, Taps: []float64{2}},
			}, rows)

			return nil
		})

	err := f.wf.Eval(domain.EvalArgs{
		SourceArgs: domain.SourceArgs{Code: "plot(t>>1) + (t == 4 ? 256 : 1)"},
		Config:     byteConfig(),
		Count:      3,
		Step:       2,
	})
	require.NoError(t, err)
}

func TestWorkflow_Eval_FromFile(t *testing.T) {
	f := newWorkflowFixture(t)

	f.fs.EXPECT().Read(m.Path("beat.bb")).Return(m.Source{Origin: "beat.bb", Text: "a = t*2 // plot(a)\na"}, nil)
	f.ui.EXPECT().DisplayEval(mock.Anything, []m.Tap{{Name: "a"}}).
		RunAndReturn(func(rows []m.EvalRow, _ []m.Tap) error {
			require.Len(t, rows, 2)
			assert.Equal(t, 10.0, rows[0].T)
			assert.Equal(t, []float64{20}, rows[0].Taps)
			assert.Equal(t, 11.0, rows[1].T)

			return nil
		})

	err := f.wf.Eval(domain.EvalArgs{
		SourceArgs: domain.SourceArgs{Path: "beat.bb", Code: "ignored"},
		Config:     byteConfig(),
		From:       10,
		Count:      2,
	})
	require.NoError(t, err)
}

func TestWorkflow_Eval_FloatMode(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayEval(mock.Anything, mock.Anything).
		RunAndReturn(func(rows []m.EvalRow, _ []m.Tap) error {
			require.Len(t, rows, 2)
			assert.Equal(t, 0.0, rows[0].T)
			assert.Equal(t, 128, rows[0].Output)
			assert.InDelta(t, 1.0/8000, rows[1].T, 1e-12)
			assert.Equal(t, 0, rows[1].Output)

			return nil
		})

	err := f.wf.Eval(domain.EvalArgs{
		SourceArgs: domain.SourceArgs{Code: "t > 0 ? -4 : 0"},
		Config:     m.NewRenderConfig(8000, false, true, 1),
		Count:      2,
	})
	require.NoError(t, err)
}

func TestWorkflow_Eval_ClassicHistory(t *testing.T) {
	f := newWorkflowFixture(t)

	f.ui.EXPECT().DisplayEval(mock.Anything, mock.Anything).
		RunAndReturn(func(rows []m.EvalRow, _ []m.Tap) error {
			require.Len(t, rows, 3)
			assert.Equal(t, []int{200, 144, 88}, []int{rows[0].Output, rows[1].Output, rows[2].Output})

			return nil
		})

	err := f.wf.Eval(domain.EvalArgs{
		SourceArgs: domain.SourceArgs{Code: "h + 200"},
		Config:     m.NewRenderConfig(8000, true, false, 1),
		Count:      3,
	})
	require.NoError(t, err)
}

func TestWorkflow_Eval_Errors(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		f := newWorkflowFixture(t)
		f.fs.EXPECT().Read(m.Path("missing.bb")).Return(m.Source{}, os.ErrNotExist)

		err := f.wf.Eval(domain.EvalArgs{SourceArgs: domain.SourceArgs{Path: "missing.bb"}, Count: 1})
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty expression", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Eval(domain.EvalArgs{SourceArgs: domain.SourceArgs{Code: "// plot(a)"}, Count: 1})
		require.ErrorIs(t, err, m.ErrEmptyExpression)
	})

	t.Run("compile error", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Eval(domain.EvalArgs{SourceArgs: domain.SourceArgs{Code: "t >>"}, Count: 1})

		var compileErr *m.CompileError
		require.True(t, errors.As(err, &compileErr))
	})

	t.Run("runtime error", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Eval(domain.EvalArgs{SourceArgs: domain.SourceArgs{Code: "t.foo.bar"}, Count: 1})

		var runtimeErr *m.RuntimeError
		require.True(t, errors.As(err, &runtimeErr))
	})
}

func TestWorkflow_Plot(t *testing.T) {
	t.Run("writes a file and reports it", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.store.EXPECT().Save(m.Path("out.svg"), mock.Anything, 200, 100).
			RunAndReturn(func(_ m.Path, plots []m.Plot, _ int, _ int) error {
				require.Len(t, plots, 2)
				assert.Equal(t, m.SeriesSample, plots[0].Name)
				assert.Equal(t, "t>>2", plots[1].Name)
				assert.Len(t, plots[0].Points, 64)

				return nil
			})
		f.ui.EXPECT().DisplayPlot(m.Path("out.svg"), mock.Anything).Return(nil)

		err := f.wf.Plot(domain.PlotArgs{
			SourceArgs: domain.SourceArgs{Code: "plot(t>>2) * 3"},
			Config:     byteConfig(),
			At:         time.Second,
			Window:     64,
			Width:      200,
			Height:     100,
			Out:        "out.svg",
		})
		require.NoError(t, err)
	})

	t.Run("stdout is not reported", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.store.EXPECT().Save(m.Path(""), mock.Anything, 80, 40).Return(nil)

		err := f.wf.Plot(domain.PlotArgs{
			SourceArgs: domain.SourceArgs{Code: "t"},
			Config:     byteConfig(),
			Window:     16,
			Width:      80,
			Height:     40,
		})
		require.NoError(t, err)
	})

	t.Run("save error", func(t *testing.T) {
		f := newWorkflowFixture(t)

		f.store.EXPECT().Save(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

		err := f.wf.Plot(domain.PlotArgs{SourceArgs: domain.SourceArgs{Code: "t"}, Config: byteConfig(), Window: 16, Out: "x.svg"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("runtime error", func(t *testing.T) {
		f := newWorkflowFixture(t)

		err := f.wf.Plot(domain.PlotArgs{SourceArgs: domain.SourceArgs{Code: "x"}, Config: byteConfig(), Window: 16})

		var runtimeErr *m.RuntimeError
		require.True(t, errors.As(err, &runtimeErr))
	})
}

func expectSilentStream(f workflowFixture) {
	f.silent.EXPECT().DeviceRate().Return(8000)
	f.silent.EXPECT().Open(mock.Anything).Return(f.stream, nil)
	f.stream.EXPECT().Start().Return(nil)
	f.stream.EXPECT().Stop().Return(nil)
	f.stream.EXPECT().Close().Return(nil)
	f.ui.EXPECT().DisplayNotification(mock.Anything).Maybe()
	f.ui.EXPECT().Close().Return()
}

func TestWorkflow_Play(t *testing.T) {
	f := newWorkflowFixture(t)
	expectSilentStream(f)

	f.ui.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, player domain.Player) error {
			assert.Equal(t, m.Running, player.State())
			assert.Equal(t, "t & t >> 8", player.Source())
			assert.Equal(t, 11025, player.Config().SampleRate)

			return nil
		})

	err := f.wf.Play(context.Background(), domain.PlayArgs{
		SourceArgs: domain.SourceArgs{Code: "t & t >> 8"},
		Config:     m.NewRenderConfig(11025, false, false, 0.5),
		NoAudio:    true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Play_WatchesSourceFile(t *testing.T) {
	f := newWorkflowFixture(t)
	expectSilentStream(f)

	f.fs.EXPECT().Read(m.Path("live.bb")).Return(m.Source{Origin: "live.bb", Text: "t"}, nil)
	f.fs.EXPECT().Watch(mock.Anything, m.Path("live.bb"), domain.WatchInterval, mock.Anything).
		RunAndReturn(func(ctx context.Context, path m.Path, _ time.Duration, onChange func(m.Source)) error {
			onChange(m.Source{Origin: path, Text: "t >> 3"})
			<-ctx.Done()

			return nil
		})

	f.ui.EXPECT().Run(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, player domain.Player) error {
			require.Eventually(t, func() bool { return player.Source() == "t >> 3" }, 2*time.Second, 5*time.Millisecond)

			return nil
		})

	err := f.wf.Play(context.Background(), domain.PlayArgs{
		SourceArgs: domain.SourceArgs{Path: "live.bb"},
		Config:     byteConfig(),
		Watch:      true,
		NoAudio:    true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Play_UIError(t *testing.T) {
	f := newWorkflowFixture(t)
	expectSilentStream(f)

	f.ui.EXPECT().Run(mock.Anything, mock.Anything).Return(errors.New("terminal gone"))

	err := f.wf.Play(context.Background(), domain.PlayArgs{
		SourceArgs: domain.SourceArgs{Code: "t"},
		Config:     byteConfig(),
		NoAudio:    true,
	})
	require.EqualError(t, err, "terminal gone")
}

func TestWorkflow_Play_AudioDeviceFailure(t *testing.T) {
	f := newWorkflowFixture(t)

	f.audio.EXPECT().DeviceRate().Return(44100)
	f.audio.EXPECT().Open(mock.Anything).Return(nil, errors.New("no default output device"))
	f.ui.EXPECT().Close().Return()

	err := f.wf.Play(context.Background(), domain.PlayArgs{
		SourceArgs: domain.SourceArgs{Code: "t"},
		Config:     byteConfig(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no default output device")
}
