package cmd

import (
	"errors"
	"testing"

	"github.com/mouse-blink/bytebeat/internal/domain"
	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayCmd_InlineExpression(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Play", mock.Anything, mock.MatchedBy(func(args domain.PlayArgs) bool {
		return args.Code == "t & t >> 8" &&
			args.Path == "" &&
			args.Config == m.NewRenderConfig(8000, false, false, 0.5) &&
			args.Watch &&
			!args.NoAudio
	})).Return(nil)

	cmd, _ := newTestRootCmd(newPlayCmd())
	cmd.SetArgs([]string{"play", "t & t >> 8"})

	require.NoError(t, cmd.Execute())
}

func TestPlayCmd_FileAndFlags(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Play", mock.Anything, mock.MatchedBy(func(args domain.PlayArgs) bool {
		return args.Path == m.Path("examples/crowd.bb") &&
			args.Config.SampleRate == 11025 &&
			args.Config.Classic &&
			args.Config.Float &&
			args.Config.Gain == 0.25 &&
			args.Window == 512 &&
			!args.Watch &&
			args.NoAudio
	})).Return(nil)

	cmd, _ := newTestRootCmd(newPlayCmd())
	cmd.SetArgs([]string{
		"play", "--file", "examples/crowd.bb", "--rate", "11025", "--classic", "--float",
		"--gain", "0.25", "--window", "512", "--watch=false", "--no-audio",
	})

	require.NoError(t, cmd.Execute())
}

func TestPlayCmd_EmptySourceStartsEditor(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Play", mock.Anything, mock.MatchedBy(func(args domain.PlayArgs) bool {
		return args.Code == "" && args.Path == ""
	})).Return(nil)

	cmd, _ := newTestRootCmd(newPlayCmd())
	cmd.SetArgs([]string{"play"})

	require.NoError(t, cmd.Execute())
}

func TestPlayCmd_WorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Play", mock.Anything, mock.Anything).Return(errors.New("no default output device"))

	cmd, out := newTestRootCmd(newPlayCmd())
	cmd.SetArgs([]string{"play", "t"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, out.String(), "no default output device")
}
