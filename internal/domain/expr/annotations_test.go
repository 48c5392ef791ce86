package expr

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/bytebeat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnnotations(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []m.Tap
	}{
		{"bare name", "a = t // plot(a)", []m.Tap{{Name: "a"}}},
		{"with window", "a = t //plot( a , 512 )", []m.Tap{{Name: "a", Window: 512}}},
		{"window below minimum", "// plot(a, 1)", []m.Tap{{Name: "a", Window: m.MinWindow}}},
		{"window above maximum", "// plot(a, 9999)", []m.Tap{{Name: "a", Window: m.MaxWindow}}},
		{"one per line", "// plot(a)\n// plot(b, 64)", []m.Tap{{Name: "a"}, {Name: "b", Window: 64}}},
		{"not an identifier", "// plot(a+b)", nil},
		{"dollar sign", "// plot($x)", nil},
		{"leading digit", "// plot(1a)", nil},
		{"unicode letters", "// plot(ä_1)", []m.Tap{{Name: "ä_1"}}},
		{"bad window", "// plot(a, big)", nil},
		{"too many arguments", "// plot(a, 1, 2)", nil},
		{"unclosed", "// plot(a", nil},
		{"other comment", "// just plot(a) later", nil},
		{"code is ignored", "plot(a)", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnnotations(tt.source))
		})
	}
}

func TestAnnotationWindow(t *testing.T) {
	assert.Equal(t, m.DefaultAnnotationWindow, AnnotationWindow(nil))
	assert.Equal(t, m.DefaultAnnotationWindow, AnnotationWindow([]m.Tap{{Name: "a"}}))
	assert.Equal(t, m.MinWindow, AnnotationWindow(ParseAnnotations("// plot(a, 1)")))
	assert.Equal(t, m.MaxWindow, AnnotationWindow(ParseAnnotations("// plot(a, 9999)")))
	assert.Equal(t, 600, AnnotationWindow([]m.Tap{{Name: "a", Window: 100}, {Name: "b"}, {Name: "c", Window: 600}}))
}

func TestCompileAnnotated_BindsFinalVariables(t *testing.T) {
	source := "a = t >> 4 // plot(a, 1)\nb = a * 2 // plot(b, 9999)\na | b"

	prog, err := CompileAnnotated(source, Options{})
	require.NoError(t, err)

	require.Equal(t, m.TapAnnotation, prog.Mode())
	require.Equal(t, m.MaxWindow, prog.Window())
	require.Equal(t, []m.Tap{{Name: "a", Window: 8}, {Name: "b", Window: 4096}}, prog.Taps())

	res, err := prog.Eval(prog.NewScope(nil), 160)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20}, res.Taps)
	require.Equal(t, 30.0, res.Sample)
}

func TestCompileAnnotated_InlinePlotIsTransparent(t *testing.T) {
	prog, err := CompileAnnotated("plot(t) + 1 // plot(t)", Options{})
	require.NoError(t, err)

	require.Equal(t, []m.Tap{{Name: "t"}}, prog.Taps())
	require.Equal(t, m.DefaultAnnotationWindow, prog.Window())

	res, err := prog.Eval(prog.NewScope(nil), 10)
	require.NoError(t, err)
	require.Equal(t, 11.0, res.Sample)
	require.Equal(t, []float64{10}, res.Taps)
}

func TestCompileAnnotated_UndefinedVariableIsRuntimeError(t *testing.T) {
	prog, err := CompileAnnotated("t // plot(zz)", Options{})
	require.NoError(t, err)

	_, err = prog.Eval(prog.NewScope(nil), 1)

	var runtimeErr *m.RuntimeError
	require.True(t, errors.As(err, &runtimeErr))
}

func TestCompileAnnotated_FunctionNameIsCompileError(t *testing.T) {
	_, err := CompileAnnotated("t // plot(sin)", Options{})

	var compileErr *m.CompileError
	require.True(t, errors.As(err, &compileErr))
}

func TestCompile_IgnoresAnnotations(t *testing.T) {
	prog, err := Compile("a = t // plot(a, 64)\na", Options{})
	require.NoError(t, err)

	assert.Empty(t, prog.Taps())
	assert.Equal(t, 0, prog.Window())
	assert.Equal(t, m.TapAuto, prog.Mode())
}
