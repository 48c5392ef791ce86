package expr

import "math"

// builtin is a whitelisted math function. Exactly one of unary, binary and
// fold is set; fold functions take any number of arguments.
type builtin struct {
	unary  func(float64) float64
	binary func(float64, float64) float64
	fold   func(acc, v float64) float64
	seed   float64
}

var builtins = map[string]builtin{
	"sin":   {unary: math.Sin},
	"cos":   {unary: math.Cos},
	"tan":   {unary: math.Tan},
	"asin":  {unary: math.Asin},
	"acos":  {unary: math.Acos},
	"atan":  {unary: math.Atan},
	"sinh":  {unary: math.Sinh},
	"cosh":  {unary: math.Cosh},
	"tanh":  {unary: math.Tanh},
	"sqrt":  {unary: math.Sqrt},
	"cbrt":  {unary: math.Cbrt},
	"abs":   {unary: math.Abs},
	"floor": {unary: math.Floor},
	"int":   {unary: math.Floor},
	"ceil":  {unary: math.Ceil},
	"round": {unary: jsRound},
	"trunc": {unary: math.Trunc},
	"sign":  {unary: jsSign},
	"log":   {unary: math.Log},
	"log2":  {unary: math.Log2},
	"log10": {unary: math.Log10},
	"exp":   {unary: math.Exp},
	"atan2": {binary: math.Atan2},
	"pow":   {binary: math.Pow},
	"min":   {fold: math.Min, seed: math.Inf(1)},
	"max":   {fold: math.Max, seed: math.Inf(-1)},
	"hypot": {fold: math.Hypot},
}

var constants = map[string]float64{
	"PI":      math.Pi,
	"E":       math.E,
	"LN2":     math.Ln2,
	"LN10":    math.Ln10,
	"LOG2E":   math.Log2E,
	"LOG10E":  math.Log10E,
	"SQRT2":   math.Sqrt2,
	"SQRT1_2": math.Sqrt2 / 2,
}

// reserved reports whether name cannot be used as a variable.
func reserved(name string) bool {
	if _, ok := builtins[name]; ok {
		return true
	}

	if _, ok := constants[name]; ok {
		return true
	}

	return name == "plot" || name == "Math"
}
