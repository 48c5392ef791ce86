package expr

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// slotT is the variable slot holding the time argument.
const slotT = 0

// Options configures compilation.
type Options struct {
	// Classic makes `h` read the output history instead of a variable.
	Classic bool
}

// Compile builds a program whose taps are the inline plot(...) calls.
func Compile(source string, opts Options) (*Program, error) {
	expression := m.StripComments(source)
	if expression == "" {
		return nil, m.ErrEmptyExpression
	}

	stmts, err := parse(expression)
	if err != nil {
		return nil, err
	}

	c := newCompiler(expression, m.TapAuto, opts)
	c.taps = numberPlotCalls(expression, stmts)

	return c.program(stmts, nil, 0)
}

// CompileAnnotated builds a program whose taps come from
// `// plot(name[, window])` comments. Inline plot(...) calls stay
// transparent but are not recorded.
func CompileAnnotated(source string, opts Options) (*Program, error) {
	expression := m.StripComments(source)
	if expression == "" {
		return nil, m.ErrEmptyExpression
	}

	stmts, err := parse(expression)
	if err != nil {
		return nil, err
	}

	c := newCompiler(expression, m.TapAnnotation, opts)
	c.taps = ParseAnnotations(source)

	bindings := make([]evalFn, 0, len(c.taps))

	for _, tap := range c.taps {
		bind, err := c.identifier(&ident{name: tap.Name})
		if err != nil {
			return nil, fmt.Errorf("plot annotation %q: %w", tap.Name, err)
		}

		bindings = append(bindings, bind)
	}

	return c.program(stmts, bindings, AnnotationWindow(c.taps))
}

type compiler struct {
	src   string
	mode  m.TapMode
	opts  Options
	slots map[string]int
	// cells counts the scratch values reserved for indexed array literals.
	cells int
	taps  []m.Tap
}

func newCompiler(src string, mode m.TapMode, opts Options) *compiler {
	return &compiler{
		src:   src,
		mode:  mode,
		opts:  opts,
		slots: map[string]int{"t": slotT},
	}
}

func (c *compiler) program(stmts []node, bindings []evalFn, window int) (*Program, error) {
	fns := make([]evalFn, 0, len(stmts))

	for _, stmt := range stmts {
		fn, err := c.compile(stmt)
		if err != nil {
			return nil, err
		}

		fns = append(fns, fn)
	}

	return &Program{
		expression: c.src,
		mode:       c.mode,
		classic:    c.opts.Classic,
		body:       sequence(fns),
		bindings:   bindings,
		slots:      len(c.slots),
		cells:      c.cells,
		taps:       c.taps,
		window:     window,
	}, nil
}

func (c *compiler) errorf(n node, format string, args ...any) error {
	pos, _ := n.span()

	return &m.CompileError{Offset: pos, Msg: fmt.Sprintf(format, args...)}
}

func (c *compiler) slot(name string) int {
	if i, ok := c.slots[name]; ok {
		return i
	}

	i := len(c.slots)
	c.slots[name] = i

	return i
}

func (c *compiler) isHistory(name string) bool {
	return c.opts.Classic && name == "h"
}

func (c *compiler) compile(n node) (evalFn, error) {
	switch n := n.(type) {
	case *numberLit:
		v := n.value

		return func(*Scope) float64 { return v }, nil
	case *ident:
		return c.identifier(n)
	case *mathRef:
		if v, ok := constants[n.name]; ok {
			return func(*Scope) float64 { return v }, nil
		}

		return nil, c.errorf(n, "Math.%s is not a constant", n.name)
	case *unaryExpr:
		return c.unary(n)
	case *binaryExpr:
		return c.binary(n)
	case *condExpr:
		return c.conditional(n)
	case *assignExpr:
		return c.assign(n)
	case *callExpr:
		return c.call(n)
	case *plotCall:
		return c.plot(n)
	case *selectorExpr:
		return c.selector(n)
	case *indexExpr:
		return c.index(n)
	case *arrayLit:
		return nil, c.errorf(n, "array literal must be indexed")
	case *seqExpr:
		fns, err := c.compileAll(n.list)
		if err != nil {
			return nil, err
		}

		return sequence(fns), nil
	}

	return nil, c.errorf(n, "unsupported expression")
}

func (c *compiler) compileAll(nodes []node) ([]evalFn, error) {
	fns := make([]evalFn, 0, len(nodes))

	for _, n := range nodes {
		fn, err := c.compile(n)
		if err != nil {
			return nil, err
		}

		fns = append(fns, fn)
	}

	return fns, nil
}

func sequence(fns []evalFn) evalFn {
	if len(fns) == 1 {
		return fns[0]
	}

	return func(s *Scope) float64 {
		var v float64

		for _, fn := range fns {
			v = fn(s)
			if s.err != nil {
				return v
			}
		}

		return v
	}
}

func (c *compiler) identifier(n *ident) (evalFn, error) {
	if v, ok := constants[n.name]; ok {
		return func(*Scope) float64 { return v }, nil
	}

	if c.isHistory(n.name) {
		return func(s *Scope) float64 { return s.history.At(0) }, nil
	}

	if reserved(n.name) {
		return nil, c.errorf(n, "%s is not a value", n.name)
	}

	slot := c.slot(n.name)
	msg := n.name + " is not defined"

	return func(s *Scope) float64 {
		if !s.defined[slot] {
			return s.fail(msg)
		}

		return s.vars[slot]
	}, nil
}

func (c *compiler) unary(n *unaryExpr) (evalFn, error) {
	x, err := c.compile(n.x)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "-":
		return func(s *Scope) float64 { return -x(s) }, nil
	case "+":
		return x, nil
	case "!":
		return func(s *Scope) float64 { return boolean(!truthy(x(s))) }, nil
	case "~":
		return func(s *Scope) float64 { return float64(^ToInt32(x(s))) }, nil
	}

	return nil, c.errorf(n, "unsupported unary operator %q", n.op)
}

func (c *compiler) binary(n *binaryExpr) (evalFn, error) {
	x, err := c.compile(n.x)
	if err != nil {
		return nil, err
	}

	y, err := c.compile(n.y)
	if err != nil {
		return nil, err
	}

	switch n.op {
	case "&&":
		return func(s *Scope) float64 {
			if v := x(s); !truthy(v) {
				return v
			}

			return y(s)
		}, nil
	case "||":
		return func(s *Scope) float64 {
			if v := x(s); truthy(v) {
				return v
			}

			return y(s)
		}, nil
	}

	op, ok := arithmetic(n.op)
	if !ok {
		return nil, c.errorf(n, "unsupported operator %q", n.op)
	}

	return func(s *Scope) float64 { return op(x(s), y(s)) }, nil
}

// arithmetic returns the strict binary operator for symbol, also used by
// compound assignments.
func arithmetic(symbol string) (func(a, b float64) float64, bool) {
	switch symbol {
	case "+":
		return func(a, b float64) float64 { return a + b }, true
	case "-":
		return func(a, b float64) float64 { return a - b }, true
	case "*":
		return func(a, b float64) float64 { return a * b }, true
	case "/":
		return func(a, b float64) float64 { return a / b }, true
	case "%":
		return math.Mod, true
	case "**":
		return math.Pow, true
	case "&":
		return func(a, b float64) float64 { return float64(ToInt32(a) & ToInt32(b)) }, true
	case "|":
		return func(a, b float64) float64 { return float64(ToInt32(a) | ToInt32(b)) }, true
	case "^":
		return func(a, b float64) float64 { return float64(ToInt32(a) ^ ToInt32(b)) }, true
	case "<<":
		return func(a, b float64) float64 { return float64(ToInt32(a) << shiftCount(b)) }, true
	case ">>":
		return func(a, b float64) float64 { return float64(ToInt32(a) >> shiftCount(b)) }, true
	case ">>>":
		return func(a, b float64) float64 { return float64(ToUint32(a) >> shiftCount(b)) }, true
	case "==", "===":
		return func(a, b float64) float64 { return boolean(a == b) }, true
	case "!=", "!==":
		return func(a, b float64) float64 { return boolean(a != b) }, true
	case "<":
		return func(a, b float64) float64 { return boolean(a < b) }, true
	case ">":
		return func(a, b float64) float64 { return boolean(a > b) }, true
	case "<=":
		return func(a, b float64) float64 { return boolean(a <= b) }, true
	case ">=":
		return func(a, b float64) float64 { return boolean(a >= b) }, true
	}

	return nil, false
}

func (c *compiler) conditional(n *condExpr) (evalFn, error) {
	fns, err := c.compileAll([]node{n.cond, n.then, n.els})
	if err != nil {
		return nil, err
	}

	cond, then, els := fns[0], fns[1], fns[2]

	return func(s *Scope) float64 {
		if truthy(cond(s)) {
			return then(s)
		}

		return els(s)
	}, nil
}

func (c *compiler) assign(n *assignExpr) (evalFn, error) {
	name := n.target.name
	if c.isHistory(name) || reserved(name) {
		return nil, c.errorf(n.target, "cannot assign to %s", name)
	}

	value, err := c.compile(n.value)
	if err != nil {
		return nil, err
	}

	slot := c.slot(name)

	if n.op == "=" {
		return func(s *Scope) float64 {
			v := value(s)
			s.vars[slot] = v
			s.defined[slot] = true

			return v
		}, nil
	}

	op, ok := arithmetic(n.op[:len(n.op)-1])
	if !ok {
		return nil, c.errorf(n, "unsupported assignment %q", n.op)
	}

	msg := name + " is not defined"

	return func(s *Scope) float64 {
		if !s.defined[slot] {
			return s.fail(msg)
		}

		v := op(s.vars[slot], value(s))
		s.vars[slot] = v

		return v
	}, nil
}

func (c *compiler) call(n *callExpr) (evalFn, error) {
	b, ok := builtins[n.fn]
	if !ok {
		return nil, c.errorf(n, "%s is not a function", n.fn)
	}

	args, err := c.compileAll(n.args)
	if err != nil {
		return nil, err
	}

	switch {
	case b.unary != nil:
		if len(args) != 1 {
			return nil, c.errorf(n, "%s takes 1 argument, got %d", n.fn, len(args))
		}

		fn, x := b.unary, args[0]

		return func(s *Scope) float64 { return fn(x(s)) }, nil

	case b.binary != nil:
		if len(args) != 2 {
			return nil, c.errorf(n, "%s takes 2 arguments, got %d", n.fn, len(args))
		}

		fn, x, y := b.binary, args[0], args[1]

		return func(s *Scope) float64 { return fn(x(s), y(s)) }, nil
	}

	fold, seed := b.fold, b.seed

	return func(s *Scope) float64 {
		acc := seed
		for _, arg := range args {
			acc = fold(acc, arg(s))
		}

		return acc
	}, nil
}

func (c *compiler) plot(n *plotCall) (evalFn, error) {
	args, err := c.compileAll(n.args)
	if err != nil {
		return nil, err
	}

	value := func(s *Scope) float64 {
		if len(args) == 0 {
			return math.NaN()
		}

		v := args[0](s)
		for _, extra := range args[1:] {
			extra(s)
		}

		return v
	}

	if c.mode != m.TapAuto {
		return value, nil
	}

	tap := n.index

	return func(s *Scope) float64 {
		v := value(s)
		s.taps[tap] = v

		return v
	}, nil
}

func (c *compiler) selector(n *selectorExpr) (evalFn, error) {
	x, err := c.compile(n.x)
	if err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("cannot read property %q of a number", n.sel)

	return func(s *Scope) float64 {
		x(s)

		return s.fail(msg)
	}, nil
}

func (c *compiler) index(n *indexExpr) (evalFn, error) {
	idx, err := c.compile(n.index)
	if err != nil {
		return nil, err
	}

	switch base := n.x.(type) {
	case *arrayLit:
		elems, err := c.compileAll(base.elems)
		if err != nil {
			return nil, err
		}

		// elements run left to right before the index, like any array literal
		from := c.cells
		c.cells += len(elems)

		return func(s *Scope) float64 {
			vals := s.cells[from : from+len(elems)]
			for k, elem := range elems {
				vals[k] = elem(s)
			}

			i, ok := index(idx(s))
			if !ok || i >= len(vals) {
				return math.NaN()
			}

			return vals[i]
		}, nil

	case *ident:
		if c.isHistory(base.name) {
			return func(s *Scope) float64 {
				i, ok := index(idx(s))
				if !ok {
					return math.NaN()
				}

				return s.history.At(i)
			}, nil
		}
	}

	x, err := c.compile(n.x)
	if err != nil {
		return nil, err
	}

	return func(s *Scope) float64 {
		x(s)
		idx(s)

		return s.fail("cannot index a number")
	}, nil
}
