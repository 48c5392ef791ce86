package expr

// node is an expression tree element. Every node spans [pos, end) of the
// stripped expression text.
type node interface {
	span() (int, int)
}

type extent struct {
	pos, end int
}

func (e extent) span() (int, int) { return e.pos, e.end }

type (
	numberLit struct {
		extent
		value float64
	}

	ident struct {
		extent
		name string
	}

	// mathRef is Math.name.
	mathRef struct {
		extent
		name string
	}

	unaryExpr struct {
		extent
		op string
		x  node
	}

	binaryExpr struct {
		extent
		op   string
		x, y node
	}

	condExpr struct {
		extent
		cond, then, els node
	}

	assignExpr struct {
		extent
		op     string
		target *ident
		value  node
	}

	callExpr struct {
		extent
		fn   string
		args []node
	}

	// plotCall is the reserved plot(...) marker. argPos and argEnd delimit the
	// argument text between the parentheses.
	plotCall struct {
		extent
		args           []node
		argPos, argEnd int
		index          int
	}

	selectorExpr struct {
		extent
		x   node
		sel string
	}

	indexExpr struct {
		extent
		x, index node
	}

	arrayLit struct {
		extent
		elems []node
	}

	// seqExpr is the comma operator.
	seqExpr struct {
		extent
		list []node
	}
)

// walkPostOrder visits the children of n left to right, then n itself.
func walkPostOrder(n node, fn func(node)) {
	switch n := n.(type) {
	case *unaryExpr:
		walkPostOrder(n.x, fn)
	case *binaryExpr:
		walkPostOrder(n.x, fn)
		walkPostOrder(n.y, fn)
	case *condExpr:
		walkPostOrder(n.cond, fn)
		walkPostOrder(n.then, fn)
		walkPostOrder(n.els, fn)
	case *assignExpr:
		walkPostOrder(n.value, fn)
	case *callExpr:
		walkAll(n.args, fn)
	case *plotCall:
		walkAll(n.args, fn)
	case *selectorExpr:
		walkPostOrder(n.x, fn)
	case *indexExpr:
		walkPostOrder(n.x, fn)
		walkPostOrder(n.index, fn)
	case *arrayLit:
		walkAll(n.elems, fn)
	case *seqExpr:
		walkAll(n.list, fn)
	}

	fn(n)
}

func walkAll(nodes []node, fn func(node)) {
	for _, n := range nodes {
		walkPostOrder(n, fn)
	}
}
