package expr

import (
	"fmt"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

// Binding powers, loosest first. Values follow JavaScript operator precedence.
const (
	bpComma = iota + 1
	bpAssign
	bpCond
	bpLogicalOr
	bpLogicalAnd
	bpBitOr
	bpBitXor
	bpBitAnd
	bpEquality
	bpRelational
	bpShift
	bpAdditive
	bpMultiplicative
	bpPower
	bpPostfix
)

func infixBP(op string) (int, bool) {
	switch op {
	case ",":
		return bpComma, true
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", ">>>=", "**=":
		return bpAssign, true
	case "?":
		return bpCond, true
	case "||":
		return bpLogicalOr, true
	case "&&":
		return bpLogicalAnd, true
	case "|":
		return bpBitOr, true
	case "^":
		return bpBitXor, true
	case "&":
		return bpBitAnd, true
	case "==", "!=", "===", "!==":
		return bpEquality, true
	case "<", ">", "<=", ">=":
		return bpRelational, true
	case "<<", ">>", ">>>":
		return bpShift, true
	case "+", "-":
		return bpAdditive, true
	case "*", "/", "%":
		return bpMultiplicative, true
	case "**":
		return bpPower, true
	case "(", "[", ".":
		return bpPostfix, true
	}

	return 0, false
}

func isRightAssoc(bp int) bool {
	return bp == bpAssign || bp == bpCond || bp == bpPower
}

type parser struct {
	src  string
	toks []lexeme
	i    int
}

// parse turns the stripped expression into a list of statements.
func parse(src string) ([]node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{src: src, toks: toks}

	return p.program()
}

func (p *parser) peek() lexeme { return p.toks[p.i] }

func (p *parser) next() lexeme {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}

	return t
}

func (p *parser) isOp(text string) bool {
	t := p.peek()

	return t.kind == tokOp && t.text == text
}

func (p *parser) expect(text string) (lexeme, error) {
	if !p.isOp(text) {
		return lexeme{}, p.unexpected(p.peek(), fmt.Sprintf("expected %q", text))
	}

	return p.next(), nil
}

func (p *parser) unexpected(t lexeme, hint string) error {
	msg := "unexpected " + t.String()
	if hint != "" {
		msg += ", " + hint
	}

	return &m.CompileError{Offset: t.pos, Msg: msg}
}

func (p *parser) program() ([]node, error) {
	var stmts []node

	for p.peek().kind != tokEOF {
		if p.isOp(";") {
			p.next()

			continue
		}

		stmt, err := p.expr(0)
		if err != nil {
			return nil, err
		}

		stmts = append(stmts, stmt)

		t := p.peek()

		switch {
		case t.kind == tokEOF:
		case t.kind == tokOp && t.text == ";":
			p.next()
		case t.newline:
		default:
			return nil, p.unexpected(t, "expected operator or end of statement")
		}
	}

	if len(stmts) == 0 {
		return nil, &m.CompileError{Offset: 0, Msg: "no expression to evaluate"}
	}

	return stmts, nil
}

// expr parses an expression whose operators all bind tighter than minBP.
func (p *parser) expr(minBP int) (node, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.kind != tokOp {
			return left, nil
		}

		bp, ok := infixBP(t.text)
		if !ok || bp <= minBP {
			return left, nil
		}

		p.next()

		left, err = p.infix(left, t, bp)
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) prefix() (node, error) {
	t := p.next()

	switch t.kind {
	case tokNumber:
		return &numberLit{extent{t.pos, t.end}, t.num}, nil
	case tokIdent:
		return &ident{extent{t.pos, t.end}, t.text}, nil
	case tokEOF:
		return nil, p.unexpected(t, "expected operand")
	}

	switch t.text {
	case "-", "+", "!", "~":
		x, err := p.expr(bpPower)
		if err != nil {
			return nil, err
		}

		// -2**2 is ambiguous and must be written (-2)**2 or -(2**2)
		if p.isOp("**") {
			return nil, p.unexpected(p.peek(), "parenthesize the unary operand of **")
		}

		_, end := x.span()

		return &unaryExpr{extent{t.pos, end}, t.text, x}, nil

	case "(":
		inner, err := p.expr(0)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(")"); err != nil {
			return nil, err
		}

		return inner, nil

	case "[":
		elems, closing, err := p.list("]")
		if err != nil {
			return nil, err
		}

		return &arrayLit{extent{t.pos, closing.end}, elems}, nil
	}

	return nil, p.unexpected(t, "expected operand")
}

func (p *parser) infix(left node, op lexeme, bp int) (node, error) {
	pos, _ := left.span()

	switch op.text {
	case "(":
		return p.call(left, op)

	case "[":
		index, err := p.expr(0)
		if err != nil {
			return nil, err
		}

		closing, err := p.expect("]")
		if err != nil {
			return nil, err
		}

		return &indexExpr{extent{pos, closing.end}, left, index}, nil

	case ".":
		name := p.next()
		if name.kind != tokIdent {
			return nil, p.unexpected(name, "expected property name")
		}

		if id, ok := left.(*ident); ok && id.name == "Math" {
			return &mathRef{extent{pos, name.end}, name.text}, nil
		}

		return &selectorExpr{extent{pos, name.end}, left, name.text}, nil

	case "?":
		then, err := p.expr(bpComma)
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(":"); err != nil {
			return nil, err
		}

		els, err := p.expr(bpComma)
		if err != nil {
			return nil, err
		}

		_, end := els.span()

		return &condExpr{extent{pos, end}, left, then, els}, nil

	case ",":
		right, err := p.expr(bpComma)
		if err != nil {
			return nil, err
		}

		_, end := right.span()
		if seq, ok := left.(*seqExpr); ok {
			seq.list = append(seq.list, right)
			seq.end = end

			return seq, nil
		}

		return &seqExpr{extent{pos, end}, []node{left, right}}, nil
	}

	rbp := bp
	if isRightAssoc(bp) {
		rbp = bp - 1
	}

	right, err := p.expr(rbp)
	if err != nil {
		return nil, err
	}

	_, end := right.span()

	if bp == bpAssign {
		target, ok := left.(*ident)
		if !ok {
			return nil, &m.CompileError{Offset: op.pos, Msg: "invalid assignment target"}
		}

		return &assignExpr{extent{pos, end}, op.text, target, right}, nil
	}

	return &binaryExpr{extent{pos, end}, op.text, left, right}, nil
}

func (p *parser) call(callee node, open lexeme) (node, error) {
	pos, _ := callee.span()

	args, closing, err := p.list(")")
	if err != nil {
		return nil, err
	}

	switch fn := callee.(type) {
	case *ident:
		if fn.name == "plot" {
			return &plotCall{extent: extent{pos, closing.end}, args: args, argPos: open.end, argEnd: closing.pos}, nil
		}

		return &callExpr{extent{pos, closing.end}, fn.name, args}, nil
	case *mathRef:
		return &callExpr{extent{pos, closing.end}, fn.name, args}, nil
	}

	return nil, &m.CompileError{Offset: open.pos, Msg: "only functions can be called"}
}

// list parses comma separated expressions up to the closing token.
func (p *parser) list(closer string) ([]node, lexeme, error) {
	var items []node

	for !p.isOp(closer) {
		if len(items) > 0 {
			if _, err := p.expect(","); err != nil {
				return nil, lexeme{}, err
			}

			if p.isOp(closer) {
				break
			}
		}

		item, err := p.expr(bpComma)
		if err != nil {
			return nil, lexeme{}, err
		}

		items = append(items, item)
	}

	return items, p.next(), nil
}
