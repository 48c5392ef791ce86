package expr

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	m "github.com/mouse-blink/bytebeat/internal/model"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
)

type lexeme struct {
	kind tokenKind
	// text is the operator symbol, identifier name or number literal.
	text string
	num  float64
	pos  int
	end  int
	// newline is set when a line break separates the token from its predecessor.
	newline bool
}

func (l lexeme) String() string {
	switch l.kind {
	case tokEOF:
		return "end of expression"
	case tokNumber:
		return "number " + l.text
	case tokIdent:
		return "identifier " + l.text
	default:
		return strconv.Quote(l.text)
	}
}

// fusions glue adjacent Go tokens into operators Go does not have.
var fusions = map[[2]string]string{
	{">>", ">"}:  ">>>",
	{">>", ">="}: ">>>=",
	{"*", "*"}:   "**",
	{"*", "*="}:  "**=",
	{"==", "="}:  "===",
	{"!=", "="}:  "!==",
}

var supportedOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true,
	"&": true, "|": true, "^": true, "<<": true, ">>": true,
	"+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
	"&&": true, "||": true, "==": true, "!=": true,
	"<": true, ">": true, "<=": true, ">=": true, "=": true, "!": true, "~": true,
	"(": true, ")": true, "[": true, "]": true, ",": true, ".": true,
	";": true, ":": true, "?": true,
}

// lex tokenizes src with go/scanner and rewrites the Go token stream into
// the operator set of the expression language.
func lex(src string) ([]lexeme, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	// go/scanner keeps going after an error (an unterminated comment just
	// swallows the rest of the input), so the first report aborts lexing.
	var scanErr error

	var s scanner.Scanner
	s.Init(file, []byte(src), func(p token.Position, msg string) {
		if scanErr == nil && !tolerated(src, p.Offset, msg) {
			scanErr = &m.CompileError{Offset: p.Offset, Msg: msg}
		}
	}, 0)

	var out []lexeme

	prevEnd := 0

	for {
		pos, tok, lit := s.Scan()
		if scanErr != nil {
			return nil, scanErr
		}

		if tok == token.EOF {
			out = append(out, lexeme{kind: tokEOF, pos: len(src), end: len(src)})

			return out, nil
		}

		// automatic semicolons carry "\n"; line breaks are tracked below instead
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		off := file.Offset(pos)

		lx, err := convert(tok, lit, off)
		if err != nil {
			return nil, err
		}

		lx.newline = strings.Contains(src[prevEnd:off], "\n")
		prevEnd = lx.end

		out = appendLexeme(out, lx)
	}
}

// tolerated reports scanner complaints about input the expression language
// accepts: '?' is rewritten by convert, and legacy "08"-style literals are
// decimal (parseNumber still rejects "0o8").
func tolerated(src string, off int, msg string) bool {
	if off < len(src) && src[off] == '?' {
		return true
	}

	return strings.HasPrefix(msg, "invalid digit") && strings.HasSuffix(msg, "in octal literal")
}

func convert(tok token.Token, lit string, off int) (lexeme, error) {
	switch {
	case tok == token.IDENT || tok.IsKeyword():
		return lexeme{kind: tokIdent, text: lit, pos: off, end: off + len(lit)}, nil

	case tok == token.INT || tok == token.FLOAT:
		v, err := parseNumber(lit)
		if err != nil {
			return lexeme{}, &m.CompileError{Offset: off, Msg: fmt.Sprintf("malformed number %q", lit)}
		}

		return lexeme{kind: tokNumber, text: lit, num: v, pos: off, end: off + len(lit)}, nil

	case tok == token.ILLEGAL && lit == "?":
		return lexeme{kind: tokOp, text: "?", pos: off, end: off + 1}, nil

	case tok == token.IMAG, tok == token.CHAR, tok == token.STRING:
		return lexeme{}, &m.CompileError{Offset: off, Msg: fmt.Sprintf("unsupported literal %s", lit)}

	case tok == token.ILLEGAL:
		return lexeme{}, &m.CompileError{Offset: off, Msg: fmt.Sprintf("unexpected character %q", lit)}
	}

	text := tok.String()
	if tok == token.ARROW {
		// "t<-1" is a comparison with a negative operand
		text = "<-"
	} else if !supportedOps[text] {
		return lexeme{}, &m.CompileError{Offset: off, Msg: fmt.Sprintf("unsupported operator %q", text)}
	}

	return lexeme{kind: tokOp, text: text, pos: off, end: off + len(text)}, nil
}

func appendLexeme(out []lexeme, lx lexeme) []lexeme {
	if lx.kind != tokOp {
		return append(out, lx)
	}

	if lx.text == "<-" {
		return append(out,
			lexeme{kind: tokOp, text: "<", pos: lx.pos, end: lx.pos + 1, newline: lx.newline},
			lexeme{kind: tokOp, text: "-", pos: lx.pos + 1, end: lx.end},
		)
	}

	if n := len(out); n > 0 {
		prev := out[n-1]
		if fused, ok := fusions[[2]string{prev.text, lx.text}]; ok && prev.kind == tokOp && prev.end == lx.pos {
			out[n-1] = lexeme{kind: tokOp, text: fused, pos: prev.pos, end: lx.end, newline: prev.newline}

			return out
		}
	}

	return append(out, lx)
}

func parseNumber(lit string) (float64, error) {
	if v, err := strconv.ParseInt(lit, 0, 64); err == nil {
		return float64(v), nil
	}

	if v, err := strconv.ParseUint(lit, 0, 64); err == nil {
		return float64(v), nil
	}

	return strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
}
