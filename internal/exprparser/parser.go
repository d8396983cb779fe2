// Package exprparser turns a rate string (spec.md §6's infix grammar) into
// an expr.Term tree plus the free species and parameter names it
// references. It is the single place native rate strings and
// SBML-rewritten kinetic-law strings are parsed, so both follow identical
// evaluation semantics (spec.md §4.1).
package exprparser

import (
	"fmt"
	"strings"

	"github.com/biomodel/reactor/internal/expr"
	"github.com/biomodel/reactor/internal/modelerr"
)

const paramPrefix = "_"

// Keywords reserved by the grammar; they can never be classified as species
// or parameter names.
const (
	keywordVolume = "volume"
	keywordTime   = "t"
)

// Result is the product of parsing one rate string.
type Result struct {
	Term    expr.Term
	Species map[string]struct{}
	Params  map[string]struct{}
}

// Parse parses rate into an expr.Term, classifying every free identifier as
// a species or a parameter. An identifier is a parameter if it was written
// with the `|` surface syntax or already carries the internal reserved
// prefix (the form SBML import rewrites into); `volume` and `t` are
// keywords; everything else is a species. A rate string that does not
// reduce to a well-formed expression fails with modelerr.UnparseableRate.
func Parse(rate string) (result *Result, err error) {
	if trimmed(rate) {
		return nil, modelerr.New(modelerr.UnparseableRate, "empty rate string")
	}

	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = modelerr.Wrap(modelerr.UnparseableRate, fmt.Sprintf("rate %q", rate), perr.err)
			result = nil
		}
	}()

	p := &parser{lex: newLexer(rate), species: map[string]struct{}{}, params: map[string]struct{}{}}
	p.advance()
	term := p.parseExpr()
	p.expect(tokenKindEOF)

	return &Result{Term: term, Species: p.species, Params: p.params}, nil
}

// GetSpeciesAndParameters parses rate in full and reports only its free
// names, matching the catalog-wide "discoverability contract" (spec.md
// §4.3) that lets the model assembler intern names before binding.
func GetSpeciesAndParameters(rate string) (species, params map[string]struct{}, err error) {
	result, err := Parse(rate)
	if err != nil {
		return nil, nil, err
	}
	return result.Species, result.Params, nil
}

type parseError struct{ err error }

func fail(format string, args ...interface{}) {
	panic(parseError{err: fmt.Errorf(format, args...)})
}

type parser struct {
	lex     *lexer
	cur     *token
	species map[string]struct{}
	params  map[string]struct{}
}

func (p *parser) advance() {
	tok, err := p.lex.next()
	if err != nil {
		fail("%w", err)
	}
	p.cur = tok
}

func (p *parser) expect(kind tokenKind) {
	if p.cur.kind != kind {
		fail("expected %s, got %s", kind, p.cur.kind)
	}
	p.advance()
}

// parseExpr handles + and - at the lowest precedence, left-associative.
func (p *parser) parseExpr() expr.Term {
	terms := []expr.Term{p.parseTerm()}
	for p.cur.kind == tokenKindPlus || p.cur.kind == tokenKindMinus {
		negate := p.cur.kind == tokenKindMinus
		p.advance()
		next := p.parseTerm()
		if negate {
			next = &expr.Product{Terms: []expr.Term{&expr.Constant{Value: -1}, next}}
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return &expr.Sum{Terms: terms}
}

// parseTerm handles * and / at the next precedence, left-associative.
func (p *parser) parseTerm() expr.Term {
	terms := []expr.Term{p.parseUnary()}
	for p.cur.kind == tokenKindStar || p.cur.kind == tokenKindSlash {
		invert := p.cur.kind == tokenKindSlash
		p.advance()
		next := p.parseUnary()
		if invert {
			next = &expr.Power{Base: next, Exponent: &expr.Constant{Value: -1}}
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return &expr.Product{Terms: terms}
}

// parseUnary handles a leading unary minus, binding looser than `^`.
func (p *parser) parseUnary() expr.Term {
	if p.cur.kind == tokenKindMinus {
		p.advance()
		return &expr.Product{Terms: []expr.Term{&expr.Constant{Value: -1}, p.parseUnary()}}
	}
	return p.parsePower()
}

// parsePower handles `^`, right-associative and binding tighter than unary
// minus on its left operand (so `-2^2` parses as `-(2^2)`), matching
// conventional infix precedence.
func (p *parser) parsePower() expr.Term {
	base := p.parseAtom()
	if p.cur.kind == tokenKindCaret {
		p.advance()
		exponent := p.parseUnary()
		return &expr.Power{Base: base, Exponent: exponent}
	}
	return base
}

func (p *parser) parseAtom() expr.Term {
	switch p.cur.kind {
	case tokenKindNumber:
		v := p.cur.num
		p.advance()
		return &expr.Constant{Value: v}
	case tokenKindLParen:
		p.advance()
		inner := p.parseExpr()
		p.expect(tokenKindRParen)
		return inner
	case tokenKindParamIdent:
		name := p.cur.text
		p.advance()
		p.params[name] = struct{}{}
		return &expr.Parameter{Index: 0, Name: name}
	case tokenKindIdent:
		name := p.cur.text
		p.advance()
		if p.cur.kind == tokenKindLParen {
			return p.parseCall(name)
		}
		return p.resolveIdent(name)
	default:
		fail("unexpected token %s", p.cur.kind)
		return nil
	}
}

func (p *parser) resolveIdent(name string) expr.Term {
	switch {
	case name == keywordVolume:
		return &expr.Volume{}
	case name == keywordTime:
		return &expr.Time{}
	case strings.HasPrefix(name, paramPrefix) && len(name) > len(paramPrefix):
		paramName := strings.TrimPrefix(name, paramPrefix)
		p.params[paramName] = struct{}{}
		return &expr.Parameter{Index: 0, Name: paramName}
	default:
		p.species[name] = struct{}{}
		return &expr.Species{Index: 0, Name: name}
	}
}

func (p *parser) parseCall(name string) expr.Term {
	p.expect(tokenKindLParen)
	args := []expr.Term{p.parseExpr()}
	for p.cur.kind == tokenKindComma {
		p.advance()
		args = append(args, p.parseExpr())
	}
	p.expect(tokenKindRParen)

	switch name {
	case "exp":
		requireArity(name, args, 1)
		return &expr.Exp{X: args[0]}
	case "log":
		requireArity(name, args, 1)
		return &expr.Log{X: args[0]}
	case "heaviside":
		requireArity(name, args, 1)
		return &expr.Step{X: args[0]}
	case "abs":
		requireArity(name, args, 1)
		return &expr.Abs{X: args[0]}
	case "Max":
		return &expr.Max{Terms: args}
	case "Min":
		return &expr.Min{Terms: args}
	default:
		fail("unknown function %q", name)
		return nil
	}
}

func requireArity(name string, args []expr.Term, n int) {
	if len(args) != n {
		fail("%s takes %d argument(s), got %d", name, n, len(args))
	}
}
