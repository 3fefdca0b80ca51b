// SPDX-License-Identifier: MIT
// Package: typestate/tyexpr
//
// parse.go — recursive-descent parser for the `Ident<Args,…>` grammar.
//
// Contract:
//   • Parse consumes the ENTIRE input; trailing tokens are ErrSyntax.
//   • Whitespace is tolerated between tokens, never inside idents.
//   • Idents are [A-Za-z_][A-Za-z0-9_]* segments, optionally joined by '.'
//     for qualified names.
//   • Errors wrap ErrSyntax and name the byte offset of the offense.

package tyexpr

import "fmt"

// Parse reads a declared-type expression into a Type tree.
// Complexity: O(len(src)) time, O(depth) stack space.
func Parse(src string) (Type, error) {
	p := &parser{src: src}
	p.skipSpace()

	t, err := p.parseType()
	if err != nil {
		return Type{}, err
	}

	p.skipSpace()
	if p.pos != len(p.src) {
		return Type{}, p.errf("unexpected trailing text %q", p.src[p.pos:])
	}

	return t, nil
}

// MustParse is Parse for fixtures and tables; panics on malformed input.
func MustParse(src string) Type {
	t, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("tyexpr: MustParse(%q): %v", src, err))
	}

	return t
}

// parser carries the cursor over the source text.
type parser struct {
	src string
	pos int
}

// parseType := ident [ '<' type { ',' type } '>' ]
func (p *parser) parseType() (Type, error) {
	name, err := p.parseIdent()
	if err != nil {
		return Type{}, err
	}

	p.skipSpace()
	if !p.eat('<') {
		return Named(name), nil
	}

	var args []Type
	for {
		p.skipSpace()
		arg, err := p.parseType()
		if err != nil {
			return Type{}, err
		}
		args = append(args, arg)

		p.skipSpace()
		if p.eat(',') {
			continue
		}
		if p.eat('>') {
			break
		}

		return Type{}, p.errf("expected ',' or '>' in type argument list")
	}

	return Generic(name, args...), nil
}

// parseIdent := segment { '.' segment }, segment := [A-Za-z_][A-Za-z0-9_]*
func (p *parser) parseIdent() (string, error) {
	start := p.pos
	for {
		if err := p.parseSegment(); err != nil {
			return "", err
		}
		if !p.eat('.') {
			break
		}
	}

	return p.src[start:p.pos], nil
}

func (p *parser) parseSegment() error {
	if p.pos >= len(p.src) || !isIdentStart(p.src[p.pos]) {
		return p.errf("expected identifier")
	}
	p.pos++
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}

	return nil
}

// eat consumes c if it is the next byte.
func (p *parser) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}

	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// errf wraps ErrSyntax with the offense offset for precise reporting.
func (p *parser) errf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s (offset %d)", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
