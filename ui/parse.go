package ui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseReader parses a layout document from an io.Reader.
func ParseReader(ctx context.Context, r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err)
	}

	return ParseString(ctx, string(data))
}

// ParseString parses a layout document from a string.
//
// The document must contain exactly one top-level node. Comment lines are
// attached to the node that follows them; a label whose braces open and
// close on the same line is marked Inline.
func ParseString(_ context.Context, s string) (*Node, error) {
	p := &parser{
		input: []byte(s),
		pos:   0,
		line:  1,
		col:   1,
	}

	return p.parseDocument()
}

// Parse is shorthand for ParseString with a background context.
func Parse(s string) (*Node, error) {
	return ParseString(context.Background(), s)
}

// parser holds the parser state.
type parser struct {
	input []byte
	pos   int
	line  int
	col   int
}

// parseDocument parses: Comment* Node Comment* EOF.
func (p *parser) parseDocument() (*Node, error) {
	comment := p.skipWhitespaceAndComments()

	if p.eof() {
		return nil, p.errorf("expected node, found end of input")
	}

	root, err := p.parseNode(comment)
	if err != nil {
		return nil, err
	}

	p.skipWhitespaceAndComments()

	if !p.eof() {
		return nil, p.errorf("unexpected %q after root node", p.peek())
	}

	return root, nil
}

// parseNode parses: Kind '#' Identifier '{' Body '}'.
func (p *parser) parseNode(comment string) (*Node, error) {
	pos := p.position()

	keyword, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	kind, ok := parseKind(keyword)
	if !ok {
		return nil, ErrParse.WithPosition(pos).
			Wrap(fmt.Errorf("line %d, column %d: unknown node kind %q",
				pos.Line, pos.Column, keyword))
	}

	p.skipWhitespace()

	if !p.expect('#') {
		return nil, p.errorf("expected '#' after %s", keyword)
	}

	id, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	open := p.position()

	if !p.expect('{') {
		return nil, p.errorf("expected '{' after #%s", id)
	}

	node := &Node{Kind: kind, ID: id, Comment: comment}

	err = p.parseBody(node)
	if err != nil {
		return nil, err
	}

	node.Inline = kind == KindLabel && p.line == open.Line

	return node, nil
}

// parseBody parses attributes and child nodes up to and including '}'.
func (p *parser) parseBody(node *Node) error {
	for {
		comment := p.skipWhitespaceAndComments()

		if p.eof() {
			return p.errorf("expected '}' to close #%s", node.ID)
		}

		switch ch := p.peek(); {
		case ch == '}':
			p.advance()

			return nil

		case ch == '@':
			p.advance()

			attr, err := p.parseAttr(true)
			if err != nil {
				return err
			}

			node.Attrs = append(node.Attrs, attr)

		case isIdentifierStart(ch):
			if p.startsNode() {
				if node.Kind == KindLabel {
					return p.errorf("label #%s cannot have children", node.ID)
				}

				child, err := p.parseNode(comment)
				if err != nil {
					return err
				}

				node.Children = append(node.Children, child)

				continue
			}

			attr, err := p.parseAttr(false)
			if err != nil {
				return err
			}

			node.Attrs = append(node.Attrs, attr)

		default:
			return p.errorf("unexpected %q in #%s", ch, node.ID)
		}
	}
}

// startsNode reports whether the input at the current position is
// "Identifier '#'", the start of a child node.
func (p *parser) startsNode() bool {
	saved, line, col := p.pos, p.line, p.col
	defer func() { p.pos, p.line, p.col = saved, line, col }()

	_, err := p.parseIdentifier()
	if err != nil {
		return false
	}

	p.skipWhitespace()

	return p.peek() == '#'
}

// parseAttr parses "Key: Value;" or, for literals, "Key = Value;".
// The leading '@' of a literal has already been consumed.
func (p *parser) parseAttr(literal bool) (Attr, error) {
	key, err := p.parseIdentifier()
	if err != nil {
		return Attr{}, err
	}

	p.skipWhitespace()

	sep := ':'
	if literal {
		sep = '='
	}

	if !p.expect(sep) {
		return Attr{}, p.errorf("expected %q after %s", sep, key)
	}

	p.skipWhitespace()

	value, err := p.parseValue()
	if err != nil {
		return Attr{}, err
	}

	p.skipWhitespace()

	if !p.expect(';') {
		return Attr{}, p.errorf("expected ';' after %s", key)
	}

	return Attr{Key: key, Value: value, Literal: literal}, nil
}

// parseValue parses: String | Number | Bool | Color | Record | Ident.
func (p *parser) parseValue() (Value, error) {
	switch ch := p.peek(); {
	case ch == '"':
		return p.parseString()

	case ch == '#':
		p.advance()

		start := p.pos
		for !p.eof() && isHexDigit(p.peek()) {
			p.advance()
		}

		hex := string(p.input[start:p.pos])
		if !isHexColor(hex) {
			return Value{}, p.errorf("invalid color #%s", hex)
		}

		return Color(hex), nil

	case ch == '(':
		return p.parseRecord()

	case ch == '-' || ch == '+' || ch == '.' || unicode.IsDigit(ch):
		return p.parseNumber()

	case isIdentifierStart(ch):
		name, err := p.parseIdentifier()
		if err != nil {
			return Value{}, err
		}

		switch name {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}

		return Ident(name), nil

	case ch == 0 && p.eof():
		return Value{}, p.errorf("expected value, found end of input")

	default:
		return Value{}, p.errorf("unexpected %q, expected value", ch)
	}
}

// parseRecord parses: '(' (Key ':' Value (',' Key ':' Value)*)? ')'.
func (p *parser) parseRecord() (Value, error) {
	p.advance() // skip '('

	fields := make([]Attr, 0)

	for {
		p.skipWhitespace()

		if p.expect(')') {
			return Record(fields...), nil
		}

		if len(fields) > 0 {
			if !p.expect(',') {
				return Value{}, p.errorf("expected ',' or ')' in record")
			}

			p.skipWhitespace()
		}

		key, err := p.parseIdentifier()
		if err != nil {
			return Value{}, err
		}

		p.skipWhitespace()

		if !p.expect(':') {
			return Value{}, p.errorf("expected ':' after %s", key)
		}

		p.skipWhitespace()

		value, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}

		fields = append(fields, Field(key, value))
	}
}

func (p *parser) parseString() (Value, error) {
	start := p.pos

	err := p.skipString('"')
	if err != nil {
		return Value{}, err
	}

	s, err := strconv.Unquote(string(p.input[start:p.pos]))
	if err != nil {
		return Value{}, p.errorf("invalid string literal: %v", err)
	}

	return String(s), nil
}

func (p *parser) parseNumber() (Value, error) {
	start := p.pos

	if ch := p.peek(); ch == '-' || ch == '+' {
		p.advance()
	}

	for !p.eof() && (unicode.IsDigit(p.peek()) || p.peek() == '.') {
		p.advance()
	}

	lit := string(p.input[start:p.pos])

	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, p.errorf("invalid number %q", lit)
	}

	return Number(n), nil
}

// parseIdentifier parses an identifier token.
func (p *parser) parseIdentifier() (string, error) {
	start := p.pos

	if !isIdentifierStart(p.peek()) {
		return "", p.errorf("expected identifier")
	}

	p.advance()

	for !p.eof() && isIdentifierContinue(p.peek()) {
		p.advance()
	}

	return string(p.input[start:p.pos]), nil
}

// errorf returns an ErrParse positioned at the current location.
func (p *parser) errorf(format string, args ...any) error {
	pos := p.position()

	return ErrParse.WithPosition(pos).
		With(slog.Int("offset", pos.Offset)).
		Wrap(fmt.Errorf("line %d, column %d: %s",
			pos.Line, pos.Column, fmt.Sprintf(format, args...)))
}

// Helper methods

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(p.input[p.pos:])

	return r
}

func (p *parser) peekN(n int) string {
	if p.pos+n > len(p.input) {
		return string(p.input[p.pos:])
	}

	return string(p.input[p.pos : p.pos+n])
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRune(p.input[p.pos:])

	p.pos += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

func (p *parser) expect(ch rune) bool {
	if p.peek() == ch {
		p.advance()

		return true
	}

	return false
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) position() Position {
	return Position{
		Offset: p.pos,
		Line:   p.line,
		Column: p.col,
	}
}

func (p *parser) skipWhitespace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// skipWhitespaceAndComments skips blank space and "//" comment lines,
// returning the text of the comment lines seen, joined by newlines.
func (p *parser) skipWhitespaceAndComments() string {
	var lines []string

	for {
		p.skipWhitespace()

		if p.eof() || p.peekN(2) != "//" {
			break
		}

		lines = append(lines, p.lineComment())
	}

	return strings.Join(lines, "\n")
}

// lineComment consumes a "//" comment through the end of the line and
// returns its text.
func (p *parser) lineComment() string {
	p.advance() // skip '/'
	p.advance() // skip '/'

	start := p.pos
	for !p.eof() && p.peek() != '\n' {
		p.advance()
	}

	text := strings.TrimRight(string(p.input[start:p.pos]), " \t\r")
	text = strings.TrimPrefix(text, " ")

	if !p.eof() {
		p.advance() // skip '\n'
	}

	return text
}

func (p *parser) skipString(quote rune) error {
	p.advance() // skip opening quote

	for !p.eof() {
		ch := p.peek()
		if ch == '\\' {
			p.advance() // skip backslash

			if !p.eof() {
				p.advance() // skip escaped char
			}

			continue
		}

		if ch == '\n' {
			break
		}

		if ch == quote {
			p.advance() // skip closing quote

			return nil
		}

		p.advance()
	}

	return p.errorf("unterminated string")
}

// Character classification

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentifierContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
