// Package parser turns a `.swen` token stream into a validated scene tree
// (§4.2). It is a recursive-descent parser over a peek/advance cursor that
// constructs nodes directly into a caller-sized, bounded arena.
package parser

import (
	"strconv"

	"github.com/mirror-shades/swen/lexer"
	"github.com/mirror-shades/swen/swenlog"
	swen "github.com/mirror-shades/swen"
)

// Config bounds the arenas the parser allocates into (§3 bounded arenas).
type Config struct {
	TokenArenaCapacity int
	NodeArenaCapacity  int
	BitsetCapacity     int // RootFilter presence-bitset capacity (§4.3)
}

// DefaultConfig matches the defaults named in the spec (§4.1, §4.3).
func DefaultConfig() Config {
	return Config{
		TokenArenaCapacity: lexer.DefaultTokenArenaCapacity,
		NodeArenaCapacity:  swen.DefaultNodeArenaCapacity,
		BitsetCapacity:     swen.DefaultNodeArenaCapacity,
	}
}

// Parser holds the token cursor and the arenas a single parse allocates
// into. A Parser is single-use: construct one per Parse call.
type Parser struct {
	tokens []lexer.Token
	pos    int
	cfg    Config
	nodes  *swen.NodeArena
	ids    *swen.NodeIdAllocator
	seen   map[string]bool // declared ids seen so far in this parse (invariant 5)
}

// Parse lexes and parses src into a validated Root (§4.2).
func Parse(src []byte, cfg Config) (*swen.Root, error) {
	toks, err := lexer.New(src, cfg.TokenArenaCapacity).Lex()
	if err != nil {
		return nil, err
	}
	p := &Parser{
		tokens: toks,
		cfg:    cfg,
		nodes:  swen.NewNodeArena(cfg.NodeArenaCapacity),
		ids:    swen.NewNodeIdAllocator(),
		seen:   make(map[string]bool),
	}
	return p.parseRoot()
}

// --- cursor ---

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	t := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) expect(tag lexer.TokenTag) (lexer.Token, error) {
	t := p.peek()
	if t.Tag != tag {
		return t, newParseError(ErrExpectedToken, t.Span, "expected %s, got %s", tag, t.Tag)
	}
	return p.advance(), nil
}

// skipUnknown consumes and logs one token during body-parsing recovery
// (§4.2 Error model: "Unknown tokens inside a body are logged and skipped").
func (p *Parser) skipUnknown() {
	t := p.advance()
	swenlog.Warnf("swen/parser: skipping unrecognized token %s at %s", t.Tag, t.Span)
}

// --- numeric / tuple helpers ---

func (p *Parser) parseNumberToken() (float64, error) {
	t := p.peek()
	if t.Tag != lexer.TagInt && t.Tag != lexer.TagFloat {
		return 0, newParseError(ErrExpectedToken, t.Span, "expected a number, got %s", t.Tag)
	}
	p.advance()
	v, err := strconv.ParseFloat(string(t.Literal), 64)
	if err != nil {
		return 0, newParseError(ErrExpectedToken, t.Span, "malformed number literal %q", t.Literal)
	}
	return v, nil
}

// parseNumberTuple parses "(" n1, n2, ..., nCount ")" with an optional
// trailing comma before the closing paren (§4.2: "Matrix requires exactly
// six numbers separated by commas; trailing comma permitted before )" —
// applied uniformly to every parenthesized tuple for consistency).
func (p *Parser) parseNumberTuple(count int) ([]float64, error) {
	if _, err := p.expect(lexer.TagLParen); err != nil {
		return nil, err
	}
	vals := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		v, err := p.parseNumberToken()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		if i < count-1 {
			if _, err := p.expect(lexer.TagComma); err != nil {
				return nil, err
			}
		} else if p.peek().Tag == lexer.TagComma {
			p.advance()
		}
	}
	if _, err := p.expect(lexer.TagRParen); err != nil {
		return nil, err
	}
	return vals, nil
}

func (p *Parser) parseVectorValue() (swen.Vector, error) {
	vals, err := p.parseNumberTuple(2)
	if err != nil {
		return swen.Vector{}, err
	}
	return swen.Vector{X: int32(vals[0]), Y: int32(vals[1])}, nil
}

func (p *Parser) parseColorValue() (swen.Color, error) {
	vals, err := p.parseNumberTuple(4)
	if err != nil {
		return swen.Color{}, err
	}
	return swen.Color{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: uint8(vals[3])}, nil
}

// parseColorOrNothing parses either a 4-tuple Color or the "nothing"
// literal, used for optional Background properties (Matrix has its own
// parseMatrixOrNothing).
func (p *Parser) parseColorOrNothing() (*swen.Color, error) {
	if p.peek().Tag == lexer.TagNothing {
		p.advance()
		return nil, nil
	}
	t := p.peek()
	c, err := p.parseColorValue()
	if err != nil {
		return nil, &ParseError{Kind: ErrExpectedColor, Span: t.Span, Msg: err.Error()}
	}
	return &c, nil
}

func (p *Parser) parseMatrixOrNothing() (*swen.Matrix, error) {
	if p.peek().Tag == lexer.TagNothing {
		p.advance()
		return nil, nil
	}
	t := p.peek()
	vals, err := p.parseNumberTuple(6)
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidMatrix, Span: t.Span, Msg: err.Error()}
	}
	m := swen.Matrix{A: float32(vals[0]), B: float32(vals[1]), C: float32(vals[2]), D: float32(vals[3]), E: float32(vals[4]), F: float32(vals[5])}
	return &m, nil
}

func (p *Parser) parseStringValue() (string, error) {
	t, err := p.expect(lexer.TagString)
	if err != nil {
		return "", err
	}
	return string(t.Literal), nil
}

// checkDeclaredID enforces invariant 5 (no duplicate declared ids within
// one parse), returning a DuplicateDeclaredID error on a repeat. It does
// not compute a NodeId: every node's NodeID is assigned from the monotonic
// cursor, per §4.2 NodeId assignment.
func (p *Parser) checkDeclaredID(declaredID string, span lexer.Span) error {
	if declaredID == "" {
		return nil
	}
	if p.seen[declaredID] {
		return newParseError(ErrDuplicateDeclaredID, span, "duplicate declared id %q", declaredID)
	}
	p.seen[declaredID] = true
	return nil
}

func (p *Parser) allocNode(n swen.Node) error {
	if err := p.nodes.Alloc(n); err != nil {
		return newParseError(ErrOutOfMemory, p.peek().Span, "%v", err)
	}
	return nil
}

// --- grammar ---

func (p *Parser) parseRoot() (*swen.Root, error) {
	if _, err := p.expect(lexer.TagRoot); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var desktop *swen.Desktop
	var system *swen.System
	for p.peek().Tag != lexer.TagRBrace && p.peek().Tag != lexer.TagEOF {
		switch p.peek().Tag {
		case lexer.TagDesktop:
			if desktop != nil {
				return nil, newParseError(ErrDuplicateNode, p.peek().Span, "duplicate desktop")
			}
			d, err := p.parseDesktop()
			if err != nil {
				return nil, err
			}
			desktop = d
		case lexer.TagSystem:
			if system != nil {
				return nil, newParseError(ErrDuplicateNode, p.peek().Span, "duplicate system")
			}
			s, err := p.parseSystem()
			if err != nil {
				return nil, err
			}
			system = s
		default:
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBrace); err != nil {
		return nil, err
	}
	if desktop == nil {
		return nil, newParseError(ErrMissingRequiredNode, p.peek().Span, "root requires exactly one desktop")
	}
	if system == nil {
		return nil, newParseError(ErrMissingRequiredNode, p.peek().Span, "root requires exactly one system")
	}
	return &swen.Root{Desktop: desktop, System: system}, nil
}

func (p *Parser) parseDesktop() (*swen.Desktop, error) {
	if _, err := p.expect(lexer.TagDesktop); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var size swen.Vector
	var background *swen.Color
	var nodes []swen.Node
	var workspace *swen.Workspace
	var sizeSet, bgSet, nodesSet, wsSet bool

	for p.peek().Tag != lexer.TagRBrace && p.peek().Tag != lexer.TagEOF {
		switch p.peek().Tag {
		case lexer.TagSize:
			if sizeSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate size")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			size, sizeSet = v, true
		case lexer.TagBackground:
			if bgSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate background")
			}
			p.advance()
			c, err := p.parseColorOrNothing()
			if err != nil {
				return nil, err
			}
			background, bgSet = c, true
		case lexer.TagNodes:
			if nodesSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate nodes")
			}
			p.advance()
			list, err := p.parseNodesListBody(swen.Vector{})
			if err != nil {
				return nil, err
			}
			nodes, nodesSet = list, true
		case lexer.TagWorkspaces:
			if wsSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate workspaces")
			}
			p.advance()
			ws, err := p.parseWorkspacesProp()
			if err != nil {
				return nil, err
			}
			workspace, wsSet = ws, true
		default:
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBrace); err != nil {
		return nil, err
	}
	if !sizeSet {
		return nil, newParseError(ErrMissingProperty, p.peek().Span, "desktop requires size")
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, newParseError(ErrInvalidSize, p.peek().Span, "desktop size must be strictly positive, got %v", size)
	}
	d := &swen.Desktop{Size: size, Background: background, Nodes: nodes}
	if wsSet {
		d.Workspaces = []*swen.Workspace{workspace}
		d.ActiveWorkspace = workspace
	}
	return d, nil
}

// parseSystem skips the system body structurally: the grammar treats its
// contents as ignored by the core (§4.2 grammar comment).
func (p *Parser) parseSystem() (*swen.System, error) {
	if _, err := p.expect(lexer.TagSystem); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	depth := 1
	for depth > 0 {
		switch p.peek().Tag {
		case lexer.TagEOF:
			return nil, newParseError(ErrExpectedToken, p.peek().Span, "unterminated system body")
		case lexer.TagLBrace:
			depth++
			p.advance()
		case lexer.TagRBrace:
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
	return &swen.System{}, nil
}

// parseWorkspacesProp parses "workspaces" "[" app* "]". The grammar defines
// no distinct "workspace" token, so the bracketed app list is collected
// into a single synthesized Workspace (see DESIGN.md Open Question
// resolution).
func (p *Parser) parseWorkspacesProp() (*swen.Workspace, error) {
	if _, err := p.expect(lexer.TagLBracket); err != nil {
		return nil, err
	}
	var apps []*swen.App
	for p.peek().Tag != lexer.TagRBracket && p.peek().Tag != lexer.TagEOF {
		if p.peek().Tag == lexer.TagApp {
			a, err := p.parseApp()
			if err != nil {
				return nil, err
			}
			apps = append(apps, a)
		} else {
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBracket); err != nil {
		return nil, err
	}
	return &swen.Workspace{Apps: apps}, nil
}

func (p *Parser) parseApp() (*swen.App, error) {
	if _, err := p.expect(lexer.TagApp); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var declaredID string
	var size, position swen.Vector
	var background swen.Color
	var children []swen.Node
	var idSet, sizeSet, posSet, bgSet bool

	for p.peek().Tag != lexer.TagRBrace && p.peek().Tag != lexer.TagEOF {
		switch p.peek().Tag {
		case lexer.TagID:
			if idSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate id")
			}
			p.advance()
			s, err := p.parseStringValue()
			if err != nil {
				return nil, err
			}
			declaredID, idSet = s, true
		case lexer.TagSize:
			if sizeSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate size")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			if v.X <= 0 || v.Y <= 0 {
				return nil, newParseError(ErrInvalidSize, p.peek().Span, "app size must be strictly positive, got %v", v)
			}
			size, sizeSet = v, true
		case lexer.TagPosition:
			if posSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate position")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			position, posSet = v, true
		case lexer.TagBackground:
			if bgSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate background")
			}
			p.advance()
			c, err := p.parseColorOrNothing()
			if err != nil {
				return nil, err
			}
			if c != nil {
				background = *c
			}
			bgSet = true
		case lexer.TagNodes:
			if !posSet {
				return nil, newParseError(ErrPositionBeforeNodes, p.peek().Span, "app position must be declared before nodes")
			}
			p.advance()
			enclosing := swen.AccumulateLocalPosition(swen.Vector{}, position)
			list, err := p.parseNodesListBody(enclosing)
			if err != nil {
				return nil, err
			}
			children = list
		default:
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBrace); err != nil {
		return nil, err
	}
	if !idSet {
		return nil, newParseError(ErrMissingProperty, p.peek().Span, "app requires id")
	}
	if !sizeSet {
		return nil, newParseError(ErrMissingProperty, p.peek().Span, "app requires size")
	}
	if !posSet {
		return nil, newParseError(ErrMissingProperty, p.peek().Span, "app requires position")
	}
	return swen.NewApp(declaredID, size, position, background, children), nil
}

// parseNodesListBody parses "[" node* "]" and root-filters the result
// (§3 invariant 1, §4.3). enclosingLocal is the local_position every direct
// child in this list should receive (§4.2 Coordinate accumulation).
func (p *Parser) parseNodesListBody(enclosingLocal swen.Vector) ([]swen.Node, error) {
	if _, err := p.expect(lexer.TagLBracket); err != nil {
		return nil, err
	}
	start := p.nodes.Len()
	for p.peek().Tag != lexer.TagRBracket && p.peek().Tag != lexer.TagEOF {
		n, err := p.parseNode(enclosingLocal)
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue // recovered from an unrecognized token
		}
	}
	if _, err := p.expect(lexer.TagRBracket); err != nil {
		return nil, err
	}
	end := p.nodes.Len()
	candidates := p.nodes.Range(start, end)
	return swen.RootFilter(candidates, p.cfg.BitsetCapacity), nil
}

func (p *Parser) parseNode(enclosingLocal swen.Vector) (swen.Node, error) {
	switch p.peek().Tag {
	case lexer.TagRect:
		return p.parseRect(enclosingLocal)
	case lexer.TagText:
		return p.parseText(enclosingLocal)
	case lexer.TagTransform:
		return p.parseTransform(enclosingLocal)
	default:
		p.skipUnknown()
		return nil, nil
	}
}

func (p *Parser) parseRect(enclosingLocal swen.Vector) (swen.Node, error) {
	start := p.peek().Span
	if _, err := p.expect(lexer.TagRect); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var declaredID string
	var size, position swen.Vector
	var background *swen.Color
	var children []swen.Node
	var idSet, sizeSet, posSet, bgSet, nodesSet bool

	for p.peek().Tag != lexer.TagRBrace && p.peek().Tag != lexer.TagEOF {
		switch p.peek().Tag {
		case lexer.TagID:
			if idSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate id")
			}
			p.advance()
			s, err := p.parseStringValue()
			if err != nil {
				return nil, err
			}
			declaredID, idSet = s, true
		case lexer.TagSize:
			if sizeSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate size")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			if v.X <= 0 || v.Y <= 0 {
				return nil, newParseError(ErrInvalidSize, p.peek().Span, "rect size must be strictly positive, got %v", v)
			}
			size, sizeSet = v, true
		case lexer.TagPosition:
			if posSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate position")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			position, posSet = v, true
		case lexer.TagBackground:
			if bgSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate background")
			}
			p.advance()
			c, err := p.parseColorOrNothing()
			if err != nil {
				return nil, err
			}
			background, bgSet = c, true
		case lexer.TagNodes:
			if nodesSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate nodes")
			}
			if !posSet {
				return nil, newParseError(ErrPositionBeforeNodes, p.peek().Span, "rect position must be declared before nodes")
			}
			p.advance()
			childEnclosing := swen.AccumulateLocalPosition(enclosingLocal, position)
			list, err := p.parseNodesListBody(childEnclosing)
			if err != nil {
				return nil, err
			}
			children, nodesSet = list, true
		default:
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBrace); err != nil {
		return nil, err
	}
	if !sizeSet {
		return nil, newParseError(ErrMissingProperty, start, "rect requires size")
	}
	if !posSet {
		return nil, newParseError(ErrMissingProperty, start, "rect requires position")
	}
	if err := p.checkDeclaredID(declaredID, start); err != nil {
		return nil, err
	}
	n := swen.NewRectNode(p.ids.Next(), declaredID, position, enclosingLocal, size, background, 0)
	if nodesSet {
		n.SetChildren(children)
	}
	if err := p.allocNode(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseText(enclosingLocal swen.Vector) (swen.Node, error) {
	start := p.peek().Span
	if _, err := p.expect(lexer.TagText); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var declaredID, body string
	var color swen.Color
	var position swen.Vector
	var textSize uint16
	var idSet, bodySet, colorSet, posSet, sizeSet bool

	for p.peek().Tag != lexer.TagRBrace && p.peek().Tag != lexer.TagEOF {
		switch p.peek().Tag {
		case lexer.TagID:
			if idSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate id")
			}
			p.advance()
			s, err := p.parseStringValue()
			if err != nil {
				return nil, err
			}
			declaredID, idSet = s, true
		case lexer.TagBody:
			if bodySet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate body")
			}
			p.advance()
			s, err := p.parseStringValue()
			if err != nil {
				return nil, err
			}
			body, bodySet = s, true
		case lexer.TagColor:
			if colorSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate color")
			}
			p.advance()
			c, err := p.parseColorValue()
			if err != nil {
				return nil, err
			}
			color, colorSet = c, true
		case lexer.TagPosition:
			if posSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate position")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			position, posSet = v, true
		case lexer.TagTextSize:
			if sizeSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate text_size")
			}
			p.advance()
			v, err := p.parseNumberToken()
			if err != nil {
				return nil, err
			}
			if v <= 0 {
				return nil, newParseError(ErrInvalidTextSize, p.peek().Span, "text_size must be > 0, got %v", v)
			}
			textSize, sizeSet = uint16(v), true
		default:
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBrace); err != nil {
		return nil, err
	}
	if !bodySet {
		return nil, newParseError(ErrMissingProperty, start, "text requires body")
	}
	if !colorSet {
		return nil, newParseError(ErrMissingProperty, start, "text requires color")
	}
	if !posSet {
		return nil, newParseError(ErrMissingProperty, start, "text requires position")
	}
	if !sizeSet {
		return nil, newParseError(ErrMissingProperty, start, "text requires text_size")
	}
	if err := p.checkDeclaredID(declaredID, start); err != nil {
		return nil, err
	}
	n := swen.NewTextNode(p.ids.Next(), declaredID, body, color, position, enclosingLocal, textSize)
	if err := p.allocNode(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseTransform(enclosingLocal swen.Vector) (swen.Node, error) {
	start := p.peek().Span
	if _, err := p.expect(lexer.TagTransform); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var declaredID string
	var position swen.Vector
	var matrix *swen.Matrix
	var children []swen.Node
	var idSet, posSet, nodesSet bool

	for p.peek().Tag != lexer.TagRBrace && p.peek().Tag != lexer.TagEOF {
		switch p.peek().Tag {
		case lexer.TagID:
			if idSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate id")
			}
			p.advance()
			s, err := p.parseStringValue()
			if err != nil {
				return nil, err
			}
			declaredID, idSet = s, true
		case lexer.TagPosition:
			if posSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate position")
			}
			p.advance()
			v, err := p.parseVectorValue()
			if err != nil {
				return nil, err
			}
			position, posSet = v, true
		case lexer.TagMatrix:
			if matrix != nil {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate matrix")
			}
			p.advance()
			m, err := p.parseMatrixOrNothing()
			if err != nil {
				return nil, err
			}
			matrix = m
		case lexer.TagNodes:
			if nodesSet {
				return nil, newParseError(ErrDuplicateProperty, p.peek().Span, "duplicate nodes")
			}
			if !posSet {
				return nil, newParseError(ErrPositionBeforeNodes, p.peek().Span, "transform position must be declared before nodes")
			}
			p.advance()
			childEnclosing := swen.AccumulateLocalPosition(enclosingLocal, position)
			list, err := p.parseNodesListBody(childEnclosing)
			if err != nil {
				return nil, err
			}
			children, nodesSet = list, true
		default:
			p.skipUnknown()
		}
	}
	if _, err := p.expect(lexer.TagRBrace); err != nil {
		return nil, err
	}
	if !posSet {
		return nil, newParseError(ErrMissingProperty, start, "transform requires position")
	}
	if err := p.checkDeclaredID(declaredID, start); err != nil {
		return nil, err
	}
	n := swen.NewTransformNode(p.ids.Next(), declaredID, position, enclosingLocal, matrix)
	if nodesSet {
		n.SetChildren(children)
	}
	if err := p.allocNode(n); err != nil {
		return nil, err
	}
	return n, nil
}
