// Package lexer turns `.swen` source bytes into a bounded stream of tagged
// tokens with source spans (§4.1).
package lexer

import "fmt"

// TokenTag classifies a Token.
type TokenTag int

const (
	// Keywords
	TagRoot TokenTag = iota
	TagDesktop
	TagSystem
	TagRect
	TagText
	TagTransform
	TagClip
	TagWaylandSurface

	// Property names
	TagWorkspaces
	TagApp
	TagNodes
	TagID
	TagSize
	TagTextSize
	TagPosition
	TagBackground
	TagBody
	TagColor
	TagMatrix
	TagSurfaceRect

	// Literal kinds
	TagIdentifier
	TagString
	TagInt
	TagFloat
	TagBoolean
	TagNothing

	// Punctuation
	TagLBrace
	TagRBrace
	TagLBracket
	TagRBracket
	TagLParen
	TagRParen
	TagComma
	TagColonPunct
	TagSemicolon
	TagDot

	TagEOF
)

var tagNames = map[TokenTag]string{
	TagRoot: "root", TagDesktop: "desktop", TagSystem: "system", TagRect: "rect",
	TagText: "text", TagTransform: "transform", TagClip: "clip",
	TagWaylandSurface: "wayland_surface", TagWorkspaces: "workspaces", TagApp: "app",
	TagNodes: "nodes", TagID: "id", TagSize: "size", TagTextSize: "text_size",
	TagPosition: "position", TagBackground: "background", TagBody: "body",
	TagColor: "color", TagMatrix: "matrix", TagSurfaceRect: "surface_rect",
	TagIdentifier: "identifier", TagString: "string", TagInt: "int", TagFloat: "float",
	TagBoolean: "boolean", TagNothing: "nothing",
	TagLBrace: "{", TagRBrace: "}", TagLBracket: "[", TagRBracket: "]",
	TagLParen: "(", TagRParen: ")", TagComma: ",", TagColonPunct: ":",
	TagSemicolon: ";", TagDot: ".", TagEOF: "eof",
}

// String renders the tag name for diagnostics.
func (t TokenTag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenTag(%d)", int(t))
}

// keywords maps identifier text to its keyword tag, dispatched by first
// character to keep the lookup a small table per §4.1 ("resolved by a
// first-character-dispatched table").
var keywords = map[byte]map[string]TokenTag{
	'r': {"root": TagRoot, "rect": TagRect},
	'd': {"desktop": TagDesktop},
	's': {"system": TagSystem, "size": TagSize, "surface_rect": TagSurfaceRect},
	't': {"text": TagText, "transform": TagTransform, "text_size": TagTextSize},
	'c': {"clip": TagClip, "color": TagColor},
	'w': {"wayland_surface": TagWaylandSurface, "workspaces": TagWorkspaces},
	'a': {"app": TagApp},
	'n': {"nodes": TagNodes},
	'i': {"id": TagID},
	'p': {"position": TagPosition},
	'b': {"background": TagBackground, "body": TagBody},
	'm': {"matrix": TagMatrix},
}

// lookupKeyword resolves word to a keyword tag, or (TagIdentifier, false) if
// it isn't one of the reserved words.
func lookupKeyword(word string) (TokenTag, bool) {
	if word == "" {
		return TagIdentifier, false
	}
	if table, ok := keywords[word[0]]; ok {
		if tag, ok := table[word]; ok {
			return tag, true
		}
	}
	return TagIdentifier, false
}

// Span is the source location of a Token: line and column are 1-based,
// offset is a 0-based byte offset into the source.
type Span struct {
	Line, Column, Offset int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token is a single lexical unit with its source span (§4.1).
type Token struct {
	Literal []byte
	Tag     TokenTag
	Span    Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Tag, t.Literal, t.Span)
}
