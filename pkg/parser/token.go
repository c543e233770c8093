package parser

import (
	"strings"
)

// TokenType classifies a lexed token.
type TokenType int

const (
	Whitespace TokenType = iota
	Comment
	MultilineComment
	Keyword
	DML
	DDL
	CTE
	Name
	Builtin
	String
	Number
	Placeholder
	Operator
	Comparison
	Wildcard
	Punctuation
	// Unrecognized holds a character no lexer rule accepts. It is passed
	// through unchanged.
	Unrecognized
)

var tokenTypeNames = map[TokenType]string{
	Whitespace:       "Whitespace",
	Comment:          "Comment",
	MultilineComment: "MultilineComment",
	Keyword:          "Keyword",
	DML:              "DML",
	DDL:              "DDL",
	CTE:              "CTE",
	Name:             "Name",
	Builtin:          "Builtin",
	String:           "String",
	Number:           "Number",
	Placeholder:      "Placeholder",
	Operator:         "Operator",
	Comparison:       "Comparison",
	Wildcard:         "Wildcard",
	Punctuation:      "Punctuation",
	Unrecognized:     "Unrecognized",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

type (
	// Node is either a *Token or a *Group.
	Node interface {
		String() string
		// Leaves appends every token under the node, in order, to dst.
		Leaves(dst []*Token) []*Token
	}

	// Token is a single lexed token. Tokens are shared by pointer so filters can
	// rewrite values in place and locate a token inside a statement by identity.
	Token struct {
		Type  TokenType
		Value string
	}
)

// NewWhitespace returns a whitespace token holding value.
func NewWhitespace(value string) *Token {
	return &Token{Type: Whitespace, Value: value}
}

func (t *Token) String() string { return t.Value }

func (t *Token) Leaves(dst []*Token) []*Token { return append(dst, t) }

// IsWhitespace reports whether the token is whitespace (including newlines).
func (t *Token) IsWhitespace() bool { return t.Type == Whitespace }

// IsComment reports whether the token is a single or multi line comment.
func (t *Token) IsComment() bool { return t.Type == Comment || t.Type == MultilineComment }

// IsKeyword reports whether the token is any flavour of keyword.
func (t *Token) IsKeyword() bool {
	switch t.Type {
	case Keyword, DML, DDL, CTE:
		return true
	}
	return false
}

// Normalized returns the comparison form of the token. Keywords are upper
// cased with inner whitespace collapsed, so "group\n  by" becomes "GROUP BY".
func (t *Token) Normalized() string {
	if t.IsKeyword() {
		return strings.Join(strings.Fields(strings.ToUpper(t.Value)), " ")
	}
	return t.Value
}

// Is reports whether the token has type typ and, when values are given,
// whether its normalized value equals one of them.
func (t *Token) Is(typ TokenType, values ...string) bool {
	if t.Type != typ {
		return false
	}
	if len(values) == 0 {
		return true
	}

	norm := t.Normalized()
	for _, v := range values {
		if norm == v {
			return true
		}
	}
	return false
}

// IsPunct reports whether the token is the punctuation character p.
func (t *Token) IsPunct(p string) bool {
	return t.Type == Punctuation && t.Value == p
}

// AsToken returns n as a token, or nil when n is a group.
func AsToken(n Node) *Token {
	if t, ok := n.(*Token); ok {
		return t
	}
	return nil
}

// AsGroup returns n as a group, or nil when n is a token.
func AsGroup(n Node) *Group {
	if g, ok := n.(*Group); ok {
		return g
	}
	return nil
}

// IsWhitespace reports whether n is a whitespace token.
func IsWhitespace(n Node) bool {
	t := AsToken(n)
	return t != nil && t.IsWhitespace()
}

// LastLeaf returns the last token under n.
func LastLeaf(n Node) *Token {
	switch v := n.(type) {
	case *Token:
		return v
	case *Group:
		for i := len(v.Nodes) - 1; i >= 0; i-- {
			if leaf := LastLeaf(v.Nodes[i]); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}

// FirstLeaf returns the first token under n.
func FirstLeaf(n Node) *Token {
	switch v := n.(type) {
	case *Token:
		return v
	case *Group:
		for _, c := range v.Nodes {
			if leaf := FirstLeaf(c); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}
