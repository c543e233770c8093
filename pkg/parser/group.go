package parser

import (
	"strings"
)

// GroupKind identifies what a Group represents.
type GroupKind int

const (
	Statement GroupKind = iota
	Parenthesis
	Case
	Function
	Where
	Values
	Identifier
	IdentifierList
)

var groupKindNames = map[GroupKind]string{
	Statement:      "Statement",
	Parenthesis:    "Parenthesis",
	Case:           "Case",
	Function:       "Function",
	Where:          "Where",
	Values:         "Values",
	Identifier:     "Identifier",
	IdentifierList: "IdentifierList",
}

func (k GroupKind) String() string {
	if name, ok := groupKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Group is an interior node of the token tree.
type Group struct {
	Kind  GroupKind
	Nodes []Node
}

func (g *Group) String() string {
	var sb strings.Builder
	for _, leaf := range g.Leaves(nil) {
		sb.WriteString(leaf.Value)
	}
	return sb.String()
}

func (g *Group) Leaves(dst []*Token) []*Token {
	for _, n := range g.Nodes {
		dst = n.Leaves(dst)
	}
	return dst
}

// Sublists returns the direct children that are groups.
func (g *Group) Sublists() []*Group {
	var subs []*Group
	for _, n := range g.Nodes {
		if sub := AsGroup(n); sub != nil {
			subs = append(subs, sub)
		}
	}
	return subs
}

// Index returns the position of n among the direct children, or -1.
func (g *Group) Index(n Node) int {
	for i, c := range g.Nodes {
		if c == n {
			return i
		}
	}
	return -1
}

// Insert places n at position idx.
func (g *Group) Insert(idx int, n Node) {
	g.Nodes = append(g.Nodes, nil)
	copy(g.Nodes[idx+1:], g.Nodes[idx:])
	g.Nodes[idx] = n
}

// InsertBefore places n in front of the direct child ref. It is a no-op when
// ref is not a child.
func (g *Group) InsertBefore(ref, n Node) {
	if idx := g.Index(ref); idx >= 0 {
		g.Insert(idx, n)
	}
}

// InsertAfter places n right after the direct child ref.
func (g *Group) InsertAfter(ref, n Node) {
	if idx := g.Index(ref); idx >= 0 {
		g.Insert(idx+1, n)
	}
}

// Remove deletes the child at idx.
func (g *Group) Remove(idx int) {
	g.Nodes = append(g.Nodes[:idx], g.Nodes[idx+1:]...)
}

// Next returns the index of the first child after idx for which match
// returns true, or -1.
func (g *Group) Next(idx int, match func(Node) bool) int {
	for i := idx + 1; i < len(g.Nodes); i++ {
		if match(g.Nodes[i]) {
			return i
		}
	}
	return -1
}

// TokenIndex returns the index of the first direct child token of type typ
// with one of the given normalized values, or -1.
func (g *Group) TokenIndex(typ TokenType, values ...string) int {
	return g.Next(-1, func(n Node) bool {
		t := AsToken(n)
		return t != nil && t.Is(typ, values...)
	})
}

// bounds returns the slice of children that grouping passes may rewrite. For
// a parenthesis that excludes the brackets themselves.
func (g *Group) bounds() (int, int) {
	start, end := 0, len(g.Nodes)
	if g.Kind == Parenthesis && end >= 2 {
		start, end = 1, end-1
	}
	return start, end
}
