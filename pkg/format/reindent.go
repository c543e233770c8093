package format

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// splitWords start a new line when reindenting. Any keyword ending in JOIN
// splits too.
var splitWords = map[string]bool{
	"FROM":      true,
	"AND":       true,
	"OR":        true,
	"GROUP BY":  true,
	"ORDER BY":  true,
	"UNION":     true,
	"UNION ALL": true,
	"VALUES":    true,
	"SET":       true,
	"BETWEEN":   true,
	"EXCEPT":    true,
	"HAVING":    true,
	"LIMIT":     true,
}

// reindenter breaks statements into lines. Offsets are measured in display
// columns relative to the current indent level.
type reindenter struct {
	width     int
	char      string
	wrapAfter int

	indent   int
	offset   int
	stmt     *parser.Group
	lastStmt *parser.Group
	lastFunc *parser.Token
	stack    []parser.GroupKind
}

func newReindenter(opts Options) *reindenter {
	return &reindenter{
		width:     opts.IndentWidth,
		char:      opts.IndentChar,
		wrapAfter: opts.WrapAfter,
	}
}

// Process reindents stmt and separates it from the previously processed
// statement with a blank line.
func (r *reindenter) Process(stmt *parser.Group) {
	r.stmt = stmt
	r.indent, r.offset = 0, 0
	r.process(stmt)

	if r.lastStmt != nil {
		sep := "\n\n"
		if strings.HasSuffix(r.lastStmt.String(), "\n") {
			sep = "\n"
		}
		stmt.Insert(0, parser.NewWhitespace(sep))
	}
	r.lastStmt = stmt
}

func (r *reindenter) process(g *parser.Group) {
	r.stack = append(r.stack, g.Kind)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	switch g.Kind {
	case parser.Where:
		r.processWhere(g)
	case parser.Parenthesis:
		r.processParenthesis(g)
	case parser.Function:
		r.processFunction(g)
	case parser.IdentifierList:
		r.processIdentifierList(g)
	case parser.Case:
		r.processCase(g)
	case parser.Values:
		r.processValues(g)
	default:
		r.processDefault(g, true)
	}
}

func (r *reindenter) processDefault(g *parser.Group, splitStatements bool) {
	if splitStatements {
		r.splitStatements(g)
	}
	r.splitKeywords(g)

	for _, sub := range g.Sublists() {
		r.process(sub)
	}
}

func (r *reindenter) processWhere(g *parser.Group) {
	idx := g.TokenIndex(parser.Keyword, "WHERE")
	if idx < 0 {
		r.processDefault(g, true)
		return
	}

	g.Insert(idx, r.nl(0))
	r.withIndent(1, func() { r.processDefault(g, true) })
}

func (r *reindenter) processParenthesis(g *parser.Group) {
	open := parser.FirstLeaf(g)
	if open == nil || !open.IsPunct("(") {
		r.processDefault(g, true)
		return
	}

	dml := g.Next(-1, isStatementStart) >= 0
	indent := 0
	if dml {
		indent = 1
	}

	r.withIndent(indent, func() {
		if dml {
			g.Insert(0, r.nl(0))
		}
		r.withOffset(r.getOffset(open)+1, func() { r.processDefault(g, !dml) })
	})
}

func (r *reindenter) processFunction(g *parser.Group) {
	r.lastFunc = parser.FirstLeaf(g)
	r.processDefault(g, true)
}

func (r *reindenter) processIdentifierList(g *parser.Group) {
	var items []parser.Node
	for _, n := range g.Nodes {
		if t := parser.AsToken(n); t != nil && (t.IsWhitespace() || t.IsComment() || t.IsPunct(",")) {
			continue
		}
		items = append(items, n)
	}
	if len(items) == 0 {
		r.processDefault(g, true)
		return
	}

	first, rest := items[0], items[1:]
	if !r.within(parser.Function) && !r.within(parser.Values) {
		num := r.getOffset(parser.FirstLeaf(first))
		if r.char == "\t" {
			num = 1
		}

		r.withOffset(num, func() {
			pos := 0
			for _, item := range rest {
				pos += width(item.String()) + 1
				if pos > r.wrapAfter-r.offset {
					g.InsertBefore(item, r.nl(0))
					pos = 0
				}
			}
		})
	} else {
		for i := 0; i < len(g.Nodes); i++ {
			if isComma(g.Nodes[i]) && (i+1 == len(g.Nodes) || !parser.IsWhitespace(g.Nodes[i+1])) {
				g.Insert(i+1, parser.NewWhitespace(" "))
			}
		}

		endAt := r.offset
		for _, item := range rest {
			endAt += width(item.String()) + 1
		}

		adjusted := 0
		if r.wrapAfter > 0 && endAt > r.wrapAfter-r.offset && r.lastFunc != nil {
			adjusted = -width(r.lastFunc.Value) - 1
		}

		r.withOffset(adjusted, func() {
			r.withIndent(1, func() {
				if adjusted < 0 && len(rest) > 0 {
					g.InsertBefore(rest[0], r.nl(0))
				}

				pos := 0
				for _, item := range rest {
					pos += width(item.String()) + 1
					if r.wrapAfter > 0 && pos > r.wrapAfter-r.offset {
						g.InsertBefore(item, r.nl(0))
						pos = 0
					}
				}
			})
		})
	}

	r.processDefault(g, true)
}

type caseBranch struct {
	cond   []parser.Node
	value  []parser.Node
	isElse bool
}

// caseBranches splits a CASE group into its WHEN and ELSE branches. The
// whitespace between CASE and the first WHEN forms a leading branch of its
// own, which is never wrapped.
func caseBranches(g *parser.Group) []caseBranch {
	const (
		inCond = iota
		inValue
		done
	)

	var branches []caseBranch
	mode := inCond
	for _, n := range g.Nodes {
		t := parser.AsToken(n)
		if t != nil && t.Is(parser.Keyword, "CASE") {
			continue
		}

		switch {
		case t != nil && t.Is(parser.Keyword, "WHEN"):
			branches = append(branches, caseBranch{})
			mode = inCond
		case t != nil && t.Is(parser.Keyword, "THEN"):
			mode = inValue
		case t != nil && t.Is(parser.Keyword, "ELSE"):
			branches = append(branches, caseBranch{isElse: true})
			mode = inValue
		case t != nil && t.Is(parser.Keyword, "END"):
			mode = done
		}

		if mode != done && len(branches) == 0 {
			branches = append(branches, caseBranch{})
		}

		switch last := len(branches) - 1; mode {
		case inCond:
			branches[last].cond = append(branches[last].cond, n)
		case inValue:
			branches[last].value = append(branches[last].value, n)
		}
	}

	return branches
}

func (r *reindenter) processCase(g *parser.Group) {
	branches := caseBranches(g)
	caseTok := parser.FirstLeaf(g)

	var first *parser.Token
	switch {
	case len(branches) == 0:
	case len(branches[0].cond) > 0:
		first = parser.FirstLeaf(branches[0].cond[0])
	case len(branches[0].value) > 0:
		first = parser.FirstLeaf(branches[0].value[0])
	}
	if first == nil {
		r.processDefault(g, true)
		return
	}

	r.withOffset(r.getOffset(caseTok), func() {
		r.withOffset(r.getOffset(first), func() {
			for _, b := range branches[1:] {
				end := r.offset + 1 + width(joinNodes(b.cond)) + width(joinNodes(b.value))
				if end <= r.wrapAfter {
					continue
				}

				ref := b.cond
				if b.isElse {
					ref = b.value
				}
				if len(ref) > 0 {
					g.InsertBefore(ref[0], r.nl(0))
				}
			}

			r.withOffset(len("WHEN "), func() { r.processDefault(g, true) })
		})

		if end := g.TokenIndex(parser.Keyword, "END"); end >= 0 {
			g.Insert(end, r.nl(0))
		}
	})
}

// processValues puts VALUES on its own line and lines every following row up
// under the first one.
func (r *reindenter) processValues(g *parser.Group) {
	g.Insert(0, r.nl(0))

	var rows []parser.Node
	for _, n := range g.Nodes {
		if sub := parser.AsGroup(n); sub != nil && sub.Kind == parser.Parenthesis {
			rows = append(rows, sub)
		}
	}
	if len(rows) < 2 {
		return
	}

	col := r.getOffset(parser.FirstLeaf(rows[0]))
	for _, row := range rows[1:] {
		if i := g.Index(row); i > 0 && parser.IsWhitespace(g.Nodes[i-1]) {
			g.Remove(i - 1)
		}
		g.InsertBefore(row, r.nl(col))
	}
}

func (r *reindenter) splitStatements(g *parser.Group) {
	for i := g.Next(-1, isStatementStart); i >= 0; i = g.Next(i, isStatementStart) {
		if i == 0 {
			continue
		}

		// a statement after a line comment already starts on its own line
		if parser.IsWhitespace(g.Nodes[i-1]) {
			g.Remove(i - 1)
			i--
		} else if endsWithBreak(g.Nodes[i-1].String()) {
			continue
		}

		g.Insert(i, r.nl(0))
		i++
	}
}

func (r *reindenter) splitKeywords(g *parser.Group) {
	for i := nextSplit(g, -1); i >= 0; i = nextSplit(g, i) {
		var prev string
		if i > 0 {
			prev = g.Nodes[i-1].String()
			if parser.IsWhitespace(g.Nodes[i-1]) {
				g.Remove(i - 1)
				i--
			}
		}

		if !endsWithBreak(prev) {
			g.Insert(i, r.nl(0))
			i++
		}
	}
}

// nextSplit finds the next keyword to break before, skipping BETWEEN and the
// AND that belongs to it.
func nextSplit(g *parser.Group, idx int) int {
	i := g.Next(idx, isSplitKeyword)
	if i >= 0 && parser.AsToken(g.Nodes[i]).Normalized() == "BETWEEN" {
		i = nextSplit(g, i)
		if i >= 0 && parser.AsToken(g.Nodes[i]).Normalized() == "AND" {
			i = nextSplit(g, i)
		}
	}
	return i
}

func isSplitKeyword(n parser.Node) bool {
	t := parser.AsToken(n)
	if t == nil || t.Type != parser.Keyword {
		return false
	}

	norm := t.Normalized()
	return splitWords[norm] || strings.HasSuffix(norm, "JOIN")
}

func isStatementStart(n parser.Node) bool {
	t := parser.AsToken(n)
	return t != nil && (t.Type == parser.DML || t.Type == parser.DDL)
}

// within reports whether an enclosing group (not the current one) has kind.
func (r *reindenter) within(kind parser.GroupKind) bool {
	for _, k := range r.stack[:len(r.stack)-1] {
		if k == kind {
			return true
		}
	}
	return false
}

func (r *reindenter) leadingWS() int {
	return r.offset + r.indent*r.width
}

func (r *reindenter) nl(extra int) *parser.Token {
	return parser.NewWhitespace("\n" + strings.Repeat(r.char, max(0, r.leadingWS()+extra)))
}

// getOffset returns the column tok starts at on its line, relative to the
// current leading whitespace.
func (r *reindenter) getOffset(tok *parser.Token) int {
	var line strings.Builder
	for _, leaf := range r.stmt.Leaves(nil) {
		if leaf == tok {
			break
		}
		if i := strings.LastIndexAny(leaf.Value, "\r\n"); i >= 0 {
			line.Reset()
			line.WriteString(leaf.Value[i+1:])
			continue
		}
		line.WriteString(leaf.Value)
	}

	return width(line.String()) - r.leadingWS()
}

func (r *reindenter) withOffset(n int, fn func()) {
	r.offset += n
	defer func() { r.offset -= n }()
	fn()
}

func (r *reindenter) withIndent(n int, fn func()) {
	r.indent += n
	defer func() { r.indent -= n }()
	fn()
}

// width is the display width of s. Tabs count as a single column.
func width(s string) int {
	return ansi.PrintableRuneWidth(s) + strings.Count(s, "\t")
}

func endsWithBreak(s string) bool {
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r")
}

func joinNodes(nodes []parser.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}
