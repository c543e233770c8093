package parser

// whereClose lists the keywords that end a WHERE clause.
var whereClose = wordSet(
	"ORDER BY", "GROUP BY", "LIMIT", "UNION", "UNION ALL", "EXCEPT", "INTERSECT",
	"HAVING", "RETURNING", "INTO", "WINDOW",
)

// Build groups the flat token list of a statement into a tree in place:
// brackets and CASE blocks first, then function calls, WHERE clauses, VALUES
// rows, identifiers and finally comma separated identifier lists.
func Build(stmt *Group) *Group {
	stmt.Nodes = groupMatching(stmt.Nodes)
	rewrite(stmt, groupFunctions)
	rewrite(stmt, groupWhere)
	rewrite(stmt, groupValues)
	rewrite(stmt, groupIdentifiers)
	rewrite(stmt, groupIdentifierLists)
	return stmt
}

// rewrite applies fn to the rewritable children of every container group,
// innermost first.
func rewrite(g *Group, fn func([]Node) []Node) {
	for _, sub := range g.Sublists() {
		rewrite(sub, fn)
	}

	switch g.Kind {
	case Statement, Parenthesis, Where, Case:
	default:
		return
	}

	start, end := g.bounds()
	inner := fn(append([]Node(nil), g.Nodes[start:end]...))

	nodes := make([]Node, 0, start+len(inner)+len(g.Nodes)-end)
	nodes = append(nodes, g.Nodes[:start]...)
	nodes = append(nodes, inner...)
	nodes = append(nodes, g.Nodes[end:]...)
	g.Nodes = nodes
}

type frame struct {
	kind  GroupKind
	nodes []Node
}

// groupMatching builds Parenthesis and Case groups. Unbalanced openers are
// left as plain tokens and unmatched closers are ignored.
func groupMatching(nodes []Node) []Node {
	stack := []*frame{{kind: Statement}}

	for _, n := range nodes {
		t := AsToken(n)
		top := stack[len(stack)-1]

		switch {
		case t != nil && t.IsPunct("("):
			stack = append(stack, &frame{kind: Parenthesis, nodes: []Node{t}})
		case t != nil && t.Is(Keyword, "CASE"):
			stack = append(stack, &frame{kind: Case, nodes: []Node{t}})
		case t != nil && (t.IsPunct(")") || t.Is(Keyword, "END")):
			kind := Parenthesis
			if t.Type == Keyword {
				kind = Case
			}

			at := openFrame(stack, kind)
			if at < 0 {
				top.nodes = append(top.nodes, t)
				continue
			}

			// unwind anything left open inside the matched frame
			for len(stack)-1 > at {
				stack = unwind(stack)
			}

			closing := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.nodes = append(parent.nodes, &Group{Kind: kind, Nodes: append(closing.nodes, t)})
		default:
			top.nodes = append(top.nodes, n)
		}
	}

	for len(stack) > 1 {
		stack = unwind(stack)
	}

	return stack[0].nodes
}

func openFrame(stack []*frame, kind GroupKind) int {
	for i := len(stack) - 1; i > 0; i-- {
		if stack[i].kind == kind {
			return i
		}
	}
	return -1
}

// unwind pops the top frame and splices its nodes, ungrouped, into its parent.
func unwind(stack []*frame) []*frame {
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	parent := stack[len(stack)-1]
	parent.nodes = append(parent.nodes, top.nodes...)
	return stack
}

// groupFunctions joins a name directly followed by a parenthesis.
func groupFunctions(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		t := AsToken(nodes[i])
		if t != nil && t.Type == Name && i+1 < len(nodes) {
			if p := AsGroup(nodes[i+1]); p != nil && p.Kind == Parenthesis {
				out = append(out, &Group{Kind: Function, Nodes: []Node{t, p}})
				i++
				continue
			}
		}
		out = append(out, nodes[i])
	}
	return out
}

// groupWhere wraps WHERE and everything up to a closing keyword or the
// statement terminator.
func groupWhere(nodes []Node) []Node {
	start := -1
	for i, n := range nodes {
		if t := AsToken(n); t != nil && t.Is(Keyword, "WHERE") {
			start = i
			break
		}
	}
	if start < 0 {
		return nodes
	}

	end := len(nodes)
	for i := start + 1; i < len(nodes); i++ {
		t := AsToken(nodes[i])
		if t == nil {
			continue
		}
		if t.IsPunct(";") || (t.IsKeyword() && has(whereClose, t.Normalized())) {
			end = i
			break
		}
	}

	where := &Group{Kind: Where, Nodes: append([]Node(nil), nodes[start:end]...)}
	out := make([]Node, 0, start+1+len(nodes)-end)
	out = append(out, nodes[:start]...)
	out = append(out, where)
	return append(out, nodes[end:]...)
}

// groupValues wraps VALUES together with the comma separated rows after it.
func groupValues(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		t := AsToken(nodes[i])
		if t == nil || !t.Is(Keyword, "VALUES") {
			out = append(out, nodes[i])
			continue
		}

		end := -1
		for j := skipBlank(nodes, i+1); j < len(nodes) && isParenthesis(nodes[j]); {
			end = j
			c := skipBlank(nodes, j+1)
			if c >= len(nodes) || !isComma(nodes[c]) {
				break
			}
			j = skipBlank(nodes, c+1)
		}

		if end < 0 {
			out = append(out, t)
			continue
		}

		out = append(out, &Group{Kind: Values, Nodes: append([]Node(nil), nodes[i:end+1]...)})
		i = end
	}
	return out
}

// groupIdentifiers folds operands joined by dots, operators and comparisons,
// plus a trailing alias or sort direction, into Identifier groups.
func groupIdentifiers(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		if !isOperand(nodes[i]) {
			out = append(out, nodes[i])
			continue
		}

		end := extendIdentifier(nodes, i)
		if end == i {
			out = append(out, nodes[i])
			continue
		}

		out = append(out, &Group{Kind: Identifier, Nodes: append([]Node(nil), nodes[i:end+1]...)})
		i = end
	}
	return out
}

// extendIdentifier returns the index of the last node that belongs to the
// identifier starting at start.
func extendIdentifier(nodes []Node, start int) int {
	end := start

	for {
		// qualified name: a.b, a.*
		if dot := end + 1; dot+1 < len(nodes) && isPunct(nodes[dot], ".") && isOperand(nodes[dot+1]) {
			end = dot + 1
			continue
		}

		// binary operation: a + b, a = b, a::text
		op := skipBlank(nodes, end+1)
		if op < len(nodes) && isOperator(nodes[op]) {
			if rhs := skipBlank(nodes, op+1); rhs < len(nodes) && isOperand(nodes[rhs]) {
				end = rhs
				continue
			}
		}
		break
	}

	// alias: a AS b, a b
	next := skipBlank(nodes, end+1)
	if next < len(nodes) {
		t := AsToken(nodes[next])
		switch {
		case t != nil && t.Is(Keyword, "AS"):
			if alias := skipBlank(nodes, next+1); alias < len(nodes) && isAlias(nodes[alias]) {
				end = alias
			}
		case t != nil && t.Type == Name && next > end+1:
			end = next
		}
	}

	// sort direction: a DESC
	if dir := skipBlank(nodes, end+1); dir < len(nodes) {
		if t := AsToken(nodes[dir]); t != nil && t.Is(Keyword, "ASC", "DESC") {
			end = dir
		}
	}

	return end
}

// groupIdentifierLists wraps runs of list items separated by commas.
func groupIdentifierLists(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		if !isListItem(nodes[i]) {
			out = append(out, nodes[i])
			continue
		}

		end := i
		for {
			c := skipBlank(nodes, end+1)
			if c >= len(nodes) || !isComma(nodes[c]) {
				break
			}
			item := skipBlank(nodes, c+1)
			if item >= len(nodes) || !isListItem(nodes[item]) {
				break
			}
			end = item
		}

		if end == i {
			out = append(out, nodes[i])
			continue
		}

		out = append(out, &Group{Kind: IdentifierList, Nodes: append([]Node(nil), nodes[i:end+1]...)})
		i = end
	}
	return out
}

// skipBlank returns the index of the first node at or after i that is not
// whitespace or a comment.
func skipBlank(nodes []Node, i int) int {
	for ; i < len(nodes); i++ {
		t := AsToken(nodes[i])
		if t == nil || !(t.IsWhitespace() || t.IsComment()) {
			return i
		}
	}
	return i
}

func isPunct(n Node, p string) bool {
	t := AsToken(n)
	return t != nil && t.IsPunct(p)
}

func isComma(n Node) bool { return isPunct(n, ",") }

func isParenthesis(n Node) bool {
	g := AsGroup(n)
	return g != nil && g.Kind == Parenthesis
}

func isOperator(n Node) bool {
	t := AsToken(n)
	return t != nil && (t.Type == Operator || t.Type == Comparison)
}

func isOperand(n Node) bool {
	if g := AsGroup(n); g != nil {
		switch g.Kind {
		case Parenthesis, Function, Case, Identifier:
			return true
		}
		return false
	}

	t := AsToken(n)
	switch t.Type {
	case Name, Builtin, Wildcard, String, Number, Placeholder:
		return true
	case Keyword:
		return t.Is(Keyword, "NULL", "TRUE", "FALSE", "CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP")
	}
	return false
}

func isAlias(n Node) bool {
	t := AsToken(n)
	return t != nil && (t.Type == Name || t.Type == Builtin || t.Type == String)
}

func isListItem(n Node) bool {
	if g := AsGroup(n); g != nil {
		return g.Kind != Where && g.Kind != Statement
	}
	return isOperand(n)
}
