package parser

// Split breaks a token stream into statements at semicolons. Whitespace and
// line comments following a semicolon stay with the statement it terminates,
// and a trailing statement made only of whitespace is dropped.
func Split(tokens []*Token) []*Group {
	var (
		stmts     []*Group
		current   []Node
		consumeWS bool
	)

	flush := func() {
		if !allWhitespace(current) {
			stmts = append(stmts, &Group{Kind: Statement, Nodes: current})
		}
		current = nil
	}

	for _, t := range tokens {
		if consumeWS && !t.IsWhitespace() && t.Type != Comment {
			flush()
			consumeWS = false
		}

		current = append(current, t)
		if t.IsPunct(";") {
			consumeWS = true
		}
	}

	flush()
	return stmts
}

func allWhitespace(nodes []Node) bool {
	for _, n := range nodes {
		if !IsWhitespace(n) {
			return false
		}
	}
	return true
}
