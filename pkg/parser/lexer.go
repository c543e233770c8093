package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// sqlLexer tokenizes generic SQL. Order matters: the first rule that
	// matches at the current position wins. The final rule accepts any
	// character, so lexing valid UTF-8 never fails.
	sqlLexer = lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Comment", Pattern: `(?:--|# )[^\r\n]*(?:\r\n|\r|\n)?`},
			{Name: "MultilineComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
			{Name: "Whitespace", Pattern: `[\s\p{Zs}]+`},
			{Name: "String", Pattern: `'(?:''|\\'|[^'])*'`},
			{Name: "QuotedIdent", Pattern: "\"(?:\"\"|[^\"])*\"|`(?:``|[^`])*`"},
			{Name: "DollarOpen", Pattern: `\$([A-Za-z_]\w*|)\$`, Action: lexer.Push("Dollar")},
			{Name: "Number", Pattern: `(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`},
			{Name: "Placeholder", Pattern: `\?|:[A-Za-z_]\w*|\$\d+|%\(\w+\)s|%s|@[A-Za-z_]\w*`},
			{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_$]*`},
			{Name: "Comparison", Pattern: `[<>=~!]+`},
			{Name: "Operator", Pattern: `::|:=|->>|->|\*|[+/@#%^&|-]+`},
			{Name: "Punct", Pattern: `[(),;.:\[\]]`},
			{Name: "Unrecognized", Pattern: `(?s:.)`},
		},
		// body of a $tag$ quoted string, closed by the same tag
		"Dollar": {
			{Name: "DollarClose", Pattern: `\$\1\$`, Action: lexer.Pop()},
			{Name: "DollarBody", Pattern: `[^$]+|\$`},
		},
	})

	symbolNames = func() map[lexer.TokenType]string {
		names := make(map[lexer.TokenType]string)
		for name, typ := range sqlLexer.Symbols() {
			names[typ] = name
		}
		return names
	}()

	// phrases are keyword sequences lexed as a single token when their words
	// are separated only by whitespace.
	phrases = wordSet(
		"GROUP BY", "ORDER BY", "PARTITION BY", "UNION ALL", "PRIMARY KEY",
		"LEFT JOIN", "LEFT OUTER JOIN", "RIGHT JOIN", "RIGHT OUTER JOIN",
		"FULL JOIN", "FULL OUTER JOIN", "INNER JOIN", "CROSS JOIN", "NATURAL JOIN",
	)
)

const maxPhraseWords = 3

// lexeme is one or more raw tokens that classify as a single Token.
type lexeme struct {
	rule  string
	value string
}

// Lex tokenizes sql and classifies each token. Every byte of the input ends up
// in exactly one token, so joining the values reproduces sql. Characters no
// rule recognizes become Unrecognized tokens. Only input that is not valid
// UTF-8 is an error.
func Lex(sql string) ([]*Token, error) {
	if !utf8.ValidString(sql) {
		return nil, errors.New("failed to lex SQL: input is not valid UTF-8")
	}

	lex, err := sqlLexer.LexString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex SQL")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lex SQL")
	}

	// drop the trailing EOF token
	if n := len(raw); n > 0 && raw[n-1].EOF() {
		raw = raw[:n-1]
	}

	lexemes := join(raw)
	tokens := make([]*Token, 0, len(lexemes))
	for i, lx := range lexemes {
		tokens = append(tokens, &Token{
			Type:  classify(lexemes, i, tokens),
			Value: lx.value,
		})
	}

	return tokens, nil
}

// join folds dollar quoted strings and keyword phrases into single lexemes.
func join(raw []lexer.Token) []lexeme {
	out := make([]lexeme, 0, len(raw))

	for i := 0; i < len(raw); i++ {
		rule := symbolNames[raw[i].Type]

		switch rule {
		case "DollarOpen":
			var sb strings.Builder
			for ; i < len(raw); i++ {
				sb.WriteString(raw[i].Value)
				if symbolNames[raw[i].Type] == "DollarClose" {
					break
				}
			}
			out = append(out, lexeme{rule: "String", value: sb.String()})
			continue
		case "Ident":
			if n := phraseLen(raw, i); n > 0 {
				var sb strings.Builder
				for _, rt := range raw[i : i+n] {
					sb.WriteString(rt.Value)
				}
				out = append(out, lexeme{rule: "Phrase", value: sb.String()})
				i += n - 1
				continue
			}
		}

		out = append(out, lexeme{rule: rule, value: raw[i].Value})
	}

	return out
}

// phraseLen returns the number of raw tokens making up the longest phrase
// that starts at i, or 0 when no phrase starts there.
func phraseLen(raw []lexer.Token, i int) int {
	var words []string
	found := 0

	for j := i; j < len(raw) && len(words) < maxPhraseWords; j += 2 {
		if symbolNames[raw[j].Type] != "Ident" {
			break
		}

		words = append(words, strings.ToUpper(raw[j].Value))
		if len(words) > 1 && has(phrases, strings.Join(words, " ")) {
			found = j - i + 1
		}

		if j+1 >= len(raw) || symbolNames[raw[j+1].Type] != "Whitespace" {
			break
		}
	}

	return found
}

func classify(lexemes []lexeme, i int, prior []*Token) TokenType {
	lx := lexemes[i]

	switch lx.rule {
	case "Comment":
		return Comment
	case "MultilineComment":
		return MultilineComment
	case "Whitespace":
		return Whitespace
	case "String":
		return String
	case "QuotedIdent":
		return Name
	case "Number":
		return Number
	case "Phrase":
		return Keyword
	case "Placeholder":
		return Placeholder
	case "Comparison":
		return Comparison
	case "Punct":
		return Punctuation
	case "Operator":
		if lx.value == "*" && startsOperand(prior) {
			return Wildcard
		}
		return Operator
	case "Ident":
		called := i+1 < len(lexemes) && lexemes[i+1].value == "("
		qualified := (i+1 < len(lexemes) && lexemes[i+1].value == ".") || (i > 0 && lexemes[i-1].value == ".")
		return classifyWord(strings.ToUpper(lx.value), called || qualified)
	}

	return Unrecognized
}

// startsOperand reports whether the next token begins an operand rather than
// continuing an expression, which tells a wildcard apart from multiplication.
func startsOperand(prior []*Token) bool {
	for i := len(prior) - 1; i >= 0; i-- {
		t := prior[i]
		if t.IsWhitespace() || t.IsComment() {
			continue
		}

		return t.IsKeyword() || t.IsPunct("(") || t.IsPunct(",") || t.IsPunct(".")
	}

	return true
}
