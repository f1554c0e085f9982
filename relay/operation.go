package relay

import "strings"

type operation struct {
	kind string // query, mutation or subscription
	name string
}

// operations lists the operation definitions of a GraphQL document. It only
// looks at the top level, skipping strings, comments and everything between
// brackets, and does not validate the document.
func operations(doc string) []operation {
	var (
		ops        []operation
		pending    *operation
		wantName   bool
		inFragment bool
		depth      int
	)
	for i := 0; i < len(doc); {
		c := doc[i]
		switch {
		case c == '#':
			for i < len(doc) && doc[i] != '\n' && doc[i] != '\r' {
				i++
			}
		case strings.HasPrefix(doc[i:], `"""`):
			i += 3
			for i < len(doc) && !strings.HasPrefix(doc[i:], `"""`) {
				if strings.HasPrefix(doc[i:], `\"""`) {
					i += 4
					continue
				}
				i++
			}
			i += 3
		case c == '"':
			i++
			for i < len(doc) && doc[i] != '"' && doc[i] != '\n' {
				if doc[i] == '\\' {
					i++
				}
				i++
			}
			i++
		case c == '{' || c == '(' || c == '[':
			if depth == 0 {
				wantName = false
				if c == '{' {
					switch {
					case pending != nil:
						ops = append(ops, *pending)
					case !inFragment:
						ops = append(ops, operation{kind: "query"})
					}
					pending, inFragment = nil, false
				}
			}
			depth++
			i++
		case c == '}' || c == ')' || c == ']':
			if depth > 0 {
				depth--
			}
			i++
		case c == '@':
			wantName = false
			i++
		case isNameStart(c):
			start := i
			for i < len(doc) && isNameContinue(doc[i]) {
				i++
			}
			if depth > 0 {
				continue
			}
			name := doc[start:i]
			switch {
			case wantName:
				pending.name = name
				wantName = false
			case pending != nil || inFragment:
			case name == "query" || name == "mutation" || name == "subscription":
				pending = &operation{kind: name}
				wantName = true
			case name == "fragment":
				inFragment = true
			}
		default:
			i++
		}
	}
	return ops
}

// isMutation reports whether executing doc with operationName could run a
// mutation. Without an operation name every mutation in doc counts.
func isMutation(doc, operationName string) bool {
	for _, op := range operations(doc) {
		if op.kind == "mutation" && (operationName == "" || op.name == operationName) {
			return true
		}
	}
	return false
}

func isNameStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || c >= '0' && c <= '9'
}
