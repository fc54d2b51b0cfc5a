package repair

import "strings"

// Finalize walks the final token vector and emits strict JSON text.
func Finalize(tokens TokenStream) string {
	var b strings.Builder
	for _, t := range tokens {
		switch t.Kind {
		case STRING:
			b.WriteString(finalizeString(t.Value))
		case BOOLEAN:
			b.WriteString(strings.ToLower(t.Value))
		case NULL:
			b.WriteString("null")
		case DATE:
			b.WriteString(`"` + t.Value + `"`)
		default:
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

func finalizeString(val string) string {
	switch {
	case strings.HasPrefix(val, `"`) && strings.HasSuffix(val, `"`) && len(val) >= 2:
		return val
	case strings.HasPrefix(val, "'") && strings.HasSuffix(val, "'") && len(val) >= 2:
		inner := val[1 : len(val)-1]
		inner = strings.ReplaceAll(inner, `"`, `\"`)
		return `"` + inner + `"`
	default:
		escaped := strings.ReplaceAll(val, `\`, `\\`)
		escaped = strings.ReplaceAll(escaped, `"`, `\"`)
		return `"` + escaped + `"`
	}
}
