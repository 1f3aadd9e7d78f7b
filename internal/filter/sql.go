package filter

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE wildcards so the needle is matched literally
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// SQL renders the predicate as a WHERE fragment. columns maps field names to column names and
// rejects anything else; placeholder returns the bind marker for the n-th argument (1-based).
// A universal predicate renders as an empty fragment.
func (p Predicate) SQL(columns map[string]string, placeholder func(n int) string, argOffset int) (string, []interface{}, error) {
	if p.IsUniversal() {
		return "", nil, nil
	}

	parts := make([]string, 0, len(p.Any))
	args := make([]interface{}, 0, len(p.Any))
	for _, c := range p.Any {
		col, ok := columns[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter field %q", c.Field)
		}
		ph := placeholder(argOffset + len(args) + 1)
		switch c.Op {
		case OpContains:
			parts = append(parts, fmt.Sprintf(`%s LIKE %s ESCAPE '\'`, col, ph))
			args = append(args, "%"+EscapeLike(fmt.Sprint(c.Value))+"%")
		case OpEquals:
			parts = append(parts, fmt.Sprintf("%s = %s", col, ph))
			args = append(args, c.Value)
		default:
			return "", nil, fmt.Errorf("unsupported filter operator %q", c.Op)
		}
	}

	if len(parts) == 1 {
		return parts[0], args, nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args, nil
}

// DollarPlaceholder renders Postgres-style $n markers
func DollarPlaceholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

// QuestionPlaceholder renders ? markers
func QuestionPlaceholder(int) string {
	return "?"
}
