package repository

import (
	"fmt"
	"strings"

	"github.com/hackernews-graphql-api/internal/filter"
)

func orderClause(order []OrderBy, columns map[string]string) (string, error) {
	if len(order) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(order))
	for _, o := range order {
		col, ok := columns[o.Field]
		if !ok {
			return "", fmt.Errorf("unknown order field %q", o.Field)
		}
		if o.Desc {
			col += " DESC"
		} else {
			col += " ASC"
		}
		parts = append(parts, col)
	}
	return strings.Join(parts, ", "), nil
}

// buildSelect appends WHERE, ORDER BY, LIMIT and OFFSET to base using Postgres placeholders
func buildSelect(base string, args FindManyArgs, columns map[string]string) (string, []interface{}, error) {
	var sb strings.Builder
	sb.WriteString(base)

	where, params, err := args.Where.SQL(columns, filter.DollarPlaceholder, 0)
	if err != nil {
		return "", nil, err
	}
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	order, err := orderClause(args.OrderBy, columns)
	if err != nil {
		return "", nil, err
	}
	if order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(order)
	}

	if args.Take > 0 {
		params = append(params, args.Take)
		fmt.Fprintf(&sb, " LIMIT $%d", len(params))
	}
	if args.Skip > 0 {
		params = append(params, args.Skip)
		fmt.Fprintf(&sb, " OFFSET $%d", len(params))
	}

	return sb.String(), params, nil
}
