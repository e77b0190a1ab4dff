package readstore

import (
	"fmt"
	"sort"
	"strings"

	"rentacar-api/internal/usecase/queries"
)

// buildListSQL renders caller-supplied list options into SQL fragments.
// Field names go through the allowlist (API field -> qualified column), so
// nothing caller-controlled is ever interpolated; values travel as args.
// Unknown fields are dropped silently, matching the permissive query
// grammar of the HTTP surface.
func buildListSQL(opts queries.ListOptions, allowed map[string]string, defaultOrder string, startArg int) (conds []string, orderBy string, paging string, args []any) {
	opts.Normalize()

	next := func() string {
		placeholder := fmt.Sprintf("$%d", startArg+len(args))
		return placeholder
	}

	// Sorted iteration keeps the rendered SQL stable for a given option set.
	for _, field := range sortedKeys(opts.Filters) {
		col, ok := allowed[field]
		if !ok {
			continue
		}
		conds = append(conds, col+" = "+next())
		args = append(args, opts.Filters[field])
	}

	for _, field := range sortedKeys(opts.Searches) {
		col, ok := allowed[field]
		if !ok {
			continue
		}
		conds = append(conds, col+"::text ILIKE "+next())
		args = append(args, "%"+opts.Searches[field]+"%")
	}

	var orderKeys []string
	for _, key := range opts.Sort {
		col, ok := allowed[key.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if key.Desc {
			dir = "DESC"
		}
		orderKeys = append(orderKeys, col+" "+dir)
	}
	if len(orderKeys) == 0 {
		orderKeys = append(orderKeys, defaultOrder)
	}
	orderBy = "ORDER BY " + strings.Join(orderKeys, ", ")

	paging = fmt.Sprintf("LIMIT %d OFFSET %d", opts.Limit, opts.Offset())

	return conds, orderBy, paging, args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
