package request

import (
	"net/url"
	"strconv"
	"strings"

	"rentacar-api/internal/usecase/queries"
)

// ParseListOptions reads the bracketed listing grammar from the query string:
//
//	filter[field]=value   exact match
//	search[field]=value   substring match
//	sort[field]=1|-1      ascending / descending
//	page=N&limit=N        paging
//
// Unknown fields are passed through here and rejected by the read store
// allowlists, so a typo surfaces as an ignored parameter rather than SQL.
func ParseListOptions(values url.Values) queries.ListOptions {
	opts := queries.ListOptions{
		Filters:  make(map[string]string),
		Searches: make(map[string]string),
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}
		val := vals[0]

		switch {
		case strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]"):
			field := key[len("filter[") : len(key)-1]
			if field != "" {
				opts.Filters[field] = val
			}
		case strings.HasPrefix(key, "search[") && strings.HasSuffix(key, "]"):
			field := key[len("search[") : len(key)-1]
			if field != "" {
				opts.Searches[field] = val
			}
		case strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]"):
			field := key[len("sort[") : len(key)-1]
			if field == "" {
				continue
			}
			direction, err := strconv.Atoi(val)
			if err != nil || (direction != 1 && direction != -1) {
				continue
			}
			opts.Sort = append(opts.Sort, queries.SortKey{
				Field: field,
				Desc:  direction == -1,
			})
		case key == "page":
			if page, err := strconv.Atoi(val); err == nil {
				opts.Page = page
			}
		case key == "limit":
			if limit, err := strconv.Atoi(val); err == nil {
				opts.Limit = limit
			}
		}
	}

	opts.Normalize()
	return opts
}
