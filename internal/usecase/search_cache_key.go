package usecase

import (
	"sort"
	"strings"
)

// JobsSearchPattern matches every cached job search, used for invalidation on
// any job mutation.
const JobsSearchPattern = "jobs:search:*"

// JobsSearchCacheKey builds a stable key for a list query. Categories are
// sorted so selection order does not fragment the cache. The query is folded
// to lower case and nothing else: the list filter matches the query as typed
// apart from case, so any further normalization here would collide keys for
// queries that filter differently.
func JobsSearchCacheKey(query string, categories []string) string {
	q := strings.ToLower(query)

	cats := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		cats = append(cats, c)
	}
	sort.Strings(cats)

	var b strings.Builder
	b.WriteString("jobs:search:q=")
	b.WriteString(q)
	b.WriteString("|cats=")
	b.WriteString(strings.Join(cats, ","))
	return b.String()
}
