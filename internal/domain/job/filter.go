package job

import "strings"

// Filter returns the sub-sequence of jobs matching both the free-text query
// and the selected categories, preserving the order of the input slice.
//
// An empty query matches every job; otherwise the query must be a
// case-insensitive substring of the title, the repository name, or any skill.
// An empty category set matches every job; otherwise the job's category must
// be a member of the set.
func Filter(jobs []Job, query string, categories []Category) []Job {
	q := strings.ToLower(query)

	selected := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		selected[c] = struct{}{}
	}

	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesQuery(j, q) {
			continue
		}
		if len(selected) > 0 {
			if _, ok := selected[j.Category]; !ok {
				continue
			}
		}
		out = append(out, j)
	}
	return out
}

func matchesQuery(j Job, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(j.RepoName), q) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
