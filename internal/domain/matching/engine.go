package matching

import (
	"math"
	"strings"
)

// Result describes the overlap between a job's required skills and a user's
// declared skills.
type Result struct {
	MatchingSkills  []string
	MatchPercentage int
}

// Calculate returns the job skills the user already has (case-insensitive
// equality, job spelling kept) and the rounded percentage of job skills
// covered. A job requiring zero skills matches at 0.
func Calculate(jobSkills, userSkills []string) Result {
	known := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		known[strings.ToLower(s)] = struct{}{}
	}

	matching := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, ok := known[strings.ToLower(s)]; ok {
			matching = append(matching, s)
		}
	}

	pct := 0
	if len(jobSkills) > 0 {
		pct = int(math.Round(float64(len(matching)) / float64(len(jobSkills)) * 100))
	}

	return Result{MatchingSkills: matching, MatchPercentage: pct}
}
