package postgres

import (
	"fmt"
	"strings"

	"github.com/FarazAhsan11/candidate-management/internal/domain"
)

// buildListFilter turns the normalized query into a WHERE clause and its
// arguments. Returns an empty string when no filter applies so it can be
// appended to the base query directly.
func buildListFilter(q domain.ListQuery) (string, []any) {
	var conditions []string
	var args []any

	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR applied_position ILIKE $%d)", n, n, n))
	}
	if q.Position != "" {
		args = append(args, q.Position)
		conditions = append(conditions, fmt.Sprintf("applied_position = $%d", len(args)))
	}
	if q.Status != "" {
		args = append(args, q.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	switch q.Experience {
	case domain.ExperienceJunior:
		conditions = append(conditions, "experience_years <= 2")
	case domain.ExperienceMid:
		conditions = append(conditions, "experience_years BETWEEN 3 AND 5")
	case domain.ExperienceSenior:
		conditions = append(conditions, "experience_years >= 6")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// orderByClause maps a sort key onto its ORDER BY expression. No secondary
// tie-break key: ties keep the scan order.
func orderByClause(sortBy string) string {
	switch sortBy {
	case domain.SortDateAsc:
		return "created_at ASC"
	case domain.SortNameAsc:
		return "name ASC"
	case domain.SortNameDesc:
		return "name DESC"
	case domain.SortExperienceAsc:
		return "experience_years ASC"
	case domain.SortExperienceDesc:
		return "experience_years DESC"
	default:
		return "created_at DESC"
	}
}

// escapeLike neutralizes LIKE metacharacters in user search input so the
// match is a literal substring match.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
