package domain

// Sort orders accepted by the list pipeline. Anything else falls back to
// SortDateDesc rather than erroring.
const (
	SortDateAsc        = "date-asc"
	SortDateDesc       = "date-desc"
	SortNameAsc        = "name-asc"
	SortNameDesc       = "name-desc"
	SortExperienceAsc  = "experience-asc"
	SortExperienceDesc = "experience-desc"
)

// Experience buckets accepted by the list pipeline.
const (
	ExperienceJunior = "0-2"
	ExperienceMid    = "3-5"
	ExperienceSenior = "6+"
)

// FilterAll is the "match everything" sentinel the frontend sends for
// position/status/experience dropdowns.
const FilterAll = "All"

// DefaultPageSize matches the dashboard's 12-card grid.
const DefaultPageSize = 12

// ListQuery carries the filter/sort/page selection for one list retrieval.
// Zero values mean "no constraint" for the filters and are normalized by
// Normalize before execution.
type ListQuery struct {
	Search     string
	Position   string
	Status     string
	Experience string
	SortBy     string
	Page       int
	Limit      int
}

// Normalize applies defaults and collapses "All" sentinels so the repository
// only ever sees effective constraints.
func (q ListQuery) Normalize() ListQuery {
	if q.Position == FilterAll {
		q.Position = ""
	}
	if q.Status == FilterAll {
		q.Status = ""
	}
	if q.Experience == FilterAll {
		q.Experience = ""
	}
	switch q.SortBy {
	case SortDateAsc, SortDateDesc, SortNameAsc, SortNameDesc, SortExperienceAsc, SortExperienceDesc:
	default:
		q.SortBy = SortDateDesc
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	return q
}

// Offset returns the zero-based window start for the query's page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the page metadata returned with every list response.
type Pagination struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
}

// ListResult is the full payload of one list retrieval: the page slice, the
// global applied-position facet and the page metadata.
type ListResult struct {
	Candidates []Candidate `json:"candidates"`
	Positions  []string    `json:"positions"`
	Pagination Pagination  `json:"pagination"`
}
