package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FarazAhsan11/candidate-management/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const candidateColumns = `id, name, email, phone, city,
	institute, education_level, graduation_year,
	current_position, current_company, experience_years,
	notice_period, reason_to_switch, applied_position,
	current_salary, expected_salary, expected_salary_part_time,
	resume_file, resume_file_name, resume_file_type, loom_link,
	status, hr_remarks, interviewer_remarks,
	created_at, updated_at`

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.City,
		&c.Institute, &c.EducationLevel, &c.GraduationYear,
		&c.CurrentPosition, &c.CurrentCompany, &c.ExperienceYears,
		&c.NoticePeriod, &c.ReasonToSwitch, &c.AppliedPosition,
		&c.CurrentSalary, &c.ExpectedSalary, &c.ExpectedSalaryPartTime,
		&c.ResumeFile, &c.ResumeFileName, &c.ResumeFileType, &c.LoomLink,
		&c.Status, &c.HrRemarks, &c.InterviewerRemarks,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create assigns the id and creation timestamp and inserts the record.
func (r *candidateRepository) Create(ctx context.Context, c *domain.Candidate) error {
	c.ID = uuid.NewString()
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.City,
		c.Institute, c.EducationLevel, c.GraduationYear,
		c.CurrentPosition, c.CurrentCompany, c.ExperienceYears,
		c.NoticePeriod, c.ReasonToSwitch, c.AppliedPosition,
		c.CurrentSalary, c.ExpectedSalary, c.ExpectedSalaryPartTime,
		c.ResumeFile, c.ResumeFileName, c.ResumeFileType, c.LoomLink,
		c.Status, c.HrRemarks, c.InterviewerRemarks,
		c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *candidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Update applies only the fields present on the patch and returns the updated
// record. The resume reference group, when present, writes its three columns
// in the same statement.
func (r *candidateRepository) Update(ctx context.Context, id string, patch *domain.CandidatePatch) (*domain.Candidate, error) {
	set, args := buildUpdateSet(patch)
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE candidates SET %s WHERE id = $%d RETURNING `+candidateColumns,
		set, len(args),
	)
	c, err := scanCandidate(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *candidateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List runs the filter/sort/page pipeline: predicate and order resolve to
// SQL, the window slices server-side, and the applied-position facet is
// computed over the whole table regardless of the active filters.
func (r *candidateRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.Candidate, int64, []string, error) {
	where, args := buildListFilter(q)

	query := fmt.Sprintf(
		`SELECT `+candidateColumns+` FROM candidates%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, orderByClause(q.SortBy), len(args)+1, len(args)+2,
	)
	rows, err := r.db.Query(ctx, query, append(args, q.Limit, q.Offset())...)
	if err != nil {
		return nil, 0, nil, err
	}
	defer rows.Close()

	items := make([]domain.Candidate, 0, q.Limit)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, nil, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM candidates` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, nil, err
	}

	positions, err := r.distinctPositions(ctx)
	if err != nil {
		return nil, 0, nil, err
	}

	return items, total, positions, nil
}

// The facet is global: the query takes no predicate, so the position list is
// identical whatever filters the current listing applies.
const distinctPositionsQuery = `SELECT DISTINCT applied_position FROM candidates ORDER BY applied_position`

func (r *candidateRepository) distinctPositions(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, distinctPositionsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []string{}
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}
