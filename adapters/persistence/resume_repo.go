package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrahman/profilio/internal/domain/resume"
)

// Heading

type postgresHeadingRepo struct {
	db *pgxpool.Pool
}

func NewPostgresHeadingRepo(db *pgxpool.Pool) resume.HeadingRepository {
	return &postgresHeadingRepo{db: db}
}

func (r *postgresHeadingRepo) Upsert(ctx context.Context, h *resume.Heading) error {
	query := `
		INSERT INTO headings (id, owner_id, first_name, last_name, profession, city, country, phone_number, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (owner_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profession = EXCLUDED.profession,
			city = EXCLUDED.city,
			country = EXCLUDED.country,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	// On the conflict path the row keeps its original id and created_at,
	// so refresh the entity from what was actually stored.
	err := r.db.QueryRow(ctx, query,
		h.ID, h.OwnerID, h.FirstName, h.LastName, h.Profession,
		h.City, h.Country, h.PhoneNumber, h.Email, h.CreatedAt, h.UpdatedAt,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert heading: %w", err)
	}
	return nil
}

func (r *postgresHeadingRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*resume.Heading, error) {
	query := `
		SELECT id, owner_id, first_name, last_name, profession, city, country, phone_number, email, created_at, updated_at
		FROM headings
		WHERE owner_id = $1
	`
	h := &resume.Heading{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&h.ID, &h.OwnerID, &h.FirstName, &h.LastName, &h.Profession,
		&h.City, &h.Country, &h.PhoneNumber, &h.Email, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrHeadingNotFound
		}
		return nil, fmt.Errorf("failed to query heading: %w", err)
	}
	return h, nil
}

func (r *postgresHeadingRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM headings WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete heading: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrHeadingNotFound
	}
	return nil
}

// Summary

type postgresSummaryRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSummaryRepo(db *pgxpool.Pool) resume.SummaryRepository {
	return &postgresSummaryRepo{db: db}
}

func (r *postgresSummaryRepo) Upsert(ctx context.Context, s *resume.Summary) error {
	query := `
		INSERT INTO summaries (id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, s.ID, s.OwnerID, s.Content, s.CreatedAt, s.UpdatedAt).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert summary: %w", err)
	}
	return nil
}

func (r *postgresSummaryRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*resume.Summary, error) {
	query := `
		SELECT id, owner_id, content, created_at, updated_at
		FROM summaries
		WHERE owner_id = $1
	`
	s := &resume.Summary{}
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&s.ID, &s.OwnerID, &s.Content, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	return s, nil
}

func (r *postgresSummaryRepo) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM summaries WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete summary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrSummaryNotFound
	}
	return nil
}

// Education

type postgresEducationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEducationRepo(db *pgxpool.Pool) resume.EducationRepository {
	return &postgresEducationRepo{db: db}
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *resume.Education) error {
	query := `
		INSERT INTO educations (id, owner_id, college_name, college_location, degree, field_of_study, grade, graduation_year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.CollegeName, e.CollegeLocation, e.Degree,
		e.FieldOfStudy, e.Grade, e.GraduationYear, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert education: %w", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *resume.Education) error {
	query := `
		UPDATE educations
		SET college_name = $3, college_location = $4, degree = $5, field_of_study = $6, grade = $7, graduation_year = $8, updated_at = $9
		WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.CollegeName, e.CollegeLocation, e.Degree,
		e.FieldOfStudy, e.Grade, e.GraduationYear, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrEducationNotFound
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrEducationNotFound
	}
	return nil
}

func (r *postgresEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Education, error) {
	query := `
		SELECT id, owner_id, college_name, college_location, degree, field_of_study, grade, graduation_year, created_at, updated_at
		FROM educations
		WHERE owner_id = $1
		ORDER BY graduation_year DESC, created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list educations: %w", err)
	}
	defer rows.Close()

	items := make([]*resume.Education, 0)
	for rows.Next() {
		e := &resume.Education{}
		err := rows.Scan(
			&e.ID, &e.OwnerID, &e.CollegeName, &e.CollegeLocation, &e.Degree,
			&e.FieldOfStudy, &e.Grade, &e.GraduationYear, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education row: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// Experience

type postgresExperienceRepo struct {
	db *pgxpool.Pool
}

func NewPostgresExperienceRepo(db *pgxpool.Pool) resume.ExperienceRepository {
	return &postgresExperienceRepo{db: db}
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *resume.Experience) error {
	query := `
		INSERT INTO experiences (id, owner_id, experience_type, company_name, company_location, title, start_date, end_date, currently_work, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.ExperienceType, e.CompanyName, e.CompanyLocation,
		e.Title, e.StartDate, e.EndDate, e.CurrentlyWork, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *resume.Experience) error {
	query := `
		UPDATE experiences
		SET experience_type = $3, company_name = $4, company_location = $5, title = $6, start_date = $7, end_date = $8, currently_work = $9, updated_at = $10
		WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.db.Exec(ctx, query,
		e.ID, e.OwnerID, e.ExperienceType, e.CompanyName, e.CompanyLocation,
		e.Title, e.StartDate, e.EndDate, e.CurrentlyWork, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrExperienceNotFound
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrExperienceNotFound
	}
	return nil
}

func (r *postgresExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Experience, error) {
	query := `
		SELECT id, owner_id, experience_type, company_name, company_location, title, start_date, end_date, currently_work, created_at, updated_at
		FROM experiences
		WHERE owner_id = $1
		ORDER BY start_date DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	items := make([]*resume.Experience, 0)
	for rows.Next() {
		e := &resume.Experience{}
		err := rows.Scan(
			&e.ID, &e.OwnerID, &e.ExperienceType, &e.CompanyName, &e.CompanyLocation,
			&e.Title, &e.StartDate, &e.EndDate, &e.CurrentlyWork, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience row: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// Skill

type postgresSkillRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSkillRepo(db *pgxpool.Pool) resume.SkillRepository {
	return &postgresSkillRepo{db: db}
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *resume.Skill) error {
	query := `
		INSERT INTO skills (id, owner_id, skill_name, skill_rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.OwnerID, s.Name, s.Rating, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert skill: %w", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *resume.Skill) error {
	query := `
		UPDATE skills
		SET skill_name = $3, skill_rating = $4, updated_at = $5
		WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.db.Exec(ctx, query, s.ID, s.OwnerID, s.Name, s.Rating, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrSkillNotFound
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrSkillNotFound
	}
	return nil
}

func (r *postgresSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Skill, error) {
	query := `
		SELECT id, owner_id, skill_name, skill_rating, created_at, updated_at
		FROM skills
		WHERE owner_id = $1
		ORDER BY skill_rating DESC, skill_name ASC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	items := make([]*resume.Skill, 0)
	for rows.Next() {
		s := &resume.Skill{}
		err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Rating, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
