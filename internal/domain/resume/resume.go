package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Heading is the single contact block of a user's resume.
type Heading struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Profession  string    `json:"profession"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Education struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	CollegeName     string    `json:"college_name"`
	CollegeLocation string    `json:"college_location"`
	Degree          string    `json:"degree"`
	FieldOfStudy    string    `json:"field_of_study"`
	Grade           string    `json:"grade"`
	GraduationYear  string    `json:"graduation_year"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Experience struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	ExperienceType  string     `json:"experience_type"`
	CompanyName     string     `json:"company_name"`
	CompanyLocation string     `json:"company_location"`
	Title           string     `json:"title"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	CurrentlyWork   bool       `json:"currently_work"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type Skill struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"skill_name"`
	Rating    int       `json:"skill_rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the single free-text profile blurb of a user's resume.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrHeadingNotFound    = errors.New("heading not found")
	ErrEducationNotFound  = errors.New("education record not found")
	ErrExperienceNotFound = errors.New("experience record not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrSummaryNotFound    = errors.New("summary not found")
	ErrInvalidRating      = errors.New("skill rating must be between 1 and 5")
)

func (h *Heading) Validate() error {
	if h.FirstName == "" || h.LastName == "" {
		return errors.New("first_name and last_name are required")
	}
	if h.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

func (e *Education) Validate() error {
	if e.CollegeName == "" {
		return errors.New("college_name is required")
	}
	if e.Degree == "" {
		return errors.New("degree is required")
	}
	return nil
}

func (e *Experience) Validate() error {
	if e.CompanyName == "" {
		return errors.New("company_name is required")
	}
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.StartDate.IsZero() {
		return errors.New("start_date is required")
	}
	return nil
}

func (s *Skill) Validate() error {
	if s.Name == "" {
		return errors.New("skill_name is required")
	}
	if s.Rating < 1 || s.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

func (s *Summary) Validate() error {
	if s.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// HeadingRepository and SummaryRepository are one-row-per-user upserts;
// the list sections get full CRUD by row id. Upsert refreshes the entity's
// id and timestamps with the stored row's values, which differ from the
// fresh ones when an existing row was updated.
type HeadingRepository interface {
	Upsert(ctx context.Context, h *Heading) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Heading, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type SummaryRepository interface {
	Upsert(ctx context.Context, s *Summary) error
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*Summary, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type EducationRepository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Education, error)
}

type ExperienceRepository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
}

type SkillRepository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
}
