package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hrahman/profilio/internal/domain/resume"
	"github.com/hrahman/profilio/pkg/apperror"
	"github.com/hrahman/profilio/pkg/logger"
)

// ResumeUseCase covers all five resume sections. Heading and summary are
// one-per-user upserts, the rest are per-row CRUD.
type ResumeUseCase struct {
	headingRepo    resume.HeadingRepository
	summaryRepo    resume.SummaryRepository
	educationRepo  resume.EducationRepository
	experienceRepo resume.ExperienceRepository
	skillRepo      resume.SkillRepository
	logger         logger.Logger
}

func NewResumeUseCase(
	hRepo resume.HeadingRepository,
	suRepo resume.SummaryRepository,
	edRepo resume.EducationRepository,
	exRepo resume.ExperienceRepository,
	skRepo resume.SkillRepository,
	log logger.Logger,
) *ResumeUseCase {
	return &ResumeUseCase{
		headingRepo:    hRepo,
		summaryRepo:    suRepo,
		educationRepo:  edRepo,
		experienceRepo: exRepo,
		skillRepo:      skRepo,
		logger:         log,
	}
}

// Heading

type HeadingInput struct {
	OwnerID     uuid.UUID
	FirstName   string
	LastName    string
	Profession  string
	City        string
	Country     string
	PhoneNumber string
	Email       string
}

func (uc *ResumeUseCase) UpsertHeading(ctx context.Context, in HeadingInput) (*resume.Heading, error) {
	now := time.Now().UTC()
	h := &resume.Heading{
		ID:          uuid.New(),
		OwnerID:     in.OwnerID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Profession:  in.Profession,
		City:        in.City,
		Country:     in.Country,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("heading validation failed", err)
	}
	if err := uc.headingRepo.Upsert(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (uc *ResumeUseCase) GetHeading(ctx context.Context, ownerID uuid.UUID) (*resume.Heading, error) {
	return uc.headingRepo.GetByOwner(ctx, ownerID)
}

func (uc *ResumeUseCase) DeleteHeading(ctx context.Context, ownerID uuid.UUID) error {
	return uc.headingRepo.DeleteByOwner(ctx, ownerID)
}

// Summary

func (uc *ResumeUseCase) UpsertSummary(ctx context.Context, ownerID uuid.UUID, content string) (*resume.Summary, error) {
	now := time.Now().UTC()
	s := &resume.Summary{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("summary validation failed", err)
	}
	if err := uc.summaryRepo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ResumeUseCase) GetSummary(ctx context.Context, ownerID uuid.UUID) (*resume.Summary, error) {
	return uc.summaryRepo.GetByOwner(ctx, ownerID)
}

func (uc *ResumeUseCase) DeleteSummary(ctx context.Context, ownerID uuid.UUID) error {
	return uc.summaryRepo.DeleteByOwner(ctx, ownerID)
}

// Education

type EducationInput struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	CollegeName     string
	CollegeLocation string
	Degree          string
	FieldOfStudy    string
	Grade           string
	GraduationYear  string
}

func (uc *ResumeUseCase) CreateEducation(ctx context.Context, in EducationInput) (*resume.Education, error) {
	now := time.Now().UTC()
	e := &resume.Education{
		ID:              uuid.New(),
		OwnerID:         in.OwnerID,
		CollegeName:     in.CollegeName,
		CollegeLocation: in.CollegeLocation,
		Degree:          in.Degree,
		FieldOfStudy:    in.FieldOfStudy,
		Grade:           in.Grade,
		GraduationYear:  in.GraduationYear,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.educationRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ResumeUseCase) UpdateEducation(ctx context.Context, in EducationInput) (*resume.Education, error) {
	e := &resume.Education{
		ID:              in.ID,
		OwnerID:         in.OwnerID,
		CollegeName:     in.CollegeName,
		CollegeLocation: in.CollegeLocation,
		Degree:          in.Degree,
		FieldOfStudy:    in.FieldOfStudy,
		Grade:           in.Grade,
		GraduationYear:  in.GraduationYear,
		UpdatedAt:       time.Now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("education validation failed", err)
	}
	if err := uc.educationRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ResumeUseCase) DeleteEducation(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.educationRepo.Delete(ctx, id, ownerID)
}

func (uc *ResumeUseCase) ListEducations(ctx context.Context, ownerID uuid.UUID) ([]*resume.Education, error) {
	return uc.educationRepo.ListByOwner(ctx, ownerID)
}

// Experience

type ExperienceInput struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	ExperienceType  string
	CompanyName     string
	CompanyLocation string
	Title           string
	StartDate       time.Time
	EndDate         *time.Time
	CurrentlyWork   bool
}

func (uc *ResumeUseCase) CreateExperience(ctx context.Context, in ExperienceInput) (*resume.Experience, error) {
	now := time.Now().UTC()
	e := &resume.Experience{
		ID:              uuid.New(),
		OwnerID:         in.OwnerID,
		ExperienceType:  in.ExperienceType,
		CompanyName:     in.CompanyName,
		CompanyLocation: in.CompanyLocation,
		Title:           in.Title,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		CurrentlyWork:   in.CurrentlyWork,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.experienceRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ResumeUseCase) UpdateExperience(ctx context.Context, in ExperienceInput) (*resume.Experience, error) {
	e := &resume.Experience{
		ID:              in.ID,
		OwnerID:         in.OwnerID,
		ExperienceType:  in.ExperienceType,
		CompanyName:     in.CompanyName,
		CompanyLocation: in.CompanyLocation,
		Title:           in.Title,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		CurrentlyWork:   in.CurrentlyWork,
		UpdatedAt:       time.Now().UTC(),
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("experience validation failed", err)
	}
	if err := uc.experienceRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ResumeUseCase) DeleteExperience(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.experienceRepo.Delete(ctx, id, ownerID)
}

func (uc *ResumeUseCase) ListExperiences(ctx context.Context, ownerID uuid.UUID) ([]*resume.Experience, error) {
	return uc.experienceRepo.ListByOwner(ctx, ownerID)
}

// Skill

type SkillInput struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Rating  int
}

func (uc *ResumeUseCase) CreateSkill(ctx context.Context, in SkillInput) (*resume.Skill, error) {
	now := time.Now().UTC()
	s := &resume.Skill{
		ID:        uuid.New(),
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Rating:    in.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.skillRepo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ResumeUseCase) UpdateSkill(ctx context.Context, in SkillInput) (*resume.Skill, error) {
	s := &resume.Skill{
		ID:        in.ID,
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Rating:    in.Rating,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("skill validation failed", err)
	}
	if err := uc.skillRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ResumeUseCase) DeleteSkill(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.skillRepo.Delete(ctx, id, ownerID)
}

func (uc *ResumeUseCase) ListSkills(ctx context.Context, ownerID uuid.UUID) ([]*resume.Skill, error) {
	return uc.skillRepo.ListByOwner(ctx, ownerID)
}
