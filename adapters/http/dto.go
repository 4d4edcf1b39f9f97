package http

import (
	"time"

	"github.com/hrahman/profilio/internal/domain/blog"
	"github.com/hrahman/profilio/internal/domain/calendar"
	"github.com/hrahman/profilio/internal/domain/resume"
)

const apiTimeLayout = "2006-01-02 15:04:05"

// Auth DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// Resume DTOs

type HeadingRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Profession  string `json:"profession" binding:"required"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

type SummaryRequest struct {
	Content string `json:"content" binding:"required"`
}

type EducationRequest struct {
	CollegeName     string `json:"college_name" binding:"required"`
	CollegeLocation string `json:"college_location" binding:"required"`
	Degree          string `json:"degree" binding:"required"`
	FieldOfStudy    string `json:"field_of_study" binding:"required"`
	Grade           string `json:"grade" binding:"required"`
	GraduationYear  string `json:"graduation_year" binding:"required"`
}

type ExperienceRequest struct {
	ExperienceType  string     `json:"experience_type" binding:"required"`
	CompanyName     string     `json:"company_name" binding:"required"`
	CompanyLocation string     `json:"company_location" binding:"required"`
	Title           string     `json:"title" binding:"required"`
	StartDate       time.Time  `json:"start_date" binding:"required"`
	EndDate         *time.Time `json:"end_date"`
	CurrentlyWork   bool       `json:"currently_work"`
}

type SkillRequest struct {
	Name   string `json:"skill_name" binding:"required"`
	Rating int    `json:"skill_rating" binding:"required,min=1,max=5"`
}

// Calendar DTOs. Start/end times travel as 'YYYY-MM-DD HH:MM:SS' strings,
// interpreted as UTC.

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func ToEventDTO(e *calendar.Event) EventDTO {
	return EventDTO{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime.UTC().Format(apiTimeLayout),
		EndTime:     e.EndTime.UTC().Format(apiTimeLayout),
	}
}

func ToEventDTOs(events []*calendar.Event) []EventDTO {
	dtos := make([]EventDTO, len(events))
	for i, e := range events {
		dtos[i] = ToEventDTO(e)
	}
	return dtos
}

// Blog DTOs

type BlogPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type BlogPostDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	DatePosted time.Time `json:"date_posted"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToBlogPostDTO(p *blog.Post) BlogPostDTO {
	return BlogPostDTO{
		ID:         p.ID.String(),
		Title:      p.Title,
		Content:    p.Content,
		DatePosted: p.DatePosted,
		UpdatedAt:  p.UpdatedAt,
	}
}

// Resume response DTOs reuse the domain JSON tags directly; only list
// wrappers are declared here.

type EducationListResponse struct {
	Educations []*resume.Education `json:"educations"`
}

type ExperienceListResponse struct {
	Experiences []*resume.Experience `json:"experiences"`
}

type SkillListResponse struct {
	Skills []*resume.Skill `json:"skills"`
}
