package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/hrahman/profilio/internal/domain/resume"
	"github.com/hrahman/profilio/internal/domain/user"
)

type ResumeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	headingRepo resume.HeadingRepository
	summaryRepo resume.SummaryRepository
	testOwner   *user.User
}

func (s *ResumeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.headingRepo = NewPostgresHeadingRepo(s.dbPool)
	s.summaryRepo = NewPostgresSummaryRepo(s.dbPool)

	s.testOwner = &user.User{
		ID:           uuid.New(),
		Name:         "Test Owner",
		Email:        "resumeowner@example.com",
		PasswordHash: "hashedpassword",
	}
	query := `INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4)`
	_, err = s.dbPool.Exec(ctx, query, s.testOwner.ID, s.testOwner.Name, s.testOwner.Email, s.testOwner.PasswordHash)
	if err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *ResumeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestResumeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ResumeRepoIntegrationTestSuite))
}

func (s *ResumeRepoIntegrationTestSuite) Test_Heading_Upsert_KeepsStoredIdentity() {
	ctx := context.Background()
	now := time.Now().UTC()

	first := &resume.Heading{
		ID:          uuid.New(),
		OwnerID:     s.testOwner.ID,
		FirstName:   "Alex",
		LastName:    "Nguyen",
		Profession:  "Engineer",
		City:        "Hanoi",
		Country:     "Vietnam",
		PhoneNumber: "+84 123456789",
		Email:       "alex@example.com",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.NoError(s.headingRepo.Upsert(ctx, first))

	second := &resume.Heading{
		ID:          uuid.New(),
		OwnerID:     s.testOwner.ID,
		FirstName:   "Alex",
		LastName:    "Nguyen",
		Profession:  "Staff Engineer",
		City:        "Hanoi",
		Country:     "Vietnam",
		PhoneNumber: "+84 123456789",
		Email:       "alex@example.com",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	s.NoError(s.headingRepo.Upsert(ctx, second))

	// conflict path updates the existing row and hands back its identity
	s.Equal(first.ID, second.ID)
	s.WithinDuration(first.CreatedAt, second.CreatedAt, time.Second)

	stored, err := s.headingRepo.GetByOwner(ctx, s.testOwner.ID)
	s.NoError(err)
	s.Equal(first.ID, stored.ID)
	s.Equal("Staff Engineer", stored.Profession)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Summary_Upsert_KeepsStoredIdentity() {
	ctx := context.Background()
	now := time.Now().UTC()

	first := &resume.Summary{
		ID:        uuid.New(),
		OwnerID:   s.testOwner.ID,
		Content:   "Backend engineer.",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.NoError(s.summaryRepo.Upsert(ctx, first))

	second := &resume.Summary{
		ID:        uuid.New(),
		OwnerID:   s.testOwner.ID,
		Content:   "Backend engineer with ten years of Go.",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	s.NoError(s.summaryRepo.Upsert(ctx, second))

	s.Equal(first.ID, second.ID)

	stored, err := s.summaryRepo.GetByOwner(ctx, s.testOwner.ID)
	s.NoError(err)
	s.Equal(first.ID, stored.ID)
	s.Equal("Backend engineer with ten years of Go.", stored.Content)
}
