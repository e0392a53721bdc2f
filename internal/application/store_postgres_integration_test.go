//go:build integration

package application_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/online-dot/abroad-application-platform/internal/applicant"
	"github.com/online-dot/abroad-application-platform/internal/application"
	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
	"github.com/online-dot/abroad-application-platform/pkg/platform/tx"
	"github.com/online-dot/abroad-application-platform/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres       *containers.PostgresContainer
	store          *application.PostgresStore
	applicantStore *applicant.PostgresStore
	applicantID    id.ApplicantID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = application.NewPostgres(s.postgres.DB)
	s.applicantStore = applicant.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	// Truncate in dependency order
	err := s.postgres.TruncateTables(ctx, "applications", "applicants")
	s.Require().NoError(err)

	s.applicantID = s.seedApplicant("ada@example.com", true)
}

// seedApplicant inserts an applicant row directly; the portal itself never
// writes applicants.
func (s *PostgresStoreSuite) seedApplicant(email string, hasPassport bool) id.ApplicantID {
	applicantID := id.ApplicantID(uuid.New())
	_, err := s.postgres.DB.Exec(
		`INSERT INTO applicants (id, full_name, email, has_passport) VALUES ($1, $2, $3, $4)`,
		uuid.UUID(applicantID), "Ada Lovelace", email, hasPassport,
	)
	s.Require().NoError(err)
	return applicantID
}

func (s *PostgresStoreSuite) newApplication(number string) *application.Application {
	return &application.Application{
		ID:                  id.NewApplicationID(),
		ApplicantID:         s.applicantID,
		Number:              id.ApplicationNumber(number),
		Occupation:          "Welder",
		ExperienceYears:     5,
		Education:           id.EducationDiploma,
		Language:            id.LanguageEnglish,
		LanguageProficiency: id.ProficiencyAdvanced,
		Status:              id.StatusSubmitted,
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	app := s.newApplication("WA-20260102-ABC123")

	s.Require().NoError(s.store.Create(ctx, app))

	found, err := s.store.FindByNumber(ctx, app.Number)
	s.Require().NoError(err)
	s.Equal(app.ID, found.ID)
	s.Equal(app.ApplicantID, found.ApplicantID)
	s.Equal("Welder", found.Occupation)
	s.Equal(id.EducationDiploma, found.Education)
	s.Equal(id.StatusSubmitted, found.Status)
	s.WithinDuration(app.CreatedAt, found.CreatedAt, time.Millisecond)
}

func (s *PostgresStoreSuite) TestFindUnknownNumber() {
	_, err := s.store.FindByNumber(context.Background(), "WA-20260102-ZZZZZZ")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateNumber() {
	ctx := context.Background()
	first := s.newApplication("WA-20260102-ABC123")
	second := s.newApplication("WA-20260102-ABC123")

	s.Require().NoError(s.store.Create(ctx, first))

	err := s.store.Create(ctx, second)
	s.Require().ErrorIs(err, sentinel.ErrDuplicateNumber)
}

// TestConcurrentDuplicateNumber verifies the unique constraint arbitrates
// racing inserts of the same number: exactly one wins, the rest see the
// duplicate sentinel.
func (s *PostgresStoreSuite) TestConcurrentDuplicateNumber() {
	ctx := context.Background()
	const goroutines = 50

	var wg sync.WaitGroup
	var successCount, duplicateCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			app := s.newApplication("WA-20260102-RACE01")
			err := s.store.Create(ctx, app)
			if err == nil {
				successCount.Add(1)
			} else if errors.Is(err, sentinel.ErrDuplicateNumber) {
				duplicateCount.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successCount.Load(), "exactly one insert should win")
	s.Equal(int32(goroutines-1), duplicateCount.Load(), "all others should get the duplicate sentinel")
}

func (s *PostgresStoreSuite) TestListByApplicantNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	older := s.newApplication("WA-20260101-AAAAAA")
	older.CreatedAt = base.Add(-24 * time.Hour)
	newer := s.newApplication("WA-20260102-BBBBBB")
	newer.CreatedAt = base

	otherApplicant := s.seedApplicant("grace@example.com", true)
	other := s.newApplication("WA-20260102-CCCCCC")
	other.ApplicantID = otherApplicant

	s.Require().NoError(s.store.Create(ctx, older))
	s.Require().NoError(s.store.Create(ctx, newer))
	s.Require().NoError(s.store.Create(ctx, other))

	apps, err := s.store.ListByApplicant(ctx, s.applicantID)
	s.Require().NoError(err)
	s.Require().Len(apps, 2)
	s.Equal(newer.Number, apps[0].Number)
	s.Equal(older.Number, apps[1].Number)
}

// TestJoinsAmbientTransaction verifies a write inside a rolled-back
// transaction leaves no trace.
func (s *PostgresStoreSuite) TestJoinsAmbientTransaction() {
	ctx := context.Background()

	txn, err := s.postgres.DB.BeginTx(ctx, &sql.TxOptions{})
	s.Require().NoError(err)

	app := s.newApplication("WA-20260102-TXROLL")
	s.Require().NoError(s.store.Create(tx.WithTx(ctx, txn), app))
	s.Require().NoError(txn.Rollback())

	_, err = s.store.FindByNumber(ctx, app.Number)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestApplicantStore() {
	ctx := context.Background()

	s.Run("finds a seeded applicant", func() {
		found, err := s.applicantStore.FindByID(ctx, s.applicantID)
		s.Require().NoError(err)
		s.Equal("ada@example.com", found.Email)
		s.True(found.HasPassport)
	})

	s.Run("returns ErrNotFound for unknown applicant", func() {
		_, err := s.applicantStore.FindByID(ctx, id.ApplicantID(uuid.New()))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
