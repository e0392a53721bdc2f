package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
	"github.com/online-dot/abroad-application-platform/pkg/platform/tx"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostgresStore persists applications in PostgreSQL. The applications table
// carries a UNIQUE constraint on application_number; two concurrent
// submissions racing on the same generated number are serialized there, and
// the loser surfaces as sentinel.ErrDuplicateNumber.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed application store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// q joins an ambient transaction when the caller carries one in ctx.
func (s *PostgresStore) q(ctx context.Context) querier {
	if txn, ok := tx.From(ctx); ok {
		return txn
	}
	return s.db
}

const applicationColumns = `id, applicant_id, application_number, occupation,
	experience_years, education, language, language_proficiency, status, created_at`

func (s *PostgresStore) Create(ctx context.Context, app *Application) error {
	const query = `
		INSERT INTO applications
			(id, applicant_id, application_number, occupation, experience_years,
			 education, language, language_proficiency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(app.ID),
		uuid.UUID(app.ApplicantID),
		app.Number.String(),
		app.Occupation,
		app.ExperienceYears,
		string(app.Education),
		string(app.Language),
		string(app.LanguageProficiency),
		string(app.Status),
		app.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "applications_application_number_key") {
			return sentinel.ErrDuplicateNumber
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByNumber(ctx context.Context, number id.ApplicationNumber) (*Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_number = $1`

	app, err := scanApplication(s.q(ctx).QueryRowContext(ctx, query, number.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by number: %w", err)
	}
	return app, nil
}

func (s *PostgresStore) ListByApplicant(ctx context.Context, applicantID id.ApplicantID) ([]*Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications
		WHERE applicant_id = $1
		ORDER BY created_at DESC`

	rows, err := s.q(ctx).QueryContext(ctx, query, uuid.UUID(applicantID))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []*Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*Application, error) {
	var (
		app         Application
		appID       uuid.UUID
		applicantID uuid.UUID
		number      string
		education   string
		language    string
		proficiency string
		status      string
	)
	err := row.Scan(
		&appID, &applicantID, &number, &app.Occupation, &app.ExperienceYears,
		&education, &language, &proficiency, &status, &app.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	app.ID = id.ApplicationID(appID)
	app.ApplicantID = id.ApplicantID(applicantID)
	app.Number = id.ApplicationNumber(number)
	app.Education = id.EducationLevel(education)
	app.Language = id.Language(language)
	app.LanguageProficiency = id.LanguageProficiency(proficiency)
	app.Status = id.ApplicationStatus(status)
	return &app, nil
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation on the named constraint (pq error class 23505).
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}
