package applicant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	id "github.com/online-dot/abroad-application-platform/pkg/domain"
	"github.com/online-dot/abroad-application-platform/pkg/platform/sentinel"
)

// PostgresStore reads applicants from the shared identity schema.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed applicant store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, applicantID id.ApplicantID) (*Applicant, error) {
	const query = `
		SELECT id, full_name, email, has_passport, created_at
		FROM applicants
		WHERE id = $1`

	var (
		a   Applicant
		uid uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(applicantID)).Scan(
		&uid, &a.FullName, &a.Email, &a.HasPassport, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find applicant: %w", err)
	}
	a.ID = id.ApplicantID(uid)
	return &a, nil
}
