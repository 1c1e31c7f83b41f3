package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Compile-time interface verification.
var _ seoaudit.AuditStore = (*AuditService)(nil)

// AuditService implements seoaudit.AuditStore using SQLite.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// SaveAudit stores a completed audit and assigns its ID. Score and
// grade are denormalized from the result so history listings don't
// have to decode the full result JSON.
func (s *AuditService) SaveAudit(ctx context.Context, record *seoaudit.AuditRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.Score = record.Result.OverallScore
	record.Grade = record.Result.Grade

	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("failed to encode audit result: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO audits (id, url, content_hash, score, grade, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, record.URL, record.ContentHash, record.Score, record.Grade,
		string(result), record.CreatedAt.Format(time.RFC3339))

	return err
}

// FindAuditByID retrieves a stored audit by ID.
func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*seoaudit.AuditRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, content_hash, score, grade, result, created_at
		FROM audits
		WHERE id = ?
	`, id)

	record, err := scanAudit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, seoaudit.Errorf(seoaudit.ENOTFOUND, "audit not found")
	}
	if err != nil {
		return nil, err
	}

	return record, nil
}

// FindAudits retrieves stored audits matching the filter, newest first.
func (s *AuditService) FindAudits(ctx context.Context, filter seoaudit.AuditFilter) ([]*seoaudit.AuditRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, score, grade, result, created_at FROM audits WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*seoaudit.AuditRecord
	for rows.Next() {
		record, err := scanAudit(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteAudit permanently removes a stored audit.
func (s *AuditService) DeleteAudit(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM audits WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return seoaudit.Errorf(seoaudit.ENOTFOUND, "audit not found")
	}

	return nil
}

// scanAudit reads one audits row using the given scan function.
func scanAudit(scan func(dest ...any) error) (*seoaudit.AuditRecord, error) {
	var record seoaudit.AuditRecord
	var result, createdAt string

	if err := scan(&record.ID, &record.URL, &record.ContentHash, &record.Score,
		&record.Grade, &result, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(result), &record.Result); err != nil {
		return nil, fmt.Errorf("failed to decode audit result: %w", err)
	}

	var parseErr error
	record.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
	}

	return &record, nil
}

// ContentHash fingerprints page HTML for change detection.
func ContentHash(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}
