package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveGuide stores a generated guide PDF with its metadata and returns the
// new record ID. The checksum is computed here so callers cannot store a
// stale one.
func (db *DB) SaveGuide(ctx context.Context, plan, userName string, durationDays, pages int, pdf []byte) (uuid.UUID, error) {
	if len(pdf) == 0 {
		return uuid.Nil, fmt.Errorf("refusing to save empty guide PDF")
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO guides (plan, user_name, duration_days, pages, size_bytes, checksum, pdf)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		plan, userName, durationDays, pages, len(pdf), ChecksumPDF(pdf), pdf,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save guide: %w", err)
	}
	return id, nil
}

// GetGuide retrieves a guide record by ID. Returns nil when no record exists.
func (db *DB) GetGuide(ctx context.Context, id uuid.UUID) (*GuideRecord, error) {
	var rec GuideRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, plan, user_name, duration_days, pages, size_bytes, checksum, created_at
		 FROM guides WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Plan, &rec.UserName, &rec.DurationDays, &rec.Pages, &rec.SizeBytes, &rec.Checksum, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guide: %w", err)
	}
	return &rec, nil
}

// GetGuidePDF retrieves the stored PDF bytes for a guide. Returns nil when
// no record exists.
func (db *DB) GetGuidePDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var pdf []byte
	err := db.pool.QueryRow(ctx,
		`SELECT pdf FROM guides WHERE id = $1`,
		id,
	).Scan(&pdf)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guide PDF: %w", err)
	}
	return pdf, nil
}

// ListGuides returns the most recent guide records, newest first.
func (db *DB) ListGuides(ctx context.Context, limit int) ([]GuideRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, plan, user_name, duration_days, pages, size_bytes, checksum, created_at
		 FROM guides ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	defer rows.Close()

	var records []GuideRecord
	for rows.Next() {
		var rec GuideRecord
		if err := rows.Scan(&rec.ID, &rec.Plan, &rec.UserName, &rec.DurationDays, &rec.Pages, &rec.SizeBytes, &rec.Checksum, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan guide record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read guide records: %w", err)
	}
	return records, nil
}

// DeleteGuide removes a guide record. Returns true if a row was deleted.
func (db *DB) DeleteGuide(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM guides WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete guide: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ChecksumPDF returns the hex SHA-256 digest of the PDF bytes
func ChecksumPDF(pdf []byte) string {
	sum := sha256.Sum256(pdf)
	return hex.EncodeToString(sum[:])
}
