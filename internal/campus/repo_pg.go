package campus

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// ListProblems returns a college's problems, optionally filtered by
// category.
func (r *PGRepo) ListProblems(ctx context.Context, collegeID, category string) ([]Problem, error) {
	const query = `
SELECT id, college_id, title, description, category, severity, status, reported_by, reported_date, upvotes, anonymous, created_at, updated_at
FROM campus_problems
WHERE college_id = $1 AND ($2 = '' OR $2 = 'all' OR category = $2)
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, collegeID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Problem
	for rows.Next() {
		var p Problem
		var description, severity, reportedBy, reportedDate sql.NullString
		if err := rows.Scan(
			&p.ID, &p.CollegeID, &p.Title, &description, &p.Category,
			&severity, &p.Status, &reportedBy, &reportedDate,
			&p.Upvotes, &p.Anonymous, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Description = description.String
		p.Severity = severity.String
		p.ReportedBy = reportedBy.String
		p.ReportedDate = reportedDate.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// CreateProblem inserts a new problem.
func (r *PGRepo) CreateProblem(ctx context.Context, p Problem) error {
	const query = `
INSERT INTO campus_problems (id, college_id, title, description, category, severity, status, reported_by, reported_date, upvotes, anonymous, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.CollegeID, p.Title, p.Description, p.Category,
		p.Severity, p.Status, p.ReportedBy, p.ReportedDate,
		p.Upvotes, p.Anonymous, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// UpdateProblem replaces an existing problem.
func (r *PGRepo) UpdateProblem(ctx context.Context, p Problem) error {
	const query = `
UPDATE campus_problems
SET title = $3, description = $4, category = $5, severity = $6, status = $7,
    reported_by = $8, reported_date = $9, upvotes = $10, anonymous = $11, updated_at = $12
WHERE id = $1 AND college_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		p.ID, p.CollegeID, p.Title, p.Description, p.Category,
		p.Severity, p.Status, p.ReportedBy, p.ReportedDate,
		p.Upvotes, p.Anonymous, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProblem removes a problem. Deleting an absent id is a no-op.
func (r *PGRepo) DeleteProblem(ctx context.Context, collegeID, problemID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM campus_problems WHERE id = $1 AND college_id = $2`,
		problemID, collegeID,
	)
	return err
}

// ListWisdom returns a college's wisdom tips, optionally filtered by
// category.
func (r *PGRepo) ListWisdom(ctx context.Context, collegeID, category string) ([]WisdomTip, error) {
	const query = `
SELECT id, college_id, title, content, category, author, tip_date, upvotes, helpful, created_at
FROM campus_wisdom
WHERE college_id = $1 AND ($2 = '' OR $2 = 'all' OR category = $2)
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, collegeID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WisdomTip
	for rows.Next() {
		var w WisdomTip
		var content, author, date sql.NullString
		if err := rows.Scan(
			&w.ID, &w.CollegeID, &w.Title, &content, &w.Category,
			&author, &date, &w.Upvotes, &w.Helpful, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		w.Content = content.String
		w.Author = author.String
		w.Date = date.String
		out = append(out, w)
	}
	return out, rows.Err()
}

// CreateWisdom inserts a new wisdom tip.
func (r *PGRepo) CreateWisdom(ctx context.Context, w WisdomTip) error {
	const query = `
INSERT INTO campus_wisdom (id, college_id, title, content, category, author, tip_date, upvotes, helpful, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		w.ID, w.CollegeID, w.Title, w.Content, w.Category,
		w.Author, w.Date, w.Upvotes, w.Helpful, w.CreatedAt,
	)
	return err
}

// ListAlerts returns a college's alerts.
func (r *PGRepo) ListAlerts(ctx context.Context, collegeID string) ([]Alert, error) {
	const query = `
SELECT id, college_id, title, description, severity, category, predicted_date, created_by, confidence, created_at
FROM campus_alerts
WHERE college_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Alert
	for rows.Next() {
		var a Alert
		var description, severity, category, predictedDate, createdBy sql.NullString
		if err := rows.Scan(
			&a.ID, &a.CollegeID, &a.Title, &description, &severity,
			&category, &predictedDate, &createdBy, &a.Confidence, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		a.Description = description.String
		a.Severity = severity.String
		a.Category = category.String
		a.PredictedDate = predictedDate.String
		a.CreatedBy = createdBy.String
		out = append(out, a)
	}
	return out, rows.Err()
}

// CreateAlert inserts a new alert.
func (r *PGRepo) CreateAlert(ctx context.Context, a Alert) error {
	const query = `
INSERT INTO campus_alerts (id, college_id, title, description, severity, category, predicted_date, created_by, confidence, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.CollegeID, a.Title, a.Description, a.Severity,
		a.Category, a.PredictedDate, a.CreatedBy, a.Confidence, a.CreatedAt,
	)
	return err
}
