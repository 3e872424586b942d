package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostReportRow est une ligne de l'export des billets.
type PostReportRow struct {
	ID           uint64
	Title        string
	Author       string
	AuthorEmail  string
	CommentCount int
	CreatedAt    time.Time
}

type ReportRepositoryInterface interface {
	GetPostsReport(ctx context.Context) ([]PostReportRow, error)
}

type reportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{storage: storage}
}

func (r *reportRepository) GetPostsReport(ctx context.Context) ([]PostReportRow, error) {
	query := `SELECT p.id, p.title, u.username, u.email, COUNT(c.id), p.created_at
		FROM posts p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN comments c ON c.post_id = p.id
		GROUP BY p.id, u.username, u.email
		ORDER BY p.created_at DESC`

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]PostReportRow, 0)
	for rows.Next() {
		var row PostReportRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Author, &row.AuthorEmail, &row.CommentCount, &row.CreatedAt); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
