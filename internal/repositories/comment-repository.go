package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
	apperrors "lebonmeeple/pkg/errors"
)

const commentTable = "comments"

type CommentRepositoryInterface interface {
	GetCommentsByPost(ctx context.Context, postID uint64) ([]entities.Comment, error)
	FindComment(ctx context.Context, id uint64) (*entities.Comment, error)
	CreateComment(ctx context.Context, userID, postID uint64, payload dto.CreateCommentDTO) (*entities.Comment, error)
	UpdateComment(ctx context.Context, id uint64, payload dto.UpdateCommentDTO) (*entities.Comment, error)
	DeleteComment(ctx context.Context, id uint64) (*entities.Comment, error)
}

type commentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewCommentRepository(storage *pgxpool.Pool, logger *zap.Logger) CommentRepositoryInterface {
	return &commentRepository{storage: storage, logger: logger}
}

func scanCommentWithAuthor(row pgx.Row) (*entities.Comment, error) {
	var c entities.Comment
	var author entities.User

	err := row.Scan(
		&c.ID, &c.Body, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt,
		&author.ID, &author.Username, &author.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("échec du scan de comment: %w", err)
	}

	c.Author = &author
	return &c, nil
}

func (r *commentRepository) selectComments() sq.SelectBuilder {
	return psql.
		Select("c.id", "c.body", "c.user_id", "c.post_id", "c.created_at", "c.updated_at",
			"u.id", "u.username", "u.avatar").
		From(commentTable + " c").
		Join("users u ON u.id = c.user_id")
}

func (r *commentRepository) GetCommentsByPost(ctx context.Context, postID uint64) ([]entities.Comment, error) {
	query, args, err := r.selectComments().
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		comment, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) FindComment(ctx context.Context, id uint64) (*entities.Comment, error) {
	query, args, err := r.selectComments().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanCommentWithAuthor(r.storage.QueryRow(ctx, query, args...))
}

func (r *commentRepository) CreateComment(ctx context.Context, userID, postID uint64, payload dto.CreateCommentDTO) (*entities.Comment, error) {
	var commentID uint64
	query := fmt.Sprintf(`INSERT INTO %s (body, user_id, post_id) VALUES ($1, $2, $3) RETURNING id`, commentTable)
	if err := r.storage.QueryRow(ctx, query, payload.Body, userID, postID).Scan(&commentID); err != nil {
		return nil, err
	}
	return r.FindComment(ctx, commentID)
}

func (r *commentRepository) UpdateComment(ctx context.Context, id uint64, payload dto.UpdateCommentDTO) (*entities.Comment, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Body.Valid {
		setClauses = append(setClauses, fmt.Sprintf("body = $%d", argId))
		args = append(args, payload.Body.String)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindComment(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		commentTable, strings.Join(setClauses, ", "), argId)
	args = append(args, id)

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.FindComment(ctx, id)
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uint64) (*entities.Comment, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING id, body, user_id, post_id, created_at, updated_at", commentTable)

	var c entities.Comment
	err := r.storage.QueryRow(ctx, query, id).Scan(&c.ID, &c.Body, &c.UserID, &c.PostID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
