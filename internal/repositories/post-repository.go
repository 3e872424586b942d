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
	"lebonmeeple/internal/infrastructure/bd"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/types"
)

const postTable = "posts"

// carte unique des champs exposés au tri/filtrage
var postMap = map[string]string{
	"id":         "p.id",
	"title":      "p.title",
	"user_id":    "p.user_id",
	"created_at": "p.created_at",
	"updated_at": "p.updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type PostRepositoryInterface interface {
	GetPosts(ctx context.Context, filter types.Filter) ([]entities.Post, uint64, error)
	FindPost(ctx context.Context, id uint64) (*entities.Post, error)
	CreatePost(ctx context.Context, userID uint64, payload dto.CreatePostDTO) (*entities.Post, error)
	UpdatePost(ctx context.Context, id uint64, payload dto.UpdatePostDTO) (*entities.Post, error)
	DeletePost(ctx context.Context, id uint64) (*entities.Post, error)
}

type postRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewPostRepository(storage *pgxpool.Pool, logger *zap.Logger) PostRepositoryInterface {
	return &postRepository{storage: storage, logger: logger}
}

func scanPostWithAuthor(row pgx.Row) (*entities.Post, error) {
	var p entities.Post
	var author entities.User

	err := row.Scan(
		&p.ID, &p.Title, &p.Body, &p.Image, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
		&author.ID, &author.Username, &author.Avatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("échec du scan de post: %w", err)
	}

	p.Author = &author
	return &p, nil
}

func (r *postRepository) selectPosts() sq.SelectBuilder {
	return psql.
		Select("p.id", "p.title", "p.body", "p.image", "p.user_id", "p.created_at", "p.updated_at",
			"u.id", "u.username", "u.avatar").
		From(postTable + " p").
		Join("users u ON u.id = p.user_id")
}

func (r *postRepository) GetPosts(ctx context.Context, filter types.Filter) ([]entities.Post, uint64, error) {
	countBuilder := psql.Select("COUNT(*)").From(postTable + " p")
	listBuilder := r.selectPosts()

	if filter.Search != "" {
		like := sq.Or{
			sq.ILike{"p.title": "%" + filter.Search + "%"},
			sq.ILike{"p.body": "%" + filter.Search + "%"},
		}
		countBuilder = countBuilder.Where(like)
		listBuilder = listBuilder.Where(like)
	}

	for jsonField, val := range filter.Filter {
		if dbCol, ok := postMap[jsonField]; ok {
			countBuilder = countBuilder.Where(sq.Eq{dbCol: val})
		}
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Post{}, 0, nil
	}

	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("p.created_at DESC")
	}
	listBuilder = bd.ApplyListParams(listBuilder, filter, postMap)

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := make([]entities.Post, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, *post)
	}
	return posts, total, rows.Err()
}

func (r *postRepository) FindPost(ctx context.Context, id uint64) (*entities.Post, error) {
	query, args, err := r.selectPosts().Where(sq.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanPostWithAuthor(r.storage.QueryRow(ctx, query, args...))
}

func (r *postRepository) CreatePost(ctx context.Context, userID uint64, payload dto.CreatePostDTO) (*entities.Post, error) {
	var postID uint64

	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`INSERT INTO %s (title, body, image, user_id) VALUES ($1, $2, $3, $4) RETURNING id`, postTable)
		if err := tx.QueryRow(ctx, query, payload.Title, payload.Body, payload.Image, userID).Scan(&postID); err != nil {
			return err
		}

		for _, gameID := range payload.GameIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO post_games (post_id, game_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				postID, gameID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindPost(ctx, postID)
}

func (r *postRepository) UpdatePost(ctx context.Context, id uint64, payload dto.UpdatePostDTO) (*entities.Post, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Title.Valid {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argId))
		args = append(args, payload.Title.String)
		argId++
	}
	if payload.Body.Valid {
		setClauses = append(setClauses, fmt.Sprintf("body = $%d", argId))
		args = append(args, payload.Body.String)
		argId++
	}
	if payload.Image.Valid {
		setClauses = append(setClauses, fmt.Sprintf("image = $%d", argId))
		args = append(args, payload.Image.String)
		argId++
	}

	err := WithTx(ctx, r.storage, func(tx pgx.Tx) error {
		if len(setClauses) > 0 {
			setClauses = append(setClauses, "updated_at = NOW()")
			query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
				postTable, strings.Join(setClauses, ", "), argId)
			args = append(args, id)

			result, err := tx.Exec(ctx, query, args...)
			if err != nil {
				return err
			}
			if result.RowsAffected() == 0 {
				return apperrors.ErrNotFound
			}
		}

		// nil = pas touché; liste vide = dissocier tous les jeux
		if payload.GameIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM post_games WHERE post_id = $1`, id); err != nil {
				return err
			}
			for _, gameID := range payload.GameIDs {
				if _, err := tx.Exec(ctx,
					`INSERT INTO post_games (post_id, game_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
					id, gameID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindPost(ctx, id)
}

func (r *postRepository) DeletePost(ctx context.Context, id uint64) (*entities.Post, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING id, title, body, image, user_id, created_at, updated_at", postTable)

	var p entities.Post
	err := r.storage.QueryRow(ctx, query, id).Scan(&p.ID, &p.Title, &p.Body, &p.Image, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
