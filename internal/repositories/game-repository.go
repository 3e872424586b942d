package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lebonmeeple/internal/entities"
	"lebonmeeple/internal/infrastructure/bd"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/types"
)

const (
	gameTable  = "games"
	gameFields = "id, name, year, rating, mechanics, description, image, players_min, players_max, duration, difficulty, created_at, updated_at"
)

var gameMap = map[string]string{
	"id":         "id",
	"name":       "name",
	"year":       "year",
	"rating":     "rating",
	"difficulty": "difficulty",
}

type GameRepositoryInterface interface {
	GetGames(ctx context.Context, filter types.Filter) ([]entities.Game, uint64, error)
	FindGame(ctx context.Context, id uint64) (*entities.Game, error)
	GetGamesByPost(ctx context.Context, postID uint64) ([]entities.Game, error)
}

type gameRepository struct {
	storage *pgxpool.Pool
}

func NewGameRepository(storage *pgxpool.Pool) GameRepositoryInterface {
	return &gameRepository{storage: storage}
}

func scanGame(row pgx.Row) (*entities.Game, error) {
	var g entities.Game
	err := row.Scan(&g.ID, &g.Name, &g.Year, &g.Rating, &g.Mechanics, &g.Description, &g.Image,
		&g.PlayersMin, &g.PlayersMax, &g.Duration, &g.Difficulty, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("échec du scan de game: %w", err)
	}
	return &g, nil
}

func (r *gameRepository) GetGames(ctx context.Context, filter types.Filter) ([]entities.Game, uint64, error) {
	countBuilder := psql.Select("COUNT(*)").From(gameTable)
	listBuilder := psql.Select(gameFields).From(gameTable)

	if filter.Search != "" {
		like := sq.ILike{"name": "%" + filter.Search + "%"}
		countBuilder = countBuilder.Where(like)
		listBuilder = listBuilder.Where(like)
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
		return []entities.Game{}, 0, nil
	}

	if len(filter.Sort) == 0 {
		listBuilder = listBuilder.OrderBy("name ASC")
	}
	listBuilder = bd.ApplyListParams(listBuilder, filter, gameMap)

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	games := make([]entities.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, 0, err
		}
		games = append(games, *game)
	}
	return games, total, rows.Err()
}

func (r *gameRepository) FindGame(ctx context.Context, id uint64) (*entities.Game, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", gameFields, gameTable)
	return scanGame(r.storage.QueryRow(ctx, query, id))
}

func (r *gameRepository) GetGamesByPost(ctx context.Context, postID uint64) ([]entities.Game, error) {
	query := fmt.Sprintf(`SELECT g.id, g.name, g.year, g.rating, g.mechanics, g.description, g.image,
		g.players_min, g.players_max, g.duration, g.difficulty, g.created_at, g.updated_at
		FROM %s g
		JOIN post_games pg ON pg.game_id = g.id
		WHERE pg.post_id = $1
		ORDER BY g.name`, gameTable)

	rows, err := r.storage.Query(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]entities.Game, 0)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}
