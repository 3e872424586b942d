package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
	apperrors "lebonmeeple/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	userTable  = "users"
	userFields = "id, username, email, password, avatar, roles, created_at, updated_at"
)

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, payload dto.SignupDTO, hashedPassword string) (*entities.User, error)
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, hashedPassword *string) (*entities.User, error)
}

type userRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &userRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Avatar, &u.Roles, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("échec du scan de user: %w", err)
	}
	return &u, nil
}

func (r *userRepository) CreateUser(ctx context.Context, payload dto.SignupDTO, hashedPassword string) (*entities.User, error) {
	var avatar *string
	if payload.Avatar != "" {
		avatar = &payload.Avatar
	}

	query := fmt.Sprintf(`INSERT INTO %s (username, email, password, avatar) VALUES ($1, $2, $3, $4) RETURNING %s`,
		userTable, userFields)

	user, err := scanUser(r.storage.QueryRow(ctx, query, payload.Username, payload.Email, hashedPassword, avatar))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("Un compte existe déjà avec cette adresse e-mail")
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = $1", userFields, userTable)
	return scanUser(r.storage.QueryRow(ctx, query, email))
}

func (r *userRepository) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO, hashedPassword *string) (*entities.User, error) {
	var setClauses []string
	var args []interface{}
	argId := 1

	if payload.Username.Valid {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", argId))
		args = append(args, payload.Username.String)
		argId++
	}
	if payload.Email.Valid {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argId))
		args = append(args, payload.Email.String)
		argId++
	}
	if hashedPassword != nil {
		setClauses = append(setClauses, fmt.Sprintf("password = $%d", argId))
		args = append(args, *hashedPassword)
		argId++
	}
	if payload.Avatar.Valid {
		setClauses = append(setClauses, fmt.Sprintf("avatar = $%d", argId))
		args = append(args, payload.Avatar.String)
		argId++
	}
	if len(setClauses) == 0 {
		return r.FindUserByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		userTable, strings.Join(setClauses, ", "), argId, userFields)
	args = append(args, id)

	user, err := scanUser(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.NewConflictError("Un compte existe déjà avec cette adresse e-mail")
		}
		return nil, err
	}
	return user, nil
}
