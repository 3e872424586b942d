package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/repositories"
	"lebonmeeple/pkg/types"

	"go.uber.org/zap"
)

const gamesCacheTTL = time.Minute * 5

type GameListDTO struct {
	Games      []dto.GameDTO `json:"games"`
	Total      uint64        `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

type GameServiceInterface interface {
	GetGames(ctx context.Context, filter types.Filter) (*GameListDTO, error)
	FindGame(ctx context.Context, id uint64) (*dto.GameDTO, error)
}

// GameService sert le catalogue, en lecture seule. La première page sans
// filtre est la requête la plus fréquente du front: elle passe par Redis.
type GameService struct {
	gameRepo  repositories.GameRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
}

func NewGameService(
	gameRepo repositories.GameRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) GameServiceInterface {
	return &GameService{
		gameRepo:  gameRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (s *GameService) GetGames(ctx context.Context, filter types.Filter) (*GameListDTO, error) {
	cacheable := s.cacheRepo != nil && filter.Search == "" &&
		len(filter.Filter) == 0 && len(filter.Sort) == 0
	cacheKey := fmt.Sprintf("games:page=%d:limit=%d", filter.Page, filter.Limit)

	if cacheable {
		if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
			var list GameListDTO
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return &list, nil
			}
		}
	}

	games, total, err := s.gameRepo.GetGames(ctx, filter)
	if err != nil {
		s.logger.Error("GetGames: échec de la lecture du catalogue", zap.Error(err))
		return nil, err
	}

	gameDTOs := make([]dto.GameDTO, 0, len(games))
	for i := range games {
		gameDTOs = append(gameDTOs, mapGameDTO(&games[i]))
	}

	totalPages := 0
	if filter.Limit > 0 {
		totalPages = int((total + uint64(filter.Limit) - 1) / uint64(filter.Limit))
	}

	list := &GameListDTO{
		Games:      gameDTOs,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}

	if cacheable {
		if encoded, err := json.Marshal(list); err == nil {
			if err := s.cacheRepo.Set(ctx, cacheKey, string(encoded), gamesCacheTTL); err != nil {
				s.logger.Warn("GetGames: échec d'écriture dans le cache", zap.Error(err))
			}
		}
	}

	return list, nil
}

func (s *GameService) FindGame(ctx context.Context, id uint64) (*dto.GameDTO, error) {
	game, err := s.gameRepo.FindGame(ctx, id)
	if err != nil {
		return nil, err
	}
	gameDTO := mapGameDTO(game)
	return &gameDTO, nil
}
