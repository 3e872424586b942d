package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lebonmeeple/internal/entities"
	"lebonmeeple/pkg/types"
)

func TestGetGamesUsesCacheOnSecondCall(t *testing.T) {
	gameRepo := newFakeGameRepo()
	gameRepo.games[1] = &entities.Game{ID: 1, Name: "Catan"}
	cache := newFakeCache()
	svc := NewGameService(gameRepo, cache, zap.NewNop())

	filter := types.Filter{Page: 1, Limit: 10}

	first, err := svc.GetGames(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, first.Games, 1)
	require.Equal(t, 1, gameRepo.getCalls)

	second, err := svc.GetGames(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, gameRepo.getCalls, "la deuxième page identique doit sortir du cache")
	assert.Equal(t, first.Games, second.Games)
	assert.Equal(t, first.Total, second.Total)
}

func TestGetGamesWithSearchBypassesCache(t *testing.T) {
	gameRepo := newFakeGameRepo()
	gameRepo.games[1] = &entities.Game{ID: 1, Name: "Catan"}
	cache := newFakeCache()
	svc := NewGameService(gameRepo, cache, zap.NewNop())

	filter := types.Filter{Page: 1, Limit: 10, Search: "catan"}

	_, err := svc.GetGames(context.Background(), filter)
	require.NoError(t, err)
	_, err = svc.GetGames(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, 2, gameRepo.getCalls, "une recherche ne doit jamais passer par le cache")
	assert.Empty(t, cache.values)
}

func TestFindGame(t *testing.T) {
	gameRepo := newFakeGameRepo()
	gameRepo.games[3] = &entities.Game{
		ID:        3,
		Name:      "Wingspan",
		Mechanics: []string{"moteur de cartes"},
	}
	svc := NewGameService(gameRepo, newFakeCache(), zap.NewNop())

	game, err := svc.FindGame(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Wingspan", game.Name)
	assert.Equal(t, []string{"moteur de cartes"}, game.Mechanics)
}
