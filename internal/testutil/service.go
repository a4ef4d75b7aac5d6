package testutil

import (
	appgames "github.com/preston-bernstein/sports-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/sports-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/sports-catalog-service/internal/store"
)

// NewServiceWithGames builds a games service backed by an in-memory store whose provider
// answers every league and day with list.
func NewServiceWithGames(list domaingames.GameList) *appgames.Service {
	return appgames.NewService(store.NewMemoryStore(), GoodProvider{Games: list})
}
