package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/silvergames/braingym/daily"
	"github.com/silvergames/braingym/utils"
)

// GamesController serves the static mini-game catalog.
type GamesController struct{}

// NewGamesController creates a GamesController.
func NewGamesController() *GamesController {
	return &GamesController{}
}

var gameTitles = map[daily.GameID]string{
	daily.GameColorMatch:  "Color Match",
	daily.GameArithmetic:  "Quick Arithmetic",
	daily.GameImageMemory: "Picture Memory",
	daily.GameAnimalSound: "Animal Sounds",
	daily.GameVocabulary:  "Word Recall",
}

// List returns the five-game catalog in canonical order.
func (g *GamesController) List(ctx *gin.Context) {
	items := make([]gin.H, 0, len(daily.Catalog))
	for _, id := range daily.Catalog {
		items = append(items, gin.H{
			"game_id": id,
			"title":   gameTitles[id],
		})
	}
	utils.Success(ctx, gin.H{"items": items})
}
