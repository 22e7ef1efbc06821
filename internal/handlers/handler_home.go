package handlers

import (
	"net/http"

	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/SscSPs/shop_pos_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Returns the shop name and the signed in user.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router / [get]
func getHome(shopName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the " + shopName + " POS API v1", "user": userID})
	}
}

func registerHomeRoutes(group *gin.RouterGroup, cfg *config.Config) {
	group.GET("", getHome(cfg.ShopName))
}
