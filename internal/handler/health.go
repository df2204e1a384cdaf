package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Check reports the status of the service and its backing stores.
// Degraded dependencies are reported per-component; the endpoint itself
// always answers 200 so load balancers can distinguish "up but degraded"
// from "down".
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		dbStatus = "unavailable"
	}

	cacheStatus := "ok"
	if h.rdb == nil {
		cacheStatus = "disabled"
	} else if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
		cacheStatus = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
