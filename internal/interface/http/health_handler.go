package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler reports process and database status.
type HealthHandler struct {
	Pool    *pgxpool.Pool
	Env     string
	started time.Time
}

func NewHealthHandler(pool *pgxpool.Pool, env string) *HealthHandler {
	return &HealthHandler{Pool: pool, Env: env, started: time.Now()}
}

// Check GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	database := "disconnected"
	if h.Pool != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Pool.Ping(ctx); err == nil {
			database = "connected"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(h.started).Seconds(),
		"environment": h.Env,
		"database":    database,
	})
}
