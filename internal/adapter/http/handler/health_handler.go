package handler

import (
	"context"
	"net/http"
	"time"

	"bank-ledger/internal/adapter/http/dto"
	"bank-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// healthProbeTimeout bounds each dependency probe.
const healthProbeTimeout = 2 * time.Second

// HealthCheck handles GET /health. Any failing dependency turns the
// service "degraded" with 503; the in-memory ledger itself has no probe.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := dto.HealthResponse{
			Status:       "healthy",
			Dependencies: make(map[string]dto.DependencyHealth, len(checkers)),
		}

		for _, checker := range checkers {
			resp.Dependencies[checker.Name()] = probe(c.Request.Context(), checker)
		}

		code := http.StatusOK
		for _, dep := range resp.Dependencies {
			if dep.Status != "healthy" {
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				break
			}
		}
		c.JSON(code, resp)
	}
}

func probe(ctx context.Context, checker ports.HealthChecker) dto.DependencyHealth {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if err := checker.Ping(ctx); err != nil {
		return dto.DependencyHealth{Status: "unhealthy", Error: err.Error()}
	}
	return dto.DependencyHealth{Status: "healthy"}
}
