package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"bank-ledger/internal/core/domain"
	"bank-ledger/internal/core/ports"
	"bank-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxResourceID lets a handler name the resource it created, for routes
// that carry no id in the path.
const CtxResourceID = "resource_id"

type auditRoute struct {
	action       domain.AuditAction
	resourceType string
	param        string // route parameter holding the resource id
}

var auditRoutes = map[string]auditRoute{
	"POST /api/v1/auth/login":                {domain.AuditActionLogin, "session", ""},
	"POST /api/v1/accounts":                  {domain.AuditActionOpenAccount, "account", ""},
	"POST /api/v1/accounts/:number/deposit":  {domain.AuditActionDeposit, "account", "number"},
	"POST /api/v1/accounts/:number/withdraw": {domain.AuditActionWithdraw, "account", "number"},
	"POST /api/v1/loans":                     {domain.AuditActionOriginateLoan, "loan", ""},
	"POST /api/v1/loans/:id/payments":        {domain.AuditActionLoanPayment, "loan", "id"},
	"POST /api/v1/loans/:id/close":           {domain.AuditActionCloseLoan, "loan", "id"},
}

// AuditLog creates an audit middleware that records successful writes,
// matched by route template. Idempotent replays are not recorded again.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		if c.Writer.Header().Get(HeaderIdempotencyReplay) != "" {
			return
		}

		route, ok := mapRouteToAction(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		resourceID := c.GetString(CtxResourceID)
		if route.param != "" {
			resourceID = c.Param(route.param)
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(response.CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Operator:     Operator(c),
			Action:       route.action,
			ResourceType: route.resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now().UTC(),
		})
	}
}

func mapRouteToAction(method, fullPath string) (auditRoute, bool) {
	route, ok := auditRoutes[method+" "+fullPath]
	return route, ok
}
