package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/audit"
	dbaudit "github.com/mrlokans/library/internal/database/audit"
	"github.com/mrlokans/library/internal/entities"
)

const (
	defaultAuditLimit = 25
	maxAuditLimit     = 100
)

type AuditController struct {
	auditService *audit.Service
}

func NewAuditController(auditService *audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// GetAuditEvents returns paginated audit events as JSON
// GET /audit?type=borrow&entity_type=book&entity_id=1&limit=25&offset=0
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, ok := parseQueryInt(c, "limit", defaultAuditLimit)
	if !ok {
		return
	}
	if limit < 1 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}
	offset, ok := parseQueryInt(c, "offset", 0)
	if !ok {
		return
	}

	filter := dbaudit.EventFilter{
		EntityType: c.Query("entity_type"),
		Limit:      limit,
		Offset:     offset,
	}

	if eventType := c.Query("type"); eventType != "" {
		if !isKnownEventType(eventType) {
			respondBadRequest(c, "unknown event type "+eventType)
			return
		}
		filter.EventType = entities.AuditEventType(eventType)
	}

	if c.Query("entity_id") != "" {
		id, ok := parseQueryID(c, "entity_id")
		if !ok {
			return
		}
		filter.EntityID = id
	}

	events, total, err := ac.auditService.ListEvents(filter)
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}
	if events == nil {
		events = []entities.AuditEvent{}
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    events,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+len(events)) < total,
	})
}

func isKnownEventType(value string) bool {
	for _, t := range entities.AllAuditEventTypes {
		if string(t) == value {
			return true
		}
	}
	return false
}
