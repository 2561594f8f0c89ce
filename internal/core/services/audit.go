package services

import (
	"time"

	"github.com/alisyos/daily-report-sub000/internal/core/domain"
)

// stampAudit fills audit fields for a freshly created entity.
func stampAudit(p *domain.Principal) domain.AuditFields {
	now := time.Now()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     p.UserID,
		LastUpdatedAt: now,
		LastUpdatedBy: p.UserID,
	}
}

// touchAudit marks an entity as updated by the principal.
func touchAudit(a *domain.AuditFields, p *domain.Principal) {
	a.LastUpdatedAt = time.Now()
	a.LastUpdatedBy = p.UserID
}
