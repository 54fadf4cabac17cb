// services/audit_service.go
package services

import (
	"log"

	"github.com/FullStack-Digital-CA/medicare/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// StartScheduler runs the catalog integrity audit every night at 3 AM.
func (s *AuditService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 3 * * *", s.RunCatalogAudit); err != nil {
		log.Printf("Failed to schedule catalog audit: %v", err)
		return
	}

	c.Start()
	log.Println("Catalog audit scheduler started")
}

// RunCatalogAudit reports services whose category no longer exists. Nothing
// validates categoryId at write time, so dangling references are possible;
// the audit logs them and never mutates data.
func (s *AuditService) RunCatalogAudit() {
	log.Println("Starting catalog integrity audit...")

	var orphans []models.Service
	err := s.db.
		Where("category_id NOT IN (?)", s.db.Model(&models.ServiceCategory{}).Select("id")).
		Find(&orphans).Error
	if err != nil {
		log.Printf("Catalog audit failed: %v", err)
		return
	}

	for _, service := range orphans {
		log.Printf("Orphaned service %d (%s) references missing category %d",
			service.ID, service.Name, service.CategoryID)
	}

	log.Printf("Catalog integrity audit completed: %d orphaned service(s)", len(orphans))
}
