package db

import (
	"fmt"

	"gorm.io/gorm"
)

// The entity tables are owned by the property, tenant, payment and
// maintenance services; this service only adds the indexes its scoped
// selects depend on.
var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_properties_owner ON properties (owner_id);`,
	`CREATE INDEX IF NOT EXISTS idx_tenants_property ON tenants (property_id, status);`,
	`CREATE INDEX IF NOT EXISTS idx_tenants_user ON tenants (user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_property ON payments (property_id, payment_status);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_paid_date ON payments (paid_date) WHERE paid_date IS NOT NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_property ON maintenance_requests (property_id, status);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_created ON maintenance_requests (created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_announcements_property ON announcements (property_id, created_at);`,
	`CREATE INDEX IF NOT EXISTS idx_community_posts_property ON community_posts (property_id, created_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
