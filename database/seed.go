package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// SeedData seeds the demo tenant, reference data, identity, catalog and
// settings defaults. Every seeder keys on natural unique columns with
// FirstOrCreate, so re-running the whole seed is a no-op.
func SeedData(db *gorm.DB) error {
	log.Println("Starting seed process...")

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(fmt.Sprintf("SET search_path TO %s", schemaName)).Error; err != nil {
			return fmt.Errorf("failed to set search path: %w", err)
		}

		if err := seedCountries(tx); err != nil {
			return fmt.Errorf("failed to seed countries: %w", err)
		}
		if err := seedRegions(tx); err != nil {
			return fmt.Errorf("failed to seed regions: %w", err)
		}
		if err := seedBanks(tx); err != nil {
			return fmt.Errorf("failed to seed banks: %w", err)
		}

		if err := seedRolesAndPermissions(tx); err != nil {
			return fmt.Errorf("failed to seed roles and permissions: %w", err)
		}

		tenantID, err := seedDemoTenant(tx)
		if err != nil {
			return fmt.Errorf("failed to seed demo tenant: %w", err)
		}

		if err := seedAdminUser(tx, tenantID); err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		if err := seedTenantSettings(tx, tenantID); err != nil {
			return fmt.Errorf("failed to seed tenant settings: %w", err)
		}
		if err := seedSystemSettings(tx); err != nil {
			return fmt.Errorf("failed to seed system settings: %w", err)
		}
		if err := seedServiceURLs(tx, tenantID); err != nil {
			return fmt.Errorf("failed to seed service urls: %w", err)
		}

		if err := seedCatalog(tx, tenantID); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		if err := seedCoupons(tx, tenantID); err != nil {
			return fmt.Errorf("failed to seed coupons: %w", err)
		}

		log.Println("Seed process completed successfully")
		return nil
	})
}
