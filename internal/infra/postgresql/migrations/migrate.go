package migrations

import (
	"github.com/corpreg/furnishings-engine/internal/repository"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "000001_create_businesses",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&repository.BusinessModel{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.BusinessModel{})
			},
		},
		{
			ID: "000002_create_filings_and_addresses",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.FilingModel{}, &repository.AddressModel{}); err != nil {
					return err
				}
				indexes := []string{
					`CREATE INDEX IF NOT EXISTS idx_filings_business_type_status ON filings (business_id, filing_type, status)`,
					`CREATE INDEX IF NOT EXISTS idx_addresses_business_type ON addresses (business_id, address_type) WHERE business_id IS NOT NULL`,
				}
				for _, sql := range indexes {
					if err := tx.Exec(sql).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropTable(&repository.AddressModel{}); err != nil {
					return err
				}
				return tx.Migrator().DropTable(&repository.FilingModel{})
			},
		},
		{
			ID: "000003_create_batch_processing",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.BatchProcessingModel{}); err != nil {
					return err
				}
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_batch_processing_step_status ON batch_processing (step, status)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.BatchProcessingModel{})
			},
		},
		{
			ID: "000004_create_furnishings",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.FurnishingModel{}, &repository.FurnishingAddressModel{}); err != nil {
					return err
				}
				indexes := []string{
					`CREATE INDEX IF NOT EXISTS idx_furnishings_business_created ON furnishings (business_id, created_date)`,
					`CREATE INDEX IF NOT EXISTS idx_furnishings_queued_mail ON furnishings (furnishing_name) WHERE status = 'QUEUED' AND furnishing_type = 'MAIL'`,
					`CREATE INDEX IF NOT EXISTS idx_furnishing_addresses_furnishing_id ON furnishing_addresses (furnishing_id)`,
				}
				for _, sql := range indexes {
					if err := tx.Exec(sql).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropTable(&repository.FurnishingAddressModel{}); err != nil {
					return err
				}
				return tx.Migrator().DropTable(&repository.FurnishingModel{})
			},
		},
	})

	return m.Migrate()
}
