package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/logger"

	"gorm.io/gorm"
)

type migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

type schemaMigrationDB struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false;column:version"`
	Name      string    `gorm:"type:varchar(100);not null;column:name"`
	AppliedAt time.Time `gorm:"not null;column:applied_at"`
}

func (schemaMigrationDB) TableName() string {
	return "schema_migrations"
}

// migrations is append-only. Released steps are never edited or reordered.
var migrations = []migration{
	{
		Version: 1,
		Name:    "create_core_tables",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(
				&settingsDB{},
				&ledgerEntryDB{},
				&recurringIncomeDB{},
				&loanDB{},
				&creditCardDB{},
				&cardChargeDB{},
				&installmentPurchaseDB{},
			)
		},
	},
	{
		Version: 2,
		Name:    "create_simulation_records",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&simulationRecordDB{})
		},
	},
	{
		Version: 3,
		Name:    "index_simulation_records_by_date",
		Up: exec(
			`CREATE INDEX IF NOT EXISTS idx_simulation_records_user_simulated_at
			 ON simulation_records (user_id, simulated_at DESC)`,
		),
	},
	{
		Version: 4,
		Name:    "index_active_obligations",
		Up: exec(
			`CREATE INDEX IF NOT EXISTS idx_loans_user_active ON loans (user_id) WHERE is_active`,
			`CREATE INDEX IF NOT EXISTS idx_installment_purchases_user_active
			 ON installment_purchases (user_id) WHERE is_active AND periods_remaining > 0`,
			`CREATE INDEX IF NOT EXISTS idx_card_charges_user_active ON card_charges (user_id) WHERE is_active`,
		),
	},
	{
		Version: 5,
		Name:    "check_payday_anchors",
		Up: exec(
			`ALTER TABLE user_settings DROP CONSTRAINT IF EXISTS chk_user_settings_paydays`,
			`ALTER TABLE user_settings ADD CONSTRAINT chk_user_settings_paydays
			 CHECK (payday1 BETWEEN 1 AND 31 AND payday2 BETWEEN 1 AND 31 AND payday1 < payday2)`,
		),
	},
}

func exec(statements ...string) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		for _, stmt := range statements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	}
}

// Migrate applies every pending step in version order, each inside its own
// transaction together with its schema_migrations row. It returns how many
// steps were applied.
func Migrate(ctx context.Context, db *gorm.DB) (int, error) {
	logger.Info().Msg("Executando migrations...")

	db = db.WithContext(ctx)
	if err := db.AutoMigrate(&schemaMigrationDB{}); err != nil {
		logger.Error().Err(err).Msg("Erro ao criar tabela schema_migrations")
		return 0, err
	}

	var done []schemaMigrationDB
	if err := db.Find(&done).Error; err != nil {
		return 0, err
	}
	applied := make(map[int]bool, len(done))
	for _, m := range done {
		applied[m.Version] = true
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigrationDB{
				Version:   m.Version,
				Name:      m.Name,
				AppliedAt: time.Now(),
			}).Error
		})
		if err != nil {
			logger.Error().
				Err(err).
				Int("version", m.Version).
				Str("migration", m.Name).
				Msg("Erro ao aplicar migration")
			return count, err
		}

		logger.Info().Int("version", m.Version).Str("migration", m.Name).Msg("Migration aplicada")
		count++
	}

	logger.Info().Int("applied", count).Msg("Migrations executadas com sucesso!")
	return count, nil
}
