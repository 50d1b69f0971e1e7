package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/settings"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	DB *gorm.DB
}

var _ settings.Repository = (*SettingsRepository)(nil)

type settingsDB struct {
	UserId            string          `gorm:"type:varchar(26);primaryKey;column:user_id"`
	InitialBalance    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;column:initial_balance"`
	Payday1           int             `gorm:"not null;default:15;column:payday1"`
	Payday2           int             `gorm:"not null;default:30;column:payday2"`
	NotificationEmail string          `gorm:"type:varchar(255);column:notification_email"`
	AlertsEnabled     bool            `gorm:"not null;default:false;column:alerts_enabled"`
	CreatedAt         time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt         time.Time       `gorm:"not null;column:updated_at"`
}

func (settingsDB) TableName() string {
	return "user_settings"
}

func toDomainSettings(sdb *settingsDB) (*settings.Settings, error) {
	userID, err := pkg.ParseULID(sdb.UserId)
	if err != nil {
		return nil, err
	}
	return &settings.Settings{
		UserId:            userID,
		InitialBalance:    sdb.InitialBalance,
		Payday1:           sdb.Payday1,
		Payday2:           sdb.Payday2,
		NotificationEmail: sdb.NotificationEmail,
		AlertsEnabled:     sdb.AlertsEnabled,
		UpdatedAt:         sdb.UpdatedAt,
	}, nil
}

func toDBSettings(s *settings.Settings) *settingsDB {
	return &settingsDB{
		UserId:            s.UserId.String(),
		InitialBalance:    s.InitialBalance,
		Payday1:           s.Payday1,
		Payday2:           s.Payday2,
		NotificationEmail: s.NotificationEmail,
		AlertsEnabled:     s.AlertsEnabled,
		CreatedAt:         s.UpdatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (r *SettingsRepository) Get(ctx context.Context, userID ulid.ULID) (*settings.Settings, error) {
	return getSettings(r.DB.WithContext(ctx), userID)
}

func getSettings(db *gorm.DB, userID ulid.ULID) (*settings.Settings, error) {
	var sdb settingsDB
	err := db.Table("user_settings").Where("user_id = ?", userID.String()).First(&sdb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomainSettings(&sdb)
}

// Save inserts the row or overwrites every mutable column.
func (r *SettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	sdb := toDBSettings(s)
	return r.DB.WithContext(ctx).Table("user_settings").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"initial_balance", "payday1", "payday2", "notification_email", "alerts_enabled", "updated_at",
			}),
		}).
		Create(sdb).Error
}

func (r *SettingsRepository) ListAlertRecipients(ctx context.Context) ([]*settings.Settings, error) {
	var rows []settingsDB
	err := r.DB.WithContext(ctx).Table("user_settings").
		Where("alerts_enabled = ? AND notification_email <> ''", true).
		Order("user_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*settings.Settings, 0, len(rows))
	for i := range rows {
		s, err := toDomainSettings(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
