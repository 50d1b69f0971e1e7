package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/simulation"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SimulationRepository struct {
	DB *gorm.DB
}

var _ simulation.RecordRepository = (*SimulationRepository)(nil)

type simulationRecordDB struct {
	Id              string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId          string          `gorm:"type:varchar(26);not null;column:user_id"`
	SimulatedAt     time.Time       `gorm:"not null;column:simulated_at"`
	Product         string          `gorm:"type:varchar(150);column:product"`
	Price           decimal.Decimal `gorm:"type:decimal(15,2);not null;column:price"`
	Term            int             `gorm:"not null;column:term"`
	MonthlyPayment  decimal.Decimal `gorm:"type:decimal(15,2);not null;column:monthly_payment"`
	Verdict         string          `gorm:"type:varchar(10);not null;column:verdict"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;column:starting_balance"`
	FinalBalance    decimal.Decimal `gorm:"type:decimal(15,2);not null;column:final_balance"`
	CriticalMonth   *string         `gorm:"type:varchar(7);column:critical_month"`
	MinimumBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null;column:minimum_balance"`
}

func (simulationRecordDB) TableName() string {
	return "simulation_records"
}

func toDomainSimulationRecord(sdb *simulationRecordDB) (*simulation.Record, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(sdb.UserId)
	if err != nil {
		return nil, err
	}

	return &simulation.Record{
		Id:              id,
		UserId:          userID,
		SimulatedAt:     sdb.SimulatedAt,
		Product:         sdb.Product,
		Price:           sdb.Price,
		Term:            sdb.Term,
		MonthlyPayment:  sdb.MonthlyPayment,
		Verdict:         simulation.Verdict(sdb.Verdict),
		StartingBalance: sdb.StartingBalance,
		FinalBalance:    sdb.FinalBalance,
		CriticalMonth:   sdb.CriticalMonth,
		MinimumBalance:  sdb.MinimumBalance,
	}, nil
}

func toDBSimulationRecord(rec *simulation.Record) *simulationRecordDB {
	return &simulationRecordDB{
		Id:              rec.Id.String(),
		UserId:          rec.UserId.String(),
		SimulatedAt:     rec.SimulatedAt,
		Product:         rec.Product,
		Price:           rec.Price,
		Term:            rec.Term,
		MonthlyPayment:  rec.MonthlyPayment,
		Verdict:         string(rec.Verdict),
		StartingBalance: rec.StartingBalance,
		FinalBalance:    rec.FinalBalance,
		CriticalMonth:   rec.CriticalMonth,
		MinimumBalance:  rec.MinimumBalance,
	}
}

// Create appends a record. Records are never updated.
func (r *SimulationRepository) Create(ctx context.Context, rec *simulation.Record) error {
	return r.DB.WithContext(ctx).Table("simulation_records").Create(toDBSimulationRecord(rec)).Error
}

func (r *SimulationRepository) GetByID(ctx context.Context, recordID, userID ulid.ULID) (*simulation.Record, error) {
	row, err := query.New[simulationRecordDB](r.DB, "simulation_records").
		Context(ctx).
		Where("id = ? AND user_id = ?", recordID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainSimulationRecord(row)
}

func (r *SimulationRepository) List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*simulation.Record], error) {
	q := query.New[simulationRecordDB](r.DB, "simulation_records").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("simulated_at DESC, id DESC")
	return query.Paginate(q, page, toDomainSimulationRecord)
}

func (r *SimulationRepository) Delete(ctx context.Context, recordID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", recordID.String(), userID.String()).Delete(&simulationRecordDB{}).Error
}
