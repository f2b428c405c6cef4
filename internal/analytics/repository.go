package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Repository interface {
	CountTicketsByStatus(ctx context.Context, eventID uuid.UUID) (map[string]int64, error)
	CountPendingRefunds(ctx context.Context, eventID uuid.UUID) (int64, error)
	SumRefundedAmount(ctx context.Context, eventID uuid.UUID) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountTicketsByStatus(ctx context.Context, eventID uuid.UUID) (map[string]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("status, COUNT(*) as count").
		Where("event_id = ?", eventID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *repository) CountPendingRefunds(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("refunds").
		Joins("JOIN tickets ON tickets.id = refunds.ticket_id").
		Where("tickets.event_id = ? AND refunds.status IN ?", eventID, []string{"PENDING", "PROCESSING"}).
		Count(&count).Error
	return count, err
}

func (r *repository) SumRefundedAmount(ctx context.Context, eventID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Table("refunds").
		Joins("JOIN tickets ON tickets.id = refunds.ticket_id").
		Where("tickets.event_id = ? AND refunds.status = ?", eventID, "COMPLETED").
		Select("SUM(refunds.amount)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
