package cancellation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateRefund(ctx context.Context, refund *Refund) error
	GetRefundByTicketID(ctx context.Context, ticketID uuid.UUID) (*Refund, error)
	GetPendingRefunds(ctx context.Context, limit int) ([]Refund, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, processedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, note string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateRefund(ctx context.Context, refund *Refund) error {
	return r.db.WithContext(ctx).Create(refund).Error
}

func (r *repository) GetRefundByTicketID(ctx context.Context, ticketID uuid.UUID) (*Refund, error) {
	var refund Refund
	if err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&refund).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}

func (r *repository) GetPendingRefunds(ctx context.Context, limit int) ([]Refund, error) {
	var refunds []Refund
	err := r.db.WithContext(ctx).
		Where("status = ?", RefundPending).
		Order("requested_at ASC").
		Limit(limit).
		Find(&refunds).Error
	return refunds, err
}

func (r *repository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Refund{}).
		Where("id = ? AND status = ?", id, RefundPending).
		Update("status", RefundProcessing).Error
}

func (r *repository) MarkCompleted(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Refund{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       RefundCompleted,
			"processed_at": processedAt,
		}).Error
}

func (r *repository) MarkFailed(ctx context.Context, id uuid.UUID, note string) error {
	return r.db.WithContext(ctx).
		Model(&Refund{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       RefundFailed,
			"failure_note": note,
		}).Error
}
