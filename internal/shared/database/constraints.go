package database

import (
	"fmt"

	"gorm.io/gorm"
)

// constraintStatements are the constraints and indexes GORM's
// auto-migration does not cover. Each statement must be idempotent:
// MigrateConstraints runs on every boot.
var constraintStatements = []struct {
	name string
	sql  string
}{
	{
		// A physical seat exists once per venue. ADD CONSTRAINT has no
		// IF NOT EXISTS form, so reruns are absorbed by the exception
		// handler instead.
		name: "unique_seat_per_venue",
		sql: `
			DO $$
			BEGIN
				ALTER TABLE seats
					ADD CONSTRAINT unique_seat_per_venue
					UNIQUE (venue_id, section_name, row_name, seat_number);
			EXCEPTION
				WHEN duplicate_object THEN NULL;
				WHEN duplicate_table THEN NULL;
			END $$;
		`,
	},
	{
		// A seat carries at most one non-terminal ticket per event.
		name: "idx_tickets_active_seat_event",
		sql: `
			CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_active_seat_event
			ON tickets (seat_id, event_id)
			WHERE status IN ('ACTIVE', 'USED');
		`,
	},
	{
		// Check-in looks tickets up by QR code.
		name: "idx_tickets_qr_code",
		sql: `
			CREATE UNIQUE INDEX IF NOT EXISTS idx_tickets_qr_code
			ON tickets (qr_code);
		`,
	},
	{
		name: "idx_tickets_event_id",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_tickets_event_id
			ON tickets (event_id);
		`,
	},
}

// MigrateConstraints applies the statements above in order.
func MigrateConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			return fmt.Errorf("apply %s: %w", stmt.name, err)
		}
	}
	return nil
}
