package jobs

import (
	"context"
	"time"

	"moto-rental-backend/internal/logger"
)

// ReportOverdueRentals logs every active rental whose expected end date has passed.
// Overdue rentals are not mutated; the late-day surcharge is settled at return time.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("report_overdue_rentals", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		rows, err := jr.db.QueryContext(ctx, `
			SELECT id, motorcycle_id, courier_id, expected_end_date
			FROM rentals
			WHERE end_date IS NULL AND expected_end_date < $1
			ORDER BY expected_end_date ASC`,
			time.Now().UTC())
		if err != nil {
			logger.Error("Failed to query overdue rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, motorcycleID, courierID string
			var expectedEnd time.Time
			if err := rows.Scan(&id, &motorcycleID, &courierID, &expectedEnd); err != nil {
				logger.Error("Failed to scan overdue rental", "error", err)
				return
			}
			count++
			logger.Warn("Rental overdue",
				"rental_id", id,
				"motorcycle_id", motorcycleID,
				"courier_id", courierID,
				"expected_end_date", expectedEnd.Format("2006-01-02"))
		}
		if err := rows.Err(); err != nil {
			logger.Error("Failed to iterate overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rental report complete", "overdue_count", count)
	})
}
