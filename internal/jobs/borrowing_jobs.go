package jobs

import (
	"context"
	"fmt"
	"time"

	"library-service-backend/internal/logger"
)

// SendOverdueReminders notifies about active borrowings that are due within
// the next two days or already overdue. Sends one message per borrowing, or a
// single all-clear message when there are none.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		deadline := time.Now().AddDate(0, 0, 2)
		query := `
			SELECT bo.id, bo.user_id, bo.expected_return_date, b.title
			FROM borrowings bo
			JOIN books b ON b.id = bo.book_id
			WHERE bo.is_active = TRUE
			  AND bo.expected_return_date < $1
			ORDER BY bo.expected_return_date
		`

		rows, err := jr.db.QueryContext(ctx, query, deadline)
		if err != nil {
			logger.Error("Failed to query overdue borrowings", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id             int32
				userID         int32
				expectedReturn time.Time
				title          string
			)
			if err := rows.Scan(&id, &userID, &expectedReturn, &title); err != nil {
				logger.Error("Failed to scan overdue borrowing", "error", err)
				continue
			}
			jr.notifier.Notify(fmt.Sprintf(
				"Title: %s, expected return date: %s, Customer: %d",
				title, expectedReturn.Format("2006-01-02"), userID,
			))
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue borrowings", "error", err)
			return
		}

		if count == 0 {
			jr.notifier.Notify("No borrowings overdue today!")
		}
		logger.Info("Overdue reminders sent", "count", count)
	})
}
