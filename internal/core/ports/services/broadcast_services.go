package services

import "github.com/salespulse/sales_pulse_app/internal/core/domain"

// TransactionBroadcaster pushes server-originated events to all connected
// subscribers. Delivery is fire-and-forget: no acknowledgment is awaited and
// a failed delivery is never retried, so publishers must not depend on it.
type TransactionBroadcaster interface {
	// BroadcastNewTransaction pushes a newly created transaction to all subscribers.
	BroadcastNewTransaction(txn domain.Transaction)

	// BroadcastAnalyticsUpdate pushes refreshed analytics to all subscribers.
	BroadcastAnalyticsUpdate(analytics domain.Analytics)
}
