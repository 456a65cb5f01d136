package service

import (
	"context"
	"fmt"
	"strings"
)

// CanonicalStatus normalizes a user-typed status to the tab-name form:
// first letter upper, rest lower ("ready" and "READY" both become "Ready").
// No transition ordering is enforced between statuses.
func CanonicalStatus(status string) string {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return status
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

// UpdateStatus asks the ledger to move every row of an order to the tab
// matching the new status and refresh its updated-at stamp. The ledger owns
// the actual move; this reports only success or failure.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (string, error) {
	canonical := CanonicalStatus(status)
	if err := s.ledger.UpdateOrderStatusAndMove(ctx, orderID, canonical); err != nil {
		return canonical, fmt.Errorf("update order %s: %w", orderID, err)
	}
	return canonical, nil
}
