package usecase

import (
	"errors"
	"fmt"

	"traffic-exchange/internal/core/port"
)

// storeError wraps err for op. Business rejections pass through unchanged;
// anything else means the unit of work did not commit and is reported as
// port.ErrTransactionFailure.
func storeError(op string, err error) error {
	if port.IsRejection(err) || errors.Is(err, port.ErrTransactionFailure) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, port.ErrTransactionFailure, err)
}
