package application

import (
	"errors"
	"fmt"

	"github.com/Mr-dragon5/invoice-dashboard/internal/domains/invoices/ports"
)

// ErrPersistence signals the invoice store rejected or failed a write.
var ErrPersistence = errors.New("invoice persistence failed")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
