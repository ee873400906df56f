package ports

import (
	"io"

	"go.trai.ch/depcache/internal/core/domain"
)

// ResultPrinter writes resolution results.
//
//go:generate go run go.uber.org/mock/mockgen -source=printer.go -destination=mocks/mock_printer.go -package=mocks
type ResultPrinter interface {
	// Print writes results to w in the given format, in slice order.
	Print(w io.Writer, results []domain.PartResult, format domain.OutputFormat) error
}
