package domain

// OutputFormat selects how resolution results are printed.
type OutputFormat uint8

const (
	// OutputText prints human readable results.
	OutputText OutputFormat = iota
	// OutputJSON prints results as a JSON array.
	OutputJSON
)

// PartResult is the resolution of one named project part.
type PartResult struct {
	Name       string
	Resolution Resolution
}
