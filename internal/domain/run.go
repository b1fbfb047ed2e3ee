package domain

// RunMeta summarizes a single aggregation run. It is printed after a
// run and optionally recorded in the history store; the output JSON
// file itself stays a bare path->count mapping.
type RunMeta struct {
	InputPath       string
	OutputPath      string
	TotalRecords    int
	TotalPaths      int
	TotalCases      int
	ZeroCaseRecords int // records counted via the floor correction
	DurationSeconds float64
	Timestamp       string
}
