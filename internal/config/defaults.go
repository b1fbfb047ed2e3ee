package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultInputJSONFile is the default records input file name
	DefaultInputJSONFile = "bbb.json"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "out.json"
	// DefaultHistoryTable is the table run summaries are recorded in
	DefaultHistoryTable = "wpt_runs"
	// DefaultHistoryLimit is how many history rows are listed by default
	DefaultHistoryLimit = 20
)
