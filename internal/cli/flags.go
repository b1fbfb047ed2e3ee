package cli

import "wpts/internal/config"

// Flags holds command-line flags
type Flags struct {
	Input    string
	Output   string
	Pattern  string
	History  bool
	OpenView bool
	Limit    int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Input:    f.Input,
		Output:   f.Output,
		Pattern:  f.Pattern,
		History:  f.History,
		OpenView: f.OpenView,
		Limit:    f.Limit,
	}
}
