package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	From        string
	To          string
	OutputFile  string
	BatchFile   string
	History     int
	ListModels  bool

	// Provider flags
	Provider    string
	Model       string
	Temperature float64
	Timeout     int
	MaxTokens   int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		From:        "auto",
		Provider:    "openai",
		Temperature: 0.2,
		Timeout:     60,
		MaxTokens:   4096,
	}
}
