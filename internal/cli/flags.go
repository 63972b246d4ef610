package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	TargetLanguage string
	BatchFile      string
	ReportFile     string
	ListLanguages  bool
	ListModels     bool
	ArchiveHistory bool
	NoRemote       bool

	// Server flags
	Serve  bool
	Listen string

	// OpenAI flags
	OpenAIModel string

	LogLevel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TargetLanguage: "swahili",
		ReportFile:     "batch_report.csv",
		Listen:         ":8000",
		LogLevel:       "info",
	}
}
