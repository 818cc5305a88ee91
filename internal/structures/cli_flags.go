package structures

type CliFlags struct {
	ConfigPath  string
	DebugMode   bool
	Update      bool
	NumbersOnly bool
	Setup       bool
	Remove      string
	History     string
	ShowHistory bool
}
