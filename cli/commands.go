package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Analyze AnalyzeCmd `cmd:"" help:"Analyze a statement text file and print summary tables."`
	Export  ExportCmd  `cmd:"" help:"Analyze a statement and export the ledger as CSV."`
	Dump    DumpCmd    `cmd:"" help:"Dump the raw analyzed ledger for debugging."`
	Web     WebCmd     `cmd:"" help:"Start a web server over an analyzed statement."`
}
