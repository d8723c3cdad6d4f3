package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool   `help:"Show timing telemetry for operations."`
	Debug     bool   `help:"Enable debug logging." env:"ZASTER_DEBUG"`
	LogFormat string `help:"Log output format (human, json)." enum:"human,json" default:"human" env:"ZASTER_LOG_FORMAT"`
}

type Commands struct {
	Globals

	Balance   BalanceCmd   `cmd:"" help:"Print total out, total in and balance of every account."`
	Statement StatementCmd `cmd:"" help:"Print the transactions of a single account."`
	Check     CheckCmd     `cmd:"" help:"Validate a ledger file without printing reports."`
	Doctor    DoctorCmd    `cmd:"" help:"Doctor utilities for debugging ledger files."`
}
