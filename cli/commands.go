package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Verbose bool `help:"Show extra detail while running."`
}

// Commands is the root command set of the beanline binary.
type Commands struct {
	Globals

	Parse  ParseCmd  `cmd:"" help:"Read directives from stdin and print their parse tree and canonical form."`
	Check  CheckCmd  `cmd:"" help:"Parse a ledger file and report every malformed directive."`
	Format FormatCmd `cmd:"" help:"Rewrite a ledger file in canonical form."`
}
