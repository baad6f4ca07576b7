package main

import "flag"

// Flags holds all command-line flags. The input CSV and the database file
// are positional: domesday [options] [csv] [database].
type Flags struct {
	// Commands
	Export *string // write an XLSX analysis frame to this path after loading
	NoLoad *bool   // skip the load; operate on an existing database

	// Options
	Config    *string
	Format    *string
	Strict    *bool
	AuditFile *string
	Quiet     *bool

	// Misc
	Version *bool
	Help    *bool
}

// ParseFlags defines and parses all command-line flags.
func ParseFlags() *Flags {
	f := &Flags{}

	// Commands
	f.Export = flag.String("export", "", "Export the loaded table as an analysis frame (output file path)")
	f.NoLoad = flag.Bool("no-load", false, "Skip loading; export from the existing database")

	// Options
	f.Config = flag.String("config", "", "Configuration file path (YAML)")
	f.Format = flag.String("format", "", "Export format (default: xlsx)")
	f.Strict = flag.Bool("strict", false, "Fail the load when a decimal field does not parse (default: keep raw text)")
	f.AuditFile = flag.String("audit-file", "", "Append JSON audit entries to this file")
	f.Quiet = flag.Bool("quiet", false, "Log errors only")

	// Misc
	f.Version = flag.Bool("version", false, "Show version information")
	f.Help = flag.Bool("help", false, "Show detailed help")

	flag.Parse()
	return f
}
