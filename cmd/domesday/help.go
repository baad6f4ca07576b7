package main

import "fmt"

const version = "1.0.0"

// PrintVersion prints version information
func PrintVersion() {
	fmt.Printf("domesday version %s\n", version)
	fmt.Println("PASE Domesday landholders CSV loader")
	fmt.Println("https://github.com/benwebber/domesday")
}

// PrintHelp prints comprehensive help information
func PrintHelp() {
	fmt.Println("Domesday - load the PASE Domesday landholders extract into SQLite")
	fmt.Printf("Version: %s\n\n", version)

	fmt.Println("USAGE:")
	fmt.Println("  domesday [options] [csv] [database]")
	fmt.Println()
	fmt.Println("  csv        Input CSV file; '-' or omitted reads standard input.")
	fmt.Println("             .gz and .zst inputs are decompressed transparently.")
	fmt.Println("  database   SQLite database file (default: domesday.db)")
	fmt.Println()

	fmt.Println("COMMANDS:")
	fmt.Println("    --export <file>            Export the table as an XLSX analysis frame after loading")
	fmt.Println("    --no-load                  Skip loading; export from the existing database")
	fmt.Println()

	fmt.Println("OPTIONS:")
	fmt.Println("    --config <file>            YAML configuration file")
	fmt.Println("    --format <name>            Export format (default: xlsx)")
	fmt.Println("    --strict                   Fail the load on unparseable decimal values")
	fmt.Println("    --audit-file <file>        Append JSON audit entries to this file")
	fmt.Println("    --quiet                    Log errors only")
	fmt.Println("    --version                  Show version information")
	fmt.Println("    --help                     Show this help")
	fmt.Println()

	fmt.Println("EXAMPLES:")
	fmt.Println("  domesday landholders.csv domesday.db")
	fmt.Println("  curl -s $PASE_URL | domesday - domesday.db")
	fmt.Println("  domesday --export holdings.xlsx landholders.csv.gz domesday.db")
	fmt.Println("  domesday --no-load --export holdings.xlsx - domesday.db")
}
