package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# agenda configuration file
# Values can be overridden by AGENDA_* environment variables or CLI flags

# Task files read when none are given on the command line.
# Empty means standard input. Extensions select the format:
# .json, .yaml/.yml, .hcl, anything else is task-line text.
files = ["todo.txt"]

# JSON Schema for .json/.yaml/.hcl task files (see: agenda schema)
# schema_file = "~/.agenda/tasks.schema.json"

# Override today's date (YYYY-MM-DD); empty uses the system date
today = ""

# Treat tasks past their own deadline as done (-d)
overdue_as_done = false

# Print priority, file and deadline with each task (-l)
long_format = false

# Task files read concurrently; 0 reads them all at once
max_workers = 0

# Logging: debug, info, warn, error / text, json, logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
