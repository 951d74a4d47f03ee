// Package todo reads task declarations and turns them into agenda records.
//
// The source format is chosen by file extension.
//
// # Task lines
//
// Files ending in .todo or .txt, stdin, and anything unrecognised hold one
// task per line:
//
//	[TODO|DONE] name: [(A|B|C)] description [due:YYYY-MM-DD] [deps:a,b]
//
// Blank lines and lines starting with # are skipped. A line that starts with
// whitespace continues the previous task.
//
// # Structured files
//
// JSON (.json) and YAML (.yaml, .yml) files share one document shape:
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {"id": "parser", "title": "Write the parser", "priority": "A",
//	     "status": "todo", "due": "2024-03-01", "depends_on": ["data"]}
//	  ]
//	}
//
// HCL files (.hcl) declare one block per task; the variable today holds the
// run's date:
//
//	task "parser" {
//	  title      = "Write the parser"
//	  priority   = "A"
//	  due        = today
//	  depends_on = ["data"]
//	}
//
// # Validation
//
// Structured files are validated in one of two modes:
//
//  1. JSON Schema validation when a schema file is configured and readable
//     (draft 2020-12, see DefaultSchema).
//  2. Minimal structural checks otherwise.
//
// Malformed task lines are reported as ParseError values and skipped; they
// never reach the agenda.
package todo
