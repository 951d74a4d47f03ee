package todo

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/nibzard/agenda-go/internal/utils"
)

// hclTaskFile is the top-level structure of an HCL task file.
type hclTaskFile struct {
	Tasks []*hclTask `hcl:"task,block"`
}

// hclTask is one `task "name" { ... }` block.
type hclTask struct {
	ID        string   `hcl:"id,label"`
	Title     string   `hcl:"title,optional"`
	Priority  string   `hcl:"priority,optional"`
	Status    string   `hcl:"status,optional"`
	Due       string   `hcl:"due,optional"`
	DependsOn []string `hcl:"depends_on,optional"`
}

// hclEvalContext exposes the run's date to task expressions as `today`,
// with dateadd for deadlines relative to it:
//
//	due = dateadd(today, 7)
func hclEvalContext(today int) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"today": cty.StringVal(utils.FormatDay(today)),
		},
		Functions: map[string]function.Function{
			"dateadd": dateAddFunc,
		},
	}
}

// dateAddFunc shifts a YYYY-MM-DD date by a whole number of days.
var dateAddFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "date", Type: cty.String},
		{Name: "days", Type: cty.Number},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		day, err := utils.ParseDay(args[0].AsString())
		if err != nil {
			return cty.UnknownVal(cty.String), function.NewArgError(0, err)
		}
		var days int
		if err := gocty.FromCtyValue(args[1], &days); err != nil {
			return cty.UnknownVal(cty.String), function.NewArgError(1, err)
		}
		return cty.StringVal(utils.FormatDay(day + days)), nil
	},
})

// LoadHCL reads and decodes an HCL task file from path. Expressions are
// evaluated with `today` bound to the given day.
func LoadHCL(path string, today int) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return ParseHCL(src, path, today)
}

// ParseHCL decodes HCL task blocks from src. filename is used in
// diagnostics only.
func ParseHCL(src []byte, filename string, today int) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse task file %s: %w", filename, diags)
	}

	var parsed hclTaskFile
	diags = gohcl.DecodeBody(hclFile.Body, hclEvalContext(today), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode task file %s: %w", filename, diags)
	}

	f := &File{SchemaVersion: 1, Tasks: make([]Task, 0, len(parsed.Tasks))}
	for _, t := range parsed.Tasks {
		status := Status(t.Status)
		if status == "" {
			status = StatusTodo
		}
		f.Tasks = append(f.Tasks, Task{
			ID:        t.ID,
			Title:     t.Title,
			Priority:  t.Priority,
			Status:    status,
			Due:       t.Due,
			DependsOn: t.DependsOn,
		})
	}
	return f, nil
}
