package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/agenda-go/internal/agenda"
	"github.com/nibzard/agenda-go/internal/utils"
)

// ValidationError locates a problem inside a task document.
type ValidationError struct {
	Path string // dotted path such as tasks[2].due
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath names a JSON Schema file. Empty, missing or broken schemas
	// fall back to the built-in structural checks with a warning.
	SchemaPath string
}

// ValidationResult collects every problem found in one document.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool
}

func (r *ValidationResult) fail(path string, err error) {
	r.Valid = false
	r.Errors = append(r.Errors, &ValidationError{Path: path, Err: err})
}

var errMissingField = errors.New("missing required field")

// Validate checks f against the configured schema, or against the built-in
// rules when no usable schema is available.
func (f *File) Validate(opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if opts.SchemaPath == "" {
		f.checkStructure(result)
		return result
	}

	schema, err := compileSchema(opts.SchemaPath)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error(), "JSON Schema validation not available, using minimal checks")
		f.checkStructure(result)
		return result
	}
	result.UsedSchema = true
	f.checkSchema(schema, result)
	return result
}

// CompileSchema loads and compiles the JSON Schema at path without
// validating anything against it.
func CompileSchema(path string) error {
	_, err := compileSchema(path)
	return err
}

func compileSchema(path string) (*jsonschema.Schema, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid schema path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("schema file not found: %s", abs)
		}
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(abs)
	if err != nil {
		return nil, fmt.Errorf("invalid schema file: %w", err)
	}
	return schema, nil
}

// checkSchema validates the JSON form of f, so YAML and HCL documents are
// held to the same schema as JSON ones.
func (f *File) checkSchema(schema *jsonschema.Schema, result *ValidationResult) {
	raw, err := json.Marshal(f)
	if err != nil {
		result.fail("", fmt.Errorf("encode task file for validation: %w", err))
		return
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		result.fail("", fmt.Errorf("decode task file for validation: %w", err))
		return
	}

	err = schema.Validate(doc)
	var ve *jsonschema.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &ve):
		for _, leaf := range schemaLeaves(ve) {
			result.fail(utils.JSONPointerToPath(leaf.InstanceLocation), errors.New(leaf.Message))
		}
	default:
		result.Valid = false
		result.Errors = append(result.Errors, err)
	}
}

// schemaLeaves flattens a validation error tree to the errors that carry
// the actual failed keyword.
func schemaLeaves(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*jsonschema.ValidationError{ve}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range ve.Causes {
		leaves = append(leaves, schemaLeaves(cause)...)
	}
	return leaves
}

// checkStructure applies the built-in rules. At most one error is reported
// per task.
func (f *File) checkStructure(result *ValidationResult) {
	if f.SchemaVersion != 1 {
		result.fail("schema_version", fmt.Errorf("expected 1, got %d", f.SchemaVersion))
	}
	if f.Tasks == nil {
		result.fail("tasks", errMissingField)
		return
	}
	for i := range f.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		if field, err := checkTask(&f.Tasks[i]); err != nil {
			result.fail(path+field, err)
		}
	}
}

// checkTask returns the suffix of the offending field and its error.
func checkTask(task *Task) (string, error) {
	switch {
	case task.ID == "":
		return ".id", errMissingField
	case hasSpace(task.ID):
		return ".id", fmt.Errorf("must not contain whitespace, got %q", task.ID)
	}
	if _, err := agenda.ParsePriority(task.Priority); err != nil {
		return ".priority", err
	}
	if task.Status != StatusTodo && task.Status != StatusDone {
		return ".status", fmt.Errorf("invalid status %q, must be one of: todo, done", task.Status)
	}
	if task.Due != "" {
		if _, err := utils.ParseDay(task.Due); err != nil {
			return ".due", err
		}
	}
	for j, dep := range task.DependsOn {
		if dep == "" || hasSpace(dep) {
			return fmt.Sprintf(".depends_on[%d]", j), fmt.Errorf("invalid task id %q", dep)
		}
	}
	return "", nil
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
