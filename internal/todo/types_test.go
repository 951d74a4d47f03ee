package todo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nibzard/agenda-go/internal/agenda"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tasks.json", `{
  "schema_version": 1,
  "tasks": [
    {"id": "build", "title": "Build it", "priority": "A", "status": "todo", "due": "2020-03-13"},
    {"id": "ship", "status": "done", "depends_on": ["build"]}
  ]
}`)

	f, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON failed: %v", err)
	}
	if f.SchemaVersion != 1 {
		t.Errorf("SchemaVersion: got %d, want 1", f.SchemaVersion)
	}
	if len(f.Tasks) != 2 {
		t.Fatalf("Tasks count: got %d, want 2", len(f.Tasks))
	}
	if f.Tasks[1].DependsOn[0] != "build" {
		t.Errorf("DependsOn: got %v, want [build]", f.Tasks[1].DependsOn)
	}
}

func TestLoadJSONErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadJSON(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadJSON of a missing file: expected error")
	}
	bad := writeFile(t, dir, "bad.json", "{not json")
	if _, err := LoadJSON(bad); err == nil {
		t.Error("LoadJSON of malformed JSON: expected error")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tasks.yaml", `schema_version: 1
tasks:
  - id: build
    title: Build it
    priority: B
    status: todo
  - id: ship
    status: todo
    due: "2020-03-13"
    depends_on: [build]
`)

	f, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	want := &File{
		SchemaVersion: 1,
		Tasks: []Task{
			{ID: "build", Title: "Build it", Priority: "B", Status: StatusTodo},
			{ID: "ship", Status: StatusTodo, Due: "2020-03-13", DependsOn: []string{"build"}},
		},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("LoadYAML mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateMinimal(t *testing.T) {
	tests := []struct {
		name     string
		file     *File
		wantPath string
	}{
		{
			name: "valid file",
			file: &File{SchemaVersion: 1, Tasks: []Task{
				{ID: "a", Title: "A", Priority: "A", Status: StatusTodo, Due: "2020-03-13"},
			}},
		},
		{
			name:     "missing schema_version",
			file:     &File{Tasks: []Task{{ID: "a", Status: StatusTodo}}},
			wantPath: "schema_version",
		},
		{
			name:     "missing tasks",
			file:     &File{SchemaVersion: 1},
			wantPath: "tasks",
		},
		{
			name:     "missing id",
			file:     &File{SchemaVersion: 1, Tasks: []Task{{Status: StatusTodo}}},
			wantPath: "tasks[0].id",
		},
		{
			name:     "id with whitespace",
			file:     &File{SchemaVersion: 1, Tasks: []Task{{ID: "a b", Status: StatusTodo}}},
			wantPath: "tasks[0].id",
		},
		{
			name:     "bad priority",
			file:     &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Priority: "D", Status: StatusTodo}}},
			wantPath: "tasks[0].priority",
		},
		{
			name:     "bad status",
			file:     &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Status: "doing"}}},
			wantPath: "tasks[0].status",
		},
		{
			name:     "bad due",
			file:     &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Status: StatusTodo, Due: "13/03/2020"}}},
			wantPath: "tasks[0].due",
		},
		{
			name: "bad dependency id",
			file: &File{SchemaVersion: 1, Tasks: []Task{
				{ID: "a", Status: StatusTodo},
				{ID: "b", Status: StatusTodo, DependsOn: []string{"a", ""}},
			}},
			wantPath: "tasks[1].depends_on[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.file.Validate(ValidationOptions{})
			if tt.wantPath == "" {
				if !result.Valid {
					t.Errorf("Validate() errors: %v, want valid", result.Errors)
				}
				return
			}
			if result.Valid {
				t.Fatalf("Validate() valid, want error at %s", tt.wantPath)
			}
			var ve *ValidationError
			if !errors.As(result.Errors[0], &ve) {
				t.Fatalf("error type: got %T, want *ValidationError", result.Errors[0])
			}
			if ve.Path != tt.wantPath {
				t.Errorf("error path: got %q, want %q", ve.Path, tt.wantPath)
			}
			if result.UsedSchema {
				t.Error("UsedSchema should be false without a schema path")
			}
		})
	}
}

func TestValidateWithSchema(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "schema.json", DefaultSchema)

	tests := []struct {
		name    string
		file    *File
		wantErr bool
	}{
		{
			name: "valid file",
			file: &File{SchemaVersion: 1, Tasks: []Task{
				{ID: "a", Title: "A", Priority: "C", Status: StatusTodo, Due: "2020-03-13"},
				{ID: "b", Status: StatusDone, DependsOn: []string{"a"}},
			}},
		},
		{
			name:    "invalid schema_version",
			file:    &File{SchemaVersion: 2, Tasks: []Task{{ID: "a", Status: StatusTodo}}},
			wantErr: true,
		},
		{
			name:    "invalid status enum",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Status: "doing"}}},
			wantErr: true,
		},
		{
			name:    "invalid priority enum",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Priority: "Z", Status: StatusTodo}}},
			wantErr: true,
		},
		{
			name:    "id with whitespace",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a b", Status: StatusTodo}}},
			wantErr: true,
		},
		{
			name:    "bad date format",
			file:    &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Status: StatusTodo, Due: "2020-13-45"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.file.Validate(ValidationOptions{SchemaPath: schemaPath})
			if result.Valid == tt.wantErr {
				t.Errorf("Validate() valid = %v, want error %v (errors: %v)", result.Valid, tt.wantErr, result.Errors)
			}
			if !result.UsedSchema {
				t.Error("Expected UsedSchema to be true")
			}
		})
	}
}

func TestValidateWithSchemaErrorPath(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "schema.json", DefaultSchema)
	f := &File{SchemaVersion: 1, Tasks: []Task{
		{ID: "a", Status: StatusTodo},
		{ID: "b", Status: "later"},
	}}

	result := f.Validate(ValidationOptions{SchemaPath: schemaPath})
	if result.Valid {
		t.Fatal("Validate() valid, want error")
	}
	found := false
	for _, err := range result.Errors {
		var ve *ValidationError
		if errors.As(err, &ve) && strings.HasPrefix(ve.Path, "tasks[1]") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v: want one located under tasks[1]", result.Errors)
	}
}

func TestValidateWithSchemaMissingFile(t *testing.T) {
	f := &File{SchemaVersion: 1, Tasks: []Task{{ID: "a", Status: StatusTodo}}}

	// Non-existent schema path should fall back to minimal validation
	result := f.Validate(ValidationOptions{SchemaPath: "/non/existent/schema.json"})

	if !result.Valid {
		t.Errorf("Valid should be true, got false: %v", result.Errors)
	}
	if result.UsedSchema {
		t.Error("UsedSchema should be false when schema file not found")
	}
	if len(result.Warnings) == 0 {
		t.Error("Expected warnings when schema file not found")
	}
}

func TestRecords(t *testing.T) {
	f := &File{SchemaVersion: 1, Tasks: []Task{
		{ID: "build", Title: "Build it", Priority: "A", Status: StatusTodo, Due: "2020-03-13"},
		{ID: "ship", Status: StatusDone, DependsOn: []string{"build"}},
	}}

	got, err := f.Records("work.json")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	want := []agenda.Record{
		{Scope: "work.json", Name: "build", Description: "Build it", Priority: agenda.PriorityHigh, Due: intPtr(18334)},
		{Scope: "work.json", Name: "ship", Done: true, Deps: []string{"build"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusTodo != "todo" {
		t.Errorf("StatusTodo: got %q, want todo", StatusTodo)
	}
	if StatusDone != "done" {
		t.Errorf("StatusDone: got %q, want done", StatusDone)
	}
}

func TestCompileSchema(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "schema.json", DefaultSchema)
	if err := CompileSchema(good); err != nil {
		t.Errorf("CompileSchema(DefaultSchema): %v", err)
	}
	bad := writeFile(t, dir, "bad.json", `{"type": 42}`)
	if err := CompileSchema(bad); err == nil {
		t.Error("CompileSchema of an invalid schema: expected error")
	}
	if err := CompileSchema(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("CompileSchema of a missing file: expected error")
	}
}
