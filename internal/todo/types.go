package todo

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/agenda-go/internal/agenda"
	"github.com/nibzard/agenda-go/internal/utils"
)

// Status is the completion state of a structured task.
type Status string

const (
	StatusTodo Status = "todo"
	StatusDone Status = "done"
)

// Task is one entry of a structured task file.
type Task struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Priority  string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Status    Status   `json:"status" yaml:"status"`
	Due       string   `json:"due,omitempty" yaml:"due,omitempty"`
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// File is a JSON, YAML or HCL task document.
type File struct {
	SchemaVersion int    `json:"schema_version" yaml:"schema_version"`
	Tasks         []Task `json:"tasks" yaml:"tasks"`
}

// LoadJSON reads a JSON task file.
func LoadJSON(path string) (*File, error) {
	return loadFile(path, json.Unmarshal)
}

// LoadYAML reads a YAML task file. It shares the JSON document shape.
func LoadYAML(path string) (*File, error) {
	return loadFile(path, yaml.Unmarshal)
}

func loadFile(path string, unmarshal func([]byte, any) error) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	f := &File{}
	if err := unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	return f, nil
}

// Records converts the tasks of a validated file into agenda records in the
// given scope.
func (f *File) Records(scope string) ([]agenda.Record, error) {
	recs := make([]agenda.Record, 0, len(f.Tasks))
	for i, task := range f.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		pri, err := agenda.ParsePriority(task.Priority)
		if err != nil {
			return nil, &ValidationError{Path: path + ".priority", Err: err}
		}
		rec := agenda.Record{
			Scope:       scope,
			Name:        task.ID,
			Description: task.Title,
			Priority:    pri,
			Done:        task.Status == StatusDone,
			Deps:        append([]string(nil), task.DependsOn...),
		}
		if task.Due != "" {
			due, err := utils.ParseDay(task.Due)
			if err != nil {
				return nil, &ValidationError{Path: path + ".due", Err: err}
			}
			rec.Due = &due
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
