package todo

// DefaultSchema is the JSON Schema for structured task files. `agenda schema`
// prints it so it can be saved and referenced from schema_file.
const DefaultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "agenda task file",
  "type": "object",
  "additionalProperties": false,
  "required": ["schema_version", "tasks"],
  "properties": {
    "schema_version": {"type": "integer", "const": 1},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "required": ["id", "status"],
        "properties": {
          "id": {"type": "string", "pattern": "^\\S+$"},
          "title": {"type": "string"},
          "priority": {"type": "string", "enum": ["A", "B", "C"]},
          "status": {"type": "string", "enum": ["todo", "done"]},
          "due": {"type": "string", "format": "date"},
          "depends_on": {
            "type": "array",
            "items": {"type": "string", "pattern": "^\\S+$"}
          }
        }
      }
    }
  }
}
`
