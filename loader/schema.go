package loader

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// worldSchema describes the JSON world-document shape. YAML and Lua
// input skip this step and rely on the structural validator alone.
const worldSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["rooms", "start"],
  "properties": {
    "rooms": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {"$ref": "#/$defs/room"}
    },
    "start": {"type": "string", "minLength": 1},
    "win_condition": {"$ref": "#/$defs/condition"},
    "lose_condition": {"$ref": "#/$defs/condition"},
    "metadata": {
      "type": "object",
      "properties": {
        "title": {"type": "string"},
        "author": {"type": "string"},
        "description": {"type": "string"}
      }
    },
    "tasks": {
      "type": "object",
      "properties": {
        "main_quest": {"type": "string"},
        "side_quests": {"type": "array", "items": {"type": "string"}}
      }
    }
  },
  "$defs": {
    "room": {
      "type": "object",
      "required": ["description"],
      "properties": {
        "description": {"type": "string"},
        "items": {"type": "array", "items": {"type": "string"}},
        "exits": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "required": ["to"],
            "properties": {
              "to": {"type": "string", "minLength": 1},
              "locked": {"type": "boolean"},
              "key": {"type": "string"}
            },
            "additionalProperties": false
          }
        },
        "npcs": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "required": ["name"],
            "properties": {
              "name": {"type": "string"},
              "dialogue": {"type": "array", "items": {"type": "string"}}
            },
            "additionalProperties": false
          }
        },
        "riddle": {
          "type": "object",
          "required": ["question", "answer"],
          "properties": {
            "question": {"type": "string"},
            "answer": {"type": "string", "minLength": 1},
            "reward": {"type": "string"},
            "solved": {"type": "boolean"}
          },
          "additionalProperties": false
        },
        "tasks": {"type": "array", "items": {"type": "string"}}
      }
    },
    "condition": {
      "type": ["object", "null"],
      "properties": {
        "inventory_contains": {"type": "array", "items": {"type": "string"}},
        "inventory_has_any": {"type": "array", "items": {"type": "string"}},
        "inventory_count": {
          "type": "object",
          "additionalProperties": {"type": "integer", "minimum": 1}
        },
        "in_room_equals": {"type": "string"},
        "has_solved_riddle": {"type": "boolean"}
      },
      "additionalProperties": false
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("world.schema.json", worldSchema)

// validateSchema checks raw JSON against the world schema before any
// decoding happens, so authoring mistakes surface with the schema's
// path-precise diagnostics.
func validateSchema(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("not valid JSON: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("does not match the world schema: %w", err)
	}
	return nil
}
