// Package swagger holds the OpenAPI document served at /swagger, in the layout
// swag init writes. Regenerate with go generate after changing handler annotations;
// docs_test.go fails when the two disagree.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/integrity": {
            "get": {
                "description": "Performs the storage, schema and drift checks.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Run All Integrity Checks",
                "responses": {
                    "200": {
                        "description": "Combined Report",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/integrity/drift": {
            "get": {
                "description": "Lists rooms that are missing, duplicated or different between the rooms table and the storage snapshot.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Drift",
                "responses": {
                    "200": {"description": "Drift Report", "schema": {"$ref": "#/definitions/reconcile.Report"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/schema": {
            "get": {
                "description": "Checks that the rooms table matches the room row model. Optionally migrates it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Schema",
                "parameters": [
                    {"type": "boolean", "description": "Migrate the rooms table", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Schema Report", "schema": {"$ref": "#/definitions/checks.SchemaReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/integrity/storage": {
            "get": {
                "description": "Checks the bucket and the rooms snapshot object. Optionally creates an empty snapshot.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["integrity"],
                "summary": "Check Storage",
                "parameters": [
                    {"type": "boolean", "description": "Create missing bucket and snapshot", "name": "fix", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Storage Report", "schema": {"$ref": "#/definitions/checks.StorageReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/rooms": {
            "get": {
                "description": "List all available rooms, cheapest first.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "List Rooms",
                "responses": {
                    "200": {"description": "Rooms", "schema": {"$ref": "#/definitions/rooms.RoomList"}}
                }
            },
            "post": {
                "description": "Insert a room record or an array of records. Unavailable rooms are skipped.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Add Rooms",
                "responses": {
                    "201": {"description": "Insert summary", "schema": {"$ref": "#/definitions/rooms.AddResult"}},
                    "400": {"description": "Malformed body", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Invalid record", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/rooms/reload": {
            "post": {
                "description": "Replace all rooms with the contents of the database or the storage snapshot.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Reload Rooms",
                "parameters": [
                    {"type": "string", "description": "database or storage", "name": "source", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Reload summary", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Unknown source", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Invalid record in source", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Source not configured", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/rooms/search": {
            "get": {
                "description": "Find rooms priced within [min, max]. With rooms > 1 only blocks of adjacent rooms on one floor are returned.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Search Rooms",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Number of adjacent rooms", "name": "rooms", "in": "query"},
                    {"type": "number", "default": 0, "description": "Minimum price", "name": "min", "in": "query"},
                    {"type": "number", "description": "Maximum price", "name": "max", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Matching rooms", "schema": {"$ref": "#/definitions/rooms.RoomList"}},
                    "400": {"description": "Invalid query", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/rooms/snapshot": {
            "post": {
                "description": "Write all stored rooms to the configured storage object.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Snapshot Rooms",
                "responses": {
                    "200": {"description": "Snapshot summary", "schema": {"type": "object", "additionalProperties": true}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Storage not configured", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "reconcile.Report": {
            "type": "object",
            "properties": {
                "in_sync": {"type": "boolean"},
                "left": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/reconcile.Result"}},
                "right": {"type": "string"},
                "summary": {"$ref": "#/definitions/reconcile.Summary"}
            }
        },
        "reconcile.Result": {
            "type": "object",
            "properties": {
                "floor": {"type": "integer"},
                "hotel": {"type": "string"},
                "key": {"type": "string"},
                "left_present": {"type": "boolean"},
                "mismatch": {"type": "array", "items": {"type": "string"}},
                "number": {"type": "integer"},
                "right_present": {"type": "boolean"}
            }
        },
        "reconcile.Summary": {
            "type": "object",
            "properties": {
                "mismatches": {"type": "integer"},
                "missing_left": {"type": "integer"},
                "missing_right": {"type": "integer"},
                "total_rooms": {"type": "integer"}
            }
        },
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "dialect": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "matched": {"type": "boolean"},
                "missing_columns": {"type": "array", "items": {"type": "string"}},
                "table": {"type": "string"},
                "type_mismatches": {"type": "array", "items": {"type": "string"}}
            }
        },
        "checks.StorageReport": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "bucket_exists": {"type": "boolean"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "invalid_record": {"type": "integer"},
                "last_modified": {"type": "string"},
                "object": {"type": "string"},
                "object_exists": {"type": "boolean"},
                "records": {"type": "integer"},
                "size": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "room.Room": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"},
                "floor": {"type": "integer"},
                "hotel": {"type": "string"},
                "number": {"type": "integer"},
                "price": {"type": "string"}
            }
        },
        "rooms.AddResult": {
            "type": "object",
            "properties": {
                "inserted": {"type": "integer"},
                "skipped": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "rooms.RoomList": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "rooms": {"type": "array", "items": {"$ref": "#/definitions/room.Room"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Room Finder API",
	Description:      "API for finding adjacent hotel rooms within a budget.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
