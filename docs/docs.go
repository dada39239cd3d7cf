// Package docs registers the OpenAPI document served under /swagger.
package docs

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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register an operator",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue a bearer token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/panel": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["panel"],
                "summary": "Get set-time panel",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PanelValue"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["panel"],
                "summary": "Set panel",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SetPanelRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PanelValue"}}}
            }
        },
        "/api/v1/panel/{field}/{direction}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["panel"],
                "summary": "Press a panel button",
                "parameters": [
                    {"enum": ["hour", "minute", "second"], "type": "string", "in": "path", "name": "field", "required": true},
                    {"enum": ["increment", "decrement"], "type": "string", "in": "path", "name": "direction", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PanelValue"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/timer/load": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["timer"],
                "summary": "Load countdown",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/handlers.LoadTimerRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/timer/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["timer"],
                "summary": "Start or pause countdown",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/timer/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["timer"],
                "summary": "Get timer state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TimerState"}}}
            }
        },
        "/api/v1/input/{event}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["input"],
                "summary": "Dispatch an input event",
                "parameters": [{"type": "string", "in": "path", "name": "event", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TimerState"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/snapshots/{key}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Get panel snapshot",
                "parameters": [{"type": "string", "in": "path", "name": "key", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Save panel snapshot",
                "parameters": [{"type": "string", "in": "path", "name": "key", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/snapshots/{key}/restore": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Restore panel snapshot",
                "parameters": [{"type": "string", "in": "path", "name": "key", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/board/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["board"],
                "summary": "Show or hide the board",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/logs/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List timer events",
                "parameters": [
                    {"type": "string", "in": "query", "name": "from"},
                    {"type": "string", "in": "query", "name": "to"},
                    {"enum": ["LOAD", "START", "PAUSE", "EXPIRED", "SAVE", "RESTORE"], "type": "string", "in": "query", "name": "type"},
                    {"type": "string", "in": "query", "name": "key"},
                    {"type": "integer", "in": "query", "name": "limit"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        }
    },
    "definitions": {
        "handlers.LoadTimerRequest": {
            "type": "object",
            "properties": {"duration_ms": {"type": "integer", "example": 90000}}
        },
        "handlers.SetPanelRequest": {
            "type": "object",
            "properties": {
                "hours": {"type": "string", "example": "01"},
                "minutes": {"type": "string", "example": "30"},
                "seconds": {"type": "string", "example": "00"}
            }
        },
        "models.PanelValue": {
            "type": "object",
            "properties": {
                "hours": {"type": "integer"},
                "minutes": {"type": "integer"},
                "seconds": {"type": "integer"},
                "display": {"type": "string"}
            }
        },
        "models.TimerState": {
            "type": "object",
            "properties": {
                "state": {"type": "string"},
                "remaining_ms": {"type": "integer"},
                "hours": {"type": "integer"},
                "minutes": {"type": "integer"},
                "seconds": {"type": "integer"},
                "display": {"type": "string"},
                "is_running": {"type": "boolean"},
                "board_visible": {"type": "boolean"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Timeboard API",
	Description:      "Countdown board: set-time panel, countdown engine, snapshots and display stream.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
