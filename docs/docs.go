// Package docs registers the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

// InstanceName is the swag registry key of the trip API document.
const InstanceName = "trip"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized"},
                    "422": {"description": "Unprocessable Entity"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/api/trips": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Trips"],
                "summary": "List trips",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Trip"}}},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Trips"],
                "summary": "Create a trip",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TripRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Trip"}},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/api/trips/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Trips"],
                "summary": "Search trips by destination",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "destination", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Trip"}}}
                }
            }
        },
        "/api/trips/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Trips"],
                "summary": "Get a trip",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Trip"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Trips"],
                "summary": "Replace a trip",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TripRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Trip"}},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Trips"],
                "summary": "Delete a trip",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string", "example": "admin"},
                "password": {"type": "string", "example": "password"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "type": {"type": "string", "example": "Bearer"},
                "username": {"type": "string"}
            }
        },
        "dto.TripRequest": {
            "type": "object",
            "properties": {
                "destination": {"type": "string", "example": "Barcelona, España"},
                "budget": {"type": "number", "example": 1500},
                "travelStyle": {"type": "string", "enum": ["BACKPACKER", "STANDARD", "LUXURY"]},
                "requiresVisa": {"type": "boolean"},
                "groupSize": {"type": "string", "example": "Solo"},
                "startDate": {"type": "string", "format": "date", "example": "2025-06-01"}
            }
        },
        "models.Trip": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "destination": {"type": "string"},
                "budget": {"type": "number"},
                "travelStyle": {"type": "string", "enum": ["BACKPACKER", "STANDARD", "LUXURY"]},
                "requiresVisa": {"type": "boolean"},
                "groupSize": {"type": "string"},
                "startDate": {"type": "string", "format": "date"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token returned by /api/auth/login.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SoloTrip Connect Trip API",
	Description:      "Authentication and trip storage for the SoloTrip Connect web application.",
	InfoInstanceName: InstanceName,
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
