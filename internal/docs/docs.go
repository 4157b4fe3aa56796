// Package docs registers the OpenAPI document of the portal's JSON API.
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
        "/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "List generated reports",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reports/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Generate a scouting report",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/reports/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reports"],
                "summary": "Get a scouting report view model",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "title", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/matchup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Matchup"],
                "summary": "Head-to-head comparison of two teams",
                "parameters": [
                    {"type": "string", "name": "team1", "in": "query", "required": true},
                    {"type": "string", "name": "team2", "in": "query", "required": true},
                    {"type": "string", "name": "title", "in": "query"},
                    {"type": "integer", "name": "matches", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/teams/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Search the local team index",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "title", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/teams/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Teams"],
                "summary": "Featured teams of a title",
                "parameters": [
                    {"type": "string", "name": "title", "in": "query"},
                    {"type": "string", "name": "exclude", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Scout9 Portal API",
	Description:      "Normalized scouting report view models for League of Legends and VALORANT.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
