// Package docs registers the OpenAPI description served on /swagger.
package docs

import "github.com/swaggo/swag"

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
        "/api/admin/{path}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Dispatch a named admin action",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Dash-joined action name as path segments",
                        "name": "path",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "JSON array of action arguments",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "array", "items": {}}
                    }
                ],
                "responses": {
                    "200": {"description": "Action envelope", "schema": {"$ref": "#/definitions/action.Envelope"}},
                    "404": {"description": "Not an admin host"},
                    "500": {"description": "Malformed request body"}
                }
            }
        },
        "/api/site/{path}": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Dispatch a named public-site action",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Dash-joined action name as path segments",
                        "name": "path",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "JSON array of action arguments",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "array", "items": {}}
                    }
                ],
                "responses": {
                    "200": {"description": "Action envelope", "schema": {"$ref": "#/definitions/action.Envelope"}}
                }
            }
        },
        "/api/site-lock": {
            "get": {
                "produces": ["application/json"],
                "tags": ["site-lock"],
                "summary": "Site-lock status",
                "responses": {
                    "200": {"description": "Lock state", "schema": {"type": "object"}}
                }
            }
        },
        "/api/img/{img}": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["images"],
                "summary": "Fetch a named brand image",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Logical image name (logo, logo-light)",
                        "name": "img",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "Image bytes"},
                    "404": {"description": "Image not found"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        }
    },
    "definitions": {
        "action.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Site Platform API",
	Description:      "Multi-tenant site platform: public marketing site and admin dashboard behind one deployment.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
