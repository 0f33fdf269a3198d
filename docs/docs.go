// Package docs registers the OpenAPI document served under /swagger/. It is
// maintained by hand alongside the controller annotations.
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
        "/cart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Get the cart",
                "parameters": [
                    {"type": "string", "description": "Absolute URL of the page hosting the cart", "name": "page_url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the cart snapshot", "schema": {"$ref": "#/definitions/controllers.CartSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Empty the cart",
                "parameters": [
                    {"type": "string", "description": "Absolute URL of the page hosting the cart", "name": "page_url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the empty cart", "schema": {"$ref": "#/definitions/controllers.CartSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/cart/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Add a program instance to the cart",
                "parameters": [
                    {"description": "Page URL, item snapshot and waitlist flag", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddCartItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "data contains the cart snapshot", "schema": {"$ref": "#/definitions/controllers.CartSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: duplicate_item", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/cart/items/{objectID}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["cart"],
                "summary": "Remove a program instance from the cart",
                "parameters": [
                    {"type": "string", "description": "Program instance object id", "name": "objectID", "in": "path", "required": true},
                    {"type": "string", "description": "Absolute URL of the page hosting the cart", "name": "page_url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "data contains the cart snapshot", "schema": {"$ref": "#/definitions/controllers.CartSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/catalog/fetches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List catalog fetches",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "data contains items and pagination", "schema": {"$ref": "#/definitions/controllers.ListCatalogFetchesSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "data.status is ok", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/pages/{pageID}/listings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["listings"],
                "summary": "List the course groups of a page",
                "parameters": [
                    {"type": "string", "description": "Page ID", "name": "pageID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data is an array of group listings", "schema": {"$ref": "#/definitions/controllers.ListPageListingsSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AddCartItemRequest": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/controllers.CartItemRequest"},
                "page_url": {"type": "string"},
                "waitlist": {"type": "boolean"}
            }
        },
        "controllers.CartItemRequest": {
            "type": "object",
            "properties": {
                "fee": {"type": "number"},
                "instance_object_id": {"type": "string"},
                "program_instance_id": {"type": "string"},
                "sections": {"type": "array", "items": {"type": "object"}},
                "title": {"type": "string"}
            }
        },
        "controllers.CartSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.CartSnapshot"},
                "error": {"$ref": "#/definitions/helpers.APIError"},
                "notice": {"type": "string"}
            }
        },
        "controllers.ListCatalogFetchesSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "items": {"type": "array", "items": {"$ref": "#/definitions/domain.FetchLog"}},
                        "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
                    }
                },
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListPageListingsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "object"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "domain.CartSnapshot": {
            "type": "object",
            "properties": {
                "checkout_enabled": {"type": "boolean"},
                "checkout_link": {"type": "string"},
                "count": {"type": "integer"},
                "friendly_total": {"type": "string"},
                "items": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "number"}
            }
        },
        "domain.FetchLog": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "endpoint_url": {"type": "string"},
                "error": {"type": "string"},
                "fetched_at": {"type": "string"},
                "id": {"type": "string"},
                "instance_count": {"type": "integer"},
                "outcome": {"type": "string"},
                "page_id": {"type": "string"},
                "program_count": {"type": "integer"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"},
                "notice": {"type": "string"}
            }
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Elevate Cart API",
	Description:      "Course listings from Ellucian Elevate Live Links feeds with a session-scoped cart and checkout handoff.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
