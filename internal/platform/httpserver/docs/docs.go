// Package docs registers the OpenAPI document served under /swagger/.
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
        "/healthz": {
            "get": {"tags": ["system"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/campaigns": {
            "get": {
                "tags": ["campaigns"],
                "summary": "List campaigns",
                "parameters": [{"type": "string", "name": "status", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListCampaignsResponse"}}}
            },
            "post": {
                "tags": ["campaigns"],
                "summary": "Create a campaign",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCampaignRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}": {
            "get": {
                "tags": ["campaigns"],
                "summary": "Get a campaign with its content items",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["campaigns"],
                "summary": "Update campaign briefing fields",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCampaignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["campaigns"],
                "summary": "Delete a campaign and its status history",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/campaigns/{campaign_id}/launch": {
            "post": {
                "tags": ["campaigns"],
                "summary": "Launch a planned campaign",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}/pause": {
            "post": {
                "tags": ["campaigns"],
                "summary": "Pause an active campaign",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}/resume": {
            "post": {
                "tags": ["campaigns"],
                "summary": "Resume a paused campaign",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}/complete": {
            "post": {
                "tags": ["campaigns"],
                "summary": "Complete an active or paused campaign",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CampaignResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}/items": {
            "get": {
                "tags": ["content"],
                "summary": "List content items matching the filter",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "platform", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListContentItemsResponse"}}}
            },
            "post": {
                "tags": ["content"],
                "summary": "Create a content task",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateContentItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ContentItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}/items/{item_id}": {
            "patch": {
                "tags": ["content"],
                "summary": "Edit a content item",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"type": "string", "name": "item_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateContentItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ContentItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["content"],
                "summary": "Delete a content item",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"type": "string", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/v1/campaigns/{campaign_id}/items/{item_id}/advance": {
            "post": {
                "tags": ["content"],
                "summary": "Advance a content item one workflow step",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"type": "string", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TransitionResponse"}}}
            }
        },
        "/v1/campaigns/{campaign_id}/items/{item_id}/reset": {
            "post": {
                "tags": ["content"],
                "summary": "Reset a content item to not_started",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"type": "string", "name": "item_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TransitionResponse"}}}
            }
        },
        "/v1/campaigns/{campaign_id}/items/{item_id}/status": {
            "put": {
                "tags": ["content"],
                "summary": "Set a content item status explicitly",
                "parameters": [
                    {"type": "string", "name": "campaign_id", "in": "path", "required": true},
                    {"type": "string", "name": "item_id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetContentStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TransitionResponse"}}}
            }
        },
        "/v1/campaigns/{campaign_id}/history": {
            "get": {
                "tags": ["content"],
                "summary": "List content status changes",
                "parameters": [{"type": "string", "name": "campaign_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ListStatusHistoryResponse"}}}
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "CreateCampaignRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "objective": {"type": "string"},
                "target_audience": {"type": "string"},
                "budget": {"type": "number"},
                "channels": {"type": "array", "items": {"type": "string"}},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "CreateContentItemRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["image", "video", "text", "banner", "story"]},
                "platform": {"type": "string", "enum": ["instagram", "facebook", "linkedin", "twitter", "website"]},
                "status": {"type": "string"},
                "assigned_to": {"type": "string"},
                "due_date": {"type": "string", "example": "2026-06-01"},
                "notes": {"type": "string"}
            }
        },
        "UpdateCampaignRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "objective": {"type": "string"},
                "target_audience": {"type": "string"},
                "budget": {"type": "number"},
                "channels": {"type": "array", "items": {"type": "string"}},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"}
            }
        },
        "UpdateContentItemRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["image", "video", "text", "banner", "story"]},
                "platform": {"type": "string", "enum": ["instagram", "facebook", "linkedin", "twitter", "website"]},
                "assigned_to": {"type": "string"},
                "due_date": {"type": "string", "example": "2026-06-01"},
                "notes": {"type": "string"},
                "progress": {"type": "integer", "minimum": 0, "maximum": 100}
            }
        },
        "SetContentStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["not_started", "in_progress", "review", "approved", "published"]}
            }
        },
        "ContentItem": {
            "type": "object",
            "properties": {
                "item_id": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"},
                "platform": {"type": "string"},
                "status": {"type": "string"},
                "next_status": {"type": "string"},
                "assigned_to": {"type": "string"},
                "due_date": {"type": "string"},
                "progress": {"type": "integer"},
                "notes": {"type": "string"}
            }
        },
        "Campaign": {
            "type": "object",
            "properties": {
                "campaign_id": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string"},
                "progress": {"type": "number"},
                "status_breakdown": {"type": "object", "additionalProperties": {"type": "integer"}},
                "content_items": {"type": "array", "items": {"$ref": "#/definitions/ContentItem"}}
            }
        },
        "CampaignResponse": {
            "type": "object",
            "properties": {"campaign": {"$ref": "#/definitions/Campaign"}}
        },
        "ListCampaignsResponse": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/Campaign"}}}
        },
        "ContentItemResponse": {
            "type": "object",
            "properties": {"item": {"$ref": "#/definitions/ContentItem"}}
        },
        "TransitionResponse": {
            "type": "object",
            "properties": {"item": {"$ref": "#/definitions/ContentItem"}, "changed": {"type": "boolean"}}
        },
        "StatusChange": {
            "type": "object",
            "properties": {
                "change_id": {"type": "string"},
                "item_id": {"type": "string"},
                "action": {"type": "string", "enum": ["create", "advance", "reset", "set", "delete"]},
                "from_status": {"type": "string"},
                "to_status": {"type": "string"},
                "from_progress": {"type": "integer"},
                "to_progress": {"type": "integer"},
                "changed_by": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "ListStatusHistoryResponse": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/StatusChange"}}}
        },
        "ListContentItemsResponse": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/ContentItem"}}, "count": {"type": "integer"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CampaignHub API",
	Description:      "Campaign and content progress tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
