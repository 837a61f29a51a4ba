package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "StudyLoop API Documentation",
        "title": "StudyLoop API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if the server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/v1/entries": {
            "post": {
                "tags": ["Entries"],
                "summary": "Create or Update Entry",
                "description": "Create a learning entry for a date with up to three study items, or replace the items of an existing entry (the review schedule is kept)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "entry",
                        "description": "Learning entry",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "date": {
                                    "type": "string",
                                    "example": "2026-08-26"
                                },
                                "items": {
                                    "type": "array",
                                    "items": {"type": "string"},
                                    "example": ["English vocabulary", "Math formulas"]
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Entry created with a fresh 7-review schedule"
                    },
                    "200": {
                        "description": "Existing entry's items replaced"
                    },
                    "400": {
                        "description": "Invalid date or no non-empty items"
                    }
                }
            }
        },
        "/api/v1/entries/dates": {
            "get": {
                "tags": ["Entries"],
                "summary": "List Entry Dates",
                "description": "All learning dates with entries, newest first",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Array of YYYY-MM-DD strings"
                    }
                }
            }
        },
        "/api/v1/entries/{date}": {
            "get": {
                "tags": ["Entries"],
                "summary": "Get Entry",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "date",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "The entry with its review schedule"},
                    "404": {"description": "No entry for this date"}
                }
            },
            "delete": {
                "tags": ["Entries"],
                "summary": "Delete Entry",
                "parameters": [
                    {
                        "in": "path",
                        "name": "date",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "Entry deleted"},
                    "404": {"description": "No entry for this date"}
                }
            }
        },
        "/api/v1/reviews/due": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Reviews Due Today",
                "description": "Uncompleted reviews due today, excluding entries learned today, oldest learning date first",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Array of due reviews"}
                }
            }
        },
        "/api/v1/reviews/complete": {
            "post": {
                "tags": ["Reviews"],
                "summary": "Complete Review",
                "description": "Mark one review stage of an entry as done (idempotent)",
                "consumes": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "review",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "entry_date": {"type": "string", "example": "2026-08-20"},
                                "review_index": {"type": "integer", "example": 0}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated entry"},
                    "404": {"description": "Unknown entry date or review index out of range"}
                }
            }
        },
        "/api/v1/progress": {
            "get": {
                "tags": ["Progress"],
                "summary": "Progress Report",
                "description": "All entries oldest-first with per-review completed/overdue/pending status",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Progress report"}
                }
            }
        },
        "/api/v1/export/xlsx": {
            "get": {
                "tags": ["Progress"],
                "summary": "Export Progress",
                "description": "Download the progress report as an xlsx workbook",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {
                    "200": {"description": "Workbook attachment"}
                }
            }
        },
        "/api/v1/analysis/push": {
            "post": {
                "tags": ["Analysis"],
                "summary": "Push Dataset Snapshot",
                "description": "Send the full dataset to the configured external analysis endpoint",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Push result with batch ID"},
                    "503": {"description": "No analysis endpoint configured"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the owner token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "StudyLoop API",
	Description:      "StudyLoop API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
