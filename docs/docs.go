// Package docs holds the swagger spec served under /swagger.
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
		"/ping": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/approval-stages": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List the approval stage catalog",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/quotations/approved": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"catalog"
				],
				"summary": "List approved quotations",
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Create an operational cost record",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CreateOperationalCostRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			},
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "List operational cost records",
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Get an operational cost record",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Delete an operational cost record",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/quotation": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Select the baseline quotation",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.SelectQuotationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/thresholds": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Replace the variance thresholds",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.ThresholdsRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/status": {
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Set the record lifecycle status",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.StatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/approval/advance": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"approval"
				],
				"summary": "Advance the approval stage",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/approval/retreat": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"approval"
				],
				"summary": "Retreat the approval stage",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/variance": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"operational-costs"
				],
				"summary": "Get the variance report",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/categories/{category}/costs": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"cost-items"
				],
				"summary": "Set category costs in manual mode",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "category",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CategoryCostsRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/categories/{category}/items": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"cost-items"
				],
				"summary": "Add a cost item",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "category",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CostItemCreateRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/categories/{category}/items/{item_id}": {
			"patch": {
				"produces": [
					"application/json"
				],
				"tags": [
					"cost-items"
				],
				"summary": "Update one cost item field",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "category",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "item_id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.CostItemUpdateRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"cost-items"
				],
				"summary": "Remove a cost item",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "category",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "item_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/milestones": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"milestones"
				],
				"summary": "Add a milestone",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.MilestoneRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/milestones/{milestone_id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"milestones"
				],
				"summary": "Update a milestone",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "milestone_id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.MilestoneRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"milestones"
				],
				"summary": "Remove a milestone",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "milestone_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/awbs": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"awbs"
				],
				"summary": "Link an AWB",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/request.LinkAWBRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/awbs/{awb_id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"awbs"
				],
				"summary": "Unlink an AWB",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "awb_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/operational-costs/{id}/awbs/summary": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"awbs"
				],
				"summary": "Summarize linked AWB charges",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/pkg.HTTPError"
						}
					}
				}
			}
		},
		"/notifications": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"notifications"
				],
				"summary": "List recent notifications",
				"parameters": [
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	},
	"definitions": {
		"pkg.HTTPError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"request.ThresholdsRequest": {
			"type": "object",
			"required": [
				"warning",
				"critical"
			],
			"properties": {
				"warning": {
					"type": "string"
				},
				"critical": {
					"type": "string"
				}
			}
		},
		"request.CreateOperationalCostRequest": {
			"type": "object",
			"properties": {
				"quotation_id": {
					"type": "string"
				},
				"variance_thresholds": {
					"$ref": "#/definitions/request.ThresholdsRequest"
				}
			}
		},
		"request.SelectQuotationRequest": {
			"type": "object",
			"required": [
				"quotation_id"
			],
			"properties": {
				"quotation_id": {
					"type": "string"
				}
			}
		},
		"request.StatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"request.CategoryCostsRequest": {
			"type": "object",
			"required": [
				"quotation_cost",
				"actual_cost"
			],
			"properties": {
				"quotation_cost": {
					"type": "string"
				},
				"actual_cost": {
					"type": "string"
				}
			}
		},
		"request.CostItemCreateRequest": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"vendor_name": {
					"type": "string"
				},
				"invoice_number": {
					"type": "string"
				},
				"due_date": {
					"type": "string"
				}
			}
		},
		"request.CostItemUpdateRequest": {
			"type": "object",
			"required": [
				"field"
			],
			"properties": {
				"field": {
					"type": "string"
				},
				"value": {
					"type": "object"
				}
			}
		},
		"request.MilestoneRequest": {
			"type": "object",
			"required": [
				"title"
			],
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"target_date": {
					"type": "string"
				},
				"completed_date": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"responsible_person": {
					"type": "string"
				},
				"completion_percentage": {
					"type": "integer"
				}
			}
		},
		"request.LinkAWBRequest": {
			"type": "object",
			"required": [
				"awb_id"
			],
			"properties": {
				"awb_id": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/v1",
	Schemes:		  []string{},
	Title:			"Operational Cost Variance API",
	Description:	  "Budgeted versus actual freight costs per shipment, with variance classification, approval workflow and AWB charge summaries.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
