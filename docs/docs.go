// Package docs registers the OpenAPI description of the billbook API with
// swag so gin-swagger can serve it at /swagger/index.html.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/catalog": {
            "get": {"tags": ["ledger"], "summary": "Products, expense categories, payment methods and statuses", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/summary": {
            "get": {"tags": ["ledger"], "summary": "All-time totals", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/ledger/status": {
            "get": {"tags": ["ledger"], "summary": "Storage slot state and record counts", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/export/xlsx": {
            "get": {"tags": ["ledger"], "summary": "Download the ledger workbook", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "OK"}}}
        },
        "/import/xlsx": {
            "post": {
                "tags": ["ledger"], "summary": "Import bills from a workbook",
                "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [{"name": "file", "in": "formData", "type": "file", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/invoices": {
            "get": {"tags": ["invoices"], "summary": "Bills grouped by invoice number", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/bills": {
            "get": {
                "tags": ["bills"], "summary": "List bills newest first with totals", "produces": ["application/json"],
                "parameters": [
                    {"name": "q", "in": "query", "type": "string"},
                    {"name": "from", "in": "query", "type": "string"},
                    {"name": "to", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            },
            "post": {"tags": ["bills"], "summary": "Create a bill", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {
                "tags": ["bills"], "summary": "Delete every bill",
                "parameters": [{"name": "confirm", "in": "query", "type": "boolean", "required": true}],
                "responses": {"200": {"description": "OK"}, "428": {"description": "Precondition Required"}}
            }
        },
        "/bills/export/csv": {
            "get": {"tags": ["bills"], "summary": "Download the filtered bills as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "OK"}}}
        },
        "/bills/{id}": {
            "get": {"tags": ["bills"], "summary": "Get a bill", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["bills"], "summary": "Replace a bill", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {
                "tags": ["bills"], "summary": "Delete a bill",
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}, {"name": "confirm", "in": "query", "type": "boolean", "required": true}],
                "responses": {"200": {"description": "OK"}, "428": {"description": "Precondition Required"}}
            }
        },
        "/bills/{id}/invoice": {
            "get": {"tags": ["invoices"], "summary": "Invoice document of a bill", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/bills/{id}/invoice/pdf": {
            "get": {"tags": ["invoices"], "summary": "Download tax invoice", "produces": ["application/pdf"], "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/bills/{id}/invoice/share": {
            "post": {
                "tags": ["invoices"], "summary": "Archive and share an invoice", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "429": {"description": "Too Many Requests"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/expenses": {
            "get": {"tags": ["expenses"], "summary": "List expenses newest first with total", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["expenses"], "summary": "Create an expense", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"tags": ["expenses"], "summary": "Delete every expense", "responses": {"200": {"description": "OK"}, "428": {"description": "Precondition Required"}}}
        },
        "/expenses/export/csv": {
            "get": {"tags": ["expenses"], "summary": "Download the filtered expenses as CSV", "produces": ["text/csv"], "responses": {"200": {"description": "OK"}}}
        },
        "/expenses/{id}": {
            "get": {"tags": ["expenses"], "summary": "Get an expense", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["expenses"], "summary": "Replace an expense", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"tags": ["expenses"], "summary": "Delete an expense", "parameters": [{"name": "id", "in": "path", "type": "string", "required": true}], "responses": {"200": {"description": "OK"}, "428": {"description": "Precondition Required"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "billbook API",
	Description:      "Bottle sales and expense ledger with GST tax invoices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
