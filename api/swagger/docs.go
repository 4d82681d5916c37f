// Package swagger holds the OpenAPI document served under /swagger. Regenerate with swag init -g cmd/api/main.go -o api/swagger.
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
        "/api/permissions/apply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes the owner's assignments for the warehouse and profile, the parameter rows under the description key, optionally demotes other default warehouses, then inserts the drafts. All in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Apply warehouse permissions",
                "parameters": [
                    {"description": "Permission set", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.PermissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/permissions/apply-transfer": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Resolves the movement types for par_descrip2, clears exit (te_exists) and entry (ts_exists) rows for them, then inserts the drafts. All in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Apply transfer permissions",
                "parameters": [
                    {"description": "Transfer permission set", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.TransferPermissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/permissions/search": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Search permission holders",
                "parameters": [
                    {"type": "integer", "description": "Profile", "name": "adm_perfil", "in": "query"},
                    {"type": "string", "description": "Status", "name": "adm_status", "in": "query"},
                    {"type": "string", "description": "Comma separated warehouses", "name": "adm_almacen", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/assignments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "List assignments",
                "parameters": [
                    {"type": "string", "description": "Partial match on warehouse", "name": "search", "in": "query"},
                    {"type": "string", "description": "Owner", "name": "adm_idpersona", "in": "query"},
                    {"type": "string", "description": "Warehouse", "name": "adm_almacen", "in": "query"},
                    {"type": "integer", "description": "Profile", "name": "adm_perfil", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Create assignment",
                "parameters": [
                    {"description": "Assignment", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.AssignmentDraft"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/assignments/{owner}/{warehouse}/{movement}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Update assignment",
                "parameters": [
                    {"type": "string", "description": "Owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Warehouse", "name": "warehouse", "in": "path", "required": true},
                    {"type": "string", "description": "Movement type", "name": "movement", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["assignments"],
                "summary": "Delete assignment",
                "parameters": [
                    {"type": "string", "description": "Owner", "name": "owner", "in": "path", "required": true},
                    {"type": "string", "description": "Warehouse", "name": "warehouse", "in": "path", "required": true},
                    {"type": "string", "description": "Movement type", "name": "movement", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DeleteResult"}}
                }
            }
        },
        "/api/parameters": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parameters"],
                "summary": "List parameters",
                "parameters": [
                    {"type": "string", "description": "Parameter type", "name": "par_tipopara", "in": "query"},
                    {"type": "integer", "description": "Entity", "name": "par_idenpara", "in": "query"},
                    {"type": "string", "description": "Comma separated entities", "name": "par_idenpara__in", "in": "query"},
                    {"type": "string", "description": "Comma separated descriptions", "name": "par_descrip2__in", "in": "query"},
                    {"type": "string", "description": "Comma separated descriptions to exclude", "name": "par_descrip2__notin", "in": "query"},
                    {"type": "string", "description": "e.g. par_descrip1,par_idparameter:desc", "name": "order_by", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parameters"],
                "summary": "Create parameter",
                "parameters": [
                    {"description": "Parameter", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ParameterDraft"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/parameters/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["parameters"],
                "summary": "Update parameter",
                "parameters": [
                    {"type": "integer", "description": "Parameter ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["parameters"],
                "summary": "Delete parameter",
                "parameters": [
                    {"type": "integer", "description": "Parameter ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DeleteResult"}}
                }
            }
        },
        "/api/audit-logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Get audit logs",
                "parameters": [
                    {"type": "string", "description": "Owner", "name": "bit_adm_idpersona", "in": "query"},
                    {"type": "string", "description": "Warehouse", "name": "bit_adm_almacen", "in": "query"},
                    {"type": "integer", "description": "Parameter", "name": "par_idparameter", "in": "query"},
                    {"type": "string", "description": "Operation date (YYYY-MM-DD)", "name": "bit_fechope", "in": "query"},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Number of items per page (default 10)", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Create audit entry",
                "parameters": [
                    {"description": "Entry", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/audit-logs/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Update audit entry",
                "parameters": [
                    {"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Delete audit entry",
                "parameters": [
                    {"type": "string", "description": "Entry ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DeleteResult"}}
                }
            }
        },
        "/api/identifiers": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List parameter entity identifiers",
                "parameters": [
                    {"type": "string", "description": "Code", "name": "caip_enpara", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create a parameter entity identifier",
                "parameters": [
                    {"description": "Identifier", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/persons": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List persons",
                "parameters": [
                    {"type": "string", "description": "Partial match on names", "name": "search", "in": "query"},
                    {"type": "string", "description": "Person", "name": "per_idpersona", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/statuses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List status codes",
                "parameters": [
                    {"type": "string", "description": "Code", "name": "cast_cvstatus", "in": "query"},
                    {"type": "integer", "description": "Module", "name": "cast_idmodulo", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List users",
                "parameters": [
                    {"type": "string", "description": "Login", "name": "usu_idusuari", "in": "query"},
                    {"type": "string", "description": "Partial given name", "name": "usu_nousuari", "in": "query"},
                    {"type": "string", "description": "Status code, defaults to A; empty for any", "name": "cast_cvstatus", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/legacy-users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List legacy users",
                "parameters": [
                    {"type": "string", "description": "Login", "name": "usu_idusuari", "in": "query"},
                    {"type": "string", "description": "Status", "name": "usu_status", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/sales-targets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "List sales targets",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "obm_ano", "in": "query"},
                    {"type": "integer", "description": "Seller", "name": "obm_vendedor", "in": "query"},
                    {"type": "string", "description": "Partial match on operator", "name": "search", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Create sales target",
                "parameters": [
                    {"description": "Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateSalesTargetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/sales-targets/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Upserts the header and, when obd_list is present, replaces its months. All in one transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Save sales target with months",
                "parameters": [
                    {"description": "Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SaveSalesTargetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/sales-targets/{year}/{seller}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Update sales target",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Seller", "name": "seller", "in": "path", "required": true},
                    {"description": "Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdateSalesTargetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Delete sales target and its months",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Seller", "name": "seller", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/sales-target-details": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "List sales target months",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "obd_ano", "in": "query"},
                    {"type": "integer", "description": "Seller", "name": "obd_vendedor", "in": "query"},
                    {"type": "integer", "description": "Month", "name": "obd_mes", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Create sales target month",
                "parameters": [
                    {"description": "Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateSalesTargetDetailRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/sales-target-details/{year}/{seller}/{month}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Update sales target month",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Seller", "name": "seller", "in": "path", "required": true},
                    {"type": "integer", "description": "Month", "name": "month", "in": "path", "required": true},
                    {"description": "Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdateSalesTargetDetailRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["sales-targets"],
                "summary": "Delete sales target month",
                "parameters": [
                    {"type": "integer", "description": "Year", "name": "year", "in": "path", "required": true},
                    {"type": "integer", "description": "Seller", "name": "seller", "in": "path", "required": true},
                    {"type": "integer", "description": "Month", "name": "month", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/roles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List roles",
                "parameters": [
                    {"type": "integer", "description": "Person", "name": "rol_idpersona", "in": "query"},
                    {"type": "string", "description": "Role code", "name": "rol_idrol", "in": "query"},
                    {"type": "integer", "description": "Role status", "name": "rol_idrolestatus", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/roles/by-person": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List a person's roles",
                "parameters": [
                    {"type": "integer", "description": "Person", "name": "per_idpersona", "in": "query"},
                    {"type": "string", "description": "Parameter type publishing the role codes", "name": "par_tipopara", "in": "query"},
                    {"type": "string", "description": "Comma separated role codes", "name": "par_idenpara__in", "in": "query"},
                    {"type": "string", "description": "Parameter status code, defaults to A", "name": "cast_cvstatus", "in": "query"},
                    {"type": "integer", "description": "Role status", "name": "rol_idrolestatus", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/roles/people-with-roles": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List people holding scoped roles",
                "parameters": [
                    {"type": "string", "description": "Parameter type publishing the role codes", "name": "par_tipopara", "in": "query"},
                    {"type": "string", "description": "Comma separated role codes", "name": "par_idenpara__in", "in": "query"},
                    {"type": "string", "description": "Parameter status code, defaults to A", "name": "cast_cvstatus", "in": "query"},
                    {"type": "string", "description": "e.g. per_paterno,per_idpersona:desc", "name": "order_by", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/roles/people-by-role": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List people holding a role code",
                "parameters": [
                    {"type": "string", "description": "Role code", "name": "rol_idrol", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "status_code": {"type": "integer"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "response.DeleteResult": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "service.AssignmentDraft": {
            "type": "object",
            "required": ["adm_almacen", "adm_tmov"],
            "properties": {
                "adm_idpersona": {"type": "number"},
                "adm_almacen": {"type": "string", "maxLength": 10},
                "adm_tmov": {"type": "string", "maxLength": 10},
                "adm_status": {"type": "string", "maxLength": 2},
                "adm_cveusu": {"type": "string", "maxLength": 20},
                "adm_almdefault": {"type": "boolean"},
                "adm_edorepemi": {"type": "integer"},
                "adm_uninegemi": {"type": "string", "maxLength": 10},
                "adm_perfil": {"type": "integer"},
                "adm_edoreprec": {"type": "integer"},
                "adm_uninegrec": {"type": "string", "maxLength": 10},
                "adm_almrecept": {"type": "string", "maxLength": 10},
                "adm_ordencompra": {"type": "string", "maxLength": 1}
            }
        },
        "service.ParameterDraft": {
            "type": "object",
            "required": ["par_idenpara"],
            "properties": {
                "par_tipopara": {"type": "string", "maxLength": 10},
                "par_idenpara": {"type": "integer"},
                "par_idmodulo": {"type": "integer"},
                "par_descrip1": {"type": "string"},
                "par_descrip2": {"type": "string"},
                "par_descrip3": {"type": "string"},
                "par_descrip4": {"type": "string"},
                "par_descrip5": {"type": "string"},
                "par_idstatus": {"type": "integer"},
                "par_importe1": {"type": "number"},
                "par_fecha1": {"type": "string", "example": "2024-05-17"},
                "par_hora1": {"type": "string", "example": "10:30:00"},
                "par_idcveusu": {"type": "integer"}
            }
        },
        "service.PermissionRequest": {
            "type": "object",
            "required": ["adm_almacen", "adm_perfil", "par_descrip1"],
            "properties": {
                "adm_idpersona": {"type": "number"},
                "adm_almacen": {"type": "string", "maxLength": 10},
                "adm_perfil": {"type": "integer"},
                "par_tipopara": {"type": "string", "maxLength": 10},
                "par_descrip1": {"type": "string"},
                "is_default_alm": {"type": "boolean"},
                "par_adm_list": {"type": "array", "items": {"$ref": "#/definitions/service.AssignmentDraft"}},
                "pnc_parametr_list": {"type": "array", "items": {"$ref": "#/definitions/service.ParameterDraft"}}
            }
        },
        "service.CreateSalesTargetRequest": {
            "type": "object",
            "properties": {
                "obm_ano": {"type": "number"},
                "obm_vendedor": {"type": "number"},
                "obm_sueldo": {"type": "number"},
                "obm_cveusu": {"type": "string", "maxLength": 20}
            }
        },
        "service.UpdateSalesTargetRequest": {
            "type": "object",
            "properties": {
                "obm_sueldo": {"type": "number"},
                "obm_cveusu": {"type": "string", "maxLength": 20}
            }
        },
        "service.CreateSalesTargetDetailRequest": {
            "type": "object",
            "properties": {
                "obd_ano": {"type": "number"},
                "obd_vendedor": {"type": "number"},
                "obd_mes": {"type": "number"},
                "obd_venta": {"type": "number"},
                "obd_comision": {"type": "number"},
                "obd_cveusu": {"type": "string", "maxLength": 20},
                "obd_areavta": {"type": "string", "maxLength": 10}
            }
        },
        "service.UpdateSalesTargetDetailRequest": {
            "type": "object",
            "properties": {
                "obd_venta": {"type": "number"},
                "obd_comision": {"type": "number"},
                "obd_cveusu": {"type": "string", "maxLength": 20},
                "obd_areavta": {"type": "string", "maxLength": 10}
            }
        },
        "service.SaveSalesTargetRequest": {
            "type": "object",
            "properties": {
                "obm_ano": {"type": "number"},
                "obm_vendedor": {"type": "number"},
                "obm_sueldo": {"type": "number"},
                "obm_cveusu": {"type": "string", "maxLength": 20},
                "obd_list": {"type": "array", "items": {"$ref": "#/definitions/service.CreateSalesTargetDetailRequest"}}
            }
        },
        "service.TransferPermissionRequest": {
            "type": "object",
            "required": ["adm_almacen", "adm_perfil", "par_descrip2"],
            "properties": {
                "adm_idpersona": {"type": "number"},
                "adm_almacen": {"type": "string", "maxLength": 10},
                "adm_perfil": {"type": "integer"},
                "par_tipopara": {"type": "string", "maxLength": 10},
                "par_descrip2": {"type": "string"},
                "te_exists": {"type": "boolean"},
                "ts_exists": {"type": "boolean"},
                "adm_uninegrec": {"type": "string", "maxLength": 10},
                "par_adm_list": {"type": "array", "items": {"$ref": "#/definitions/service.AssignmentDraft"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "Warehouse Permissions API",
	Description:      "Maintains warehouse movement permissions, seller sales targets and the catalogs around them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
