// Package docs holds the OpenAPI description of the API.
//
// The document follows the swag annotations on the handlers in
// internal/router, internal/controllers/healthz and internal/controllers/v1.
// It is maintained by hand, so every change to an annotation or a response
// type needs the matching change here.
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
        "/": {
            "get": {
                "summary": "API root",
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Get health",
                "description": "Returns the application health and, if not healthy, an error",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.Response"
                        }
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "summary": "v1 API",
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.V1Response"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/advice/categories/{id}": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Advice"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Category advice",
                "description": "Comments on the spending in one category in the current month",
                "tags": [
                    "Advice"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryAdviceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryAdviceResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryAdviceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryAdviceResponse"
                        }
                    }
                }
            }
        },
        "/v1/advice/daily": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Advice"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Daily advice",
                "description": "Returns tips, warnings and reminders for today, most important first",
                "tags": [
                    "Advice"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DailyAdviceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DailyAdviceResponse"
                        }
                    }
                }
            }
        },
        "/v1/advice/monthly": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Advice"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Monthly advice",
                "description": "Scores the current month and lists achievements, improvements and goals",
                "tags": [
                    "Advice"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyAdviceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyAdviceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyAdviceResponse"
                        }
                    }
                }
            }
        },
        "/v1/advice/weekly": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Advice"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Weekly advice",
                "description": "Summarizes the current week and compares it with the previous one",
                "tags": [
                    "Advice"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.WeeklyAdviceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.WeeklyAdviceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.WeeklyAdviceResponse"
                        }
                    }
                }
            }
        },
        "/v1/alerts": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Budget alerts",
                "description": "Returns all categories of active budgets that are more than 10% over their limit",
                "tags": [
                    "Budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AlertListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AlertListResponse"
                        }
                    }
                }
            }
        },
        "/v1/budget-recommendations": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Budget recommendations",
                "description": "Proposes category limits from the spending of the last three months",
                "tags": [
                    "Budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetRecommendationsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetRecommendationsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetRecommendationsResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "summary": "Create budget",
                "description": "Creates a new budget with its category limits",
                "tags": [
                    "Budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/adjustments": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
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
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "summary": "Budget adjustments",
                "description": "Suggests new limits for categories that are over, near or far below their limit",
                "tags": [
                    "Budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAdjustmentListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAdjustmentListResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAdjustmentListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetAdjustmentListResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/analysis": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
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
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "summary": "Budget analysis",
                "description": "Refreshes the spent amounts of a budget and returns its summary",
                "tags": [
                    "Budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetSummaryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetSummaryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetSummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetSummaryResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/performance": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
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
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "summary": "Budget performance",
                "description": "Scores the budget and its categories",
                "tags": [
                    "Budgets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPerformanceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPerformanceResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPerformanceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPerformanceResponse"
                        }
                    }
                }
            }
        },
        "/v1/categories": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "summary": "Create category",
                "description": "Creates a new category with its subcategories",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                }
            },
            "get": {
                "summary": "Get categories",
                "description": "Returns a list of categories, sorted by name",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Glob pattern for the name, e.g. Groc*",
                        "name": "name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                }
            }
        },
        "/v1/expense-checks": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Expenses"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "summary": "Check expense",
                "description": "Checks a prospective expense against the budget that is active in the current month. Nothing is stored.",
                "tags": [
                    "Expenses"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Expense",
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseValidationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseValidationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseValidationResponse"
                        }
                    }
                }
            }
        },
        "/v1/expenses": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Expenses"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "summary": "Create expense",
                "description": "Expenses that bring their category more than 10% over its limit are rejected with 422.",
                "tags": [
                    "Expenses"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Expense",
                        "name": "expense",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    }
                }
            }
        },
        "/v1/forecasts": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Forecasts"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Forecast",
                "description": "Projects income, expenses and savings for the next months and lists the risks",
                "tags": [
                    "Forecasts"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "int",
                        "description": "Number of months, 1 to 24",
                        "name": "months",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ForecastResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ForecastResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ForecastResponse"
                        }
                    }
                }
            }
        },
        "/v1/incomes": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Incomes"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "summary": "Create income",
                "description": "Stores a new income",
                "tags": [
                    "Incomes"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeResponse"
                        }
                    }
                }
            }
        },
        "/v1/reports/categories/{id}": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Category report",
                "description": "Returns the spending of one category over a date range",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID formatted as string",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First day in YYYY-MM-DD format",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Last day in YYYY-MM-DD format, inclusive",
                        "name": "until",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryReportResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryReportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryReportResponse"
                        }
                    }
                }
            }
        },
        "/v1/reports/monthly/{month}": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Monthly report",
                "description": "Returns income, expenses, breakdowns, budget comparison and recommendations for a month",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Month in YYYY-MM format",
                        "name": "month",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyReportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.MonthlyReportResponse"
                        }
                    }
                }
            }
        },
        "/v1/reports/yearly/{year}": {
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "summary": "Yearly report",
                "description": "Returns the monthly totals, best and worst month and the category breakdown for a year",
                "tags": [
                    "Reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "int",
                        "description": "Year",
                        "name": "year",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Filter by user ID",
                        "name": "user",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by family ID",
                        "name": "family",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.YearlyReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.YearlyReportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.YearlyReportResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "summary": "API version",
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "analytics.AdviceType": {
            "type": "string",
            "enum": [
                "achievement",
                "warning",
                "alert",
                "tip",
                "reminder"
            ],
            "x-enum-varnames": [
                "AdviceAchievement",
                "AdviceWarning",
                "AdviceAlert",
                "AdviceTip",
                "AdviceReminder"
            ]
        },
        "analytics.AlertType": {
            "type": "string",
            "enum": [
                "warning",
                "danger"
            ],
            "x-enum-varnames": [
                "AlertWarning",
                "AlertDanger"
            ]
        },
        "analytics.BudgetAdjustment": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "currentLimit": {
                    "type": "number",
                    "example": 500
                },
                "priority": {
                    "$ref": "#/definitions/analytics.Priority"
                },
                "reason": {
                    "type": "string",
                    "example": "Spent 560.00 of 500.00"
                },
                "suggestedLimit": {
                    "type": "number",
                    "example": 672
                }
            }
        },
        "analytics.BudgetAlert": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"
                },
                "budgetName": {
                    "type": "string",
                    "example": "Household"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "limit": {
                    "type": "number",
                    "example": 500
                },
                "message": {
                    "type": "string",
                    "example": "Groceries is 12.0% over its limit of 500.00"
                },
                "overage": {
                    "type": "number",
                    "example": 60
                },
                "overagePercentage": {
                    "type": "number",
                    "example": 12
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 112
                },
                "spent": {
                    "type": "number",
                    "example": 560
                },
                "type": {
                    "$ref": "#/definitions/analytics.AlertType"
                }
            }
        },
        "analytics.BudgetComparison": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"
                },
                "budgetName": {
                    "type": "string",
                    "example": "Household"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryComparison"
                    }
                },
                "isOverBudget": {
                    "type": "boolean",
                    "example": false
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 92.86
                },
                "remaining": {
                    "type": "number",
                    "example": 500
                },
                "totalLimit": {
                    "type": "number",
                    "example": 7000
                },
                "totalSpent": {
                    "type": "number",
                    "example": 6500
                }
            }
        },
        "analytics.BudgetContext": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"
                },
                "budgetName": {
                    "type": "string",
                    "example": "Household"
                },
                "limit": {
                    "type": "number",
                    "example": 500
                },
                "newPercentage": {
                    "type": "number",
                    "example": 96
                },
                "newSpent": {
                    "type": "number",
                    "example": 480
                },
                "spent": {
                    "type": "number",
                    "example": 440
                }
            }
        },
        "analytics.BudgetPerformance": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryPerformance"
                    }
                },
                "name": {
                    "type": "string",
                    "example": "Household"
                },
                "overallScore": {
                    "type": "number",
                    "example": 90
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 82.4
                },
                "suggestions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "analytics.BudgetRecommendation": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryLimitRecommendation"
                    }
                },
                "recommendedBudget": {
                    "type": "number",
                    "example": 21600
                }
            }
        },
        "analytics.BudgetRecommendations": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryRecommendation"
                    }
                },
                "emergencyFund": {
                    "type": "number",
                    "example": 215
                },
                "savingsGoal": {
                    "type": "number",
                    "example": 430
                },
                "totalRecommended": {
                    "type": "number",
                    "example": 2150
                }
            }
        },
        "analytics.BudgetSummary": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "1f5c5a4e-3a1c-4f8e-9d7c-2e0f6c1b5a77"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategorySummary"
                    }
                },
                "name": {
                    "type": "string",
                    "example": "Household"
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 56
                },
                "period": {
                    "$ref": "#/definitions/types.DateRange"
                },
                "remaining": {
                    "type": "number",
                    "example": 440
                },
                "totalLimit": {
                    "type": "number",
                    "example": 1000
                },
                "totalSpent": {
                    "type": "number",
                    "example": 560
                }
            }
        },
        "analytics.Category": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#4caf50"
                },
                "icon": {
                    "type": "string",
                    "example": "🛒"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                }
            }
        },
        "analytics.CategoryAdvice": {
            "type": "object",
            "properties": {
                "advice": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "averageTransaction": {
                    "type": "number",
                    "example": 52.07
                },
                "category": {
                    "$ref": "#/definitions/analytics.Category"
                },
                "month": {
                    "type": "string",
                    "example": "2024-03"
                },
                "totalSpent": {
                    "type": "number",
                    "example": 312.4
                },
                "transactionCount": {
                    "type": "integer",
                    "example": 6
                }
            }
        },
        "analytics.CategoryComparison": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "isOverBudget": {
                    "type": "boolean",
                    "example": false
                },
                "limit": {
                    "type": "number",
                    "example": 500
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 86
                },
                "spent": {
                    "type": "number",
                    "example": 430
                }
            }
        },
        "analytics.CategoryForecast": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "predicted": {
                    "type": "number",
                    "example": 1800
                },
                "trend": {
                    "$ref": "#/definitions/analytics.Trend"
                }
            }
        },
        "analytics.CategoryLimitRecommendation": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "predicted": {
                    "type": "number",
                    "example": 1800
                },
                "priority": {
                    "$ref": "#/definitions/analytics.Priority"
                },
                "reason": {
                    "type": "string",
                    "example": "Spending is steady, a small buffer is enough"
                },
                "recommendedLimit": {
                    "type": "number",
                    "example": 1890
                }
            }
        },
        "analytics.CategoryPerformance": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 72.5
                },
                "score": {
                    "type": "integer",
                    "example": 100
                }
            }
        },
        "analytics.CategoryRecommendation": {
            "type": "object",
            "properties": {
                "averageSpent": {
                    "type": "number",
                    "example": 420.5
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "recommendedLimit": {
                    "type": "number",
                    "example": 463
                }
            }
        },
        "analytics.CategoryReport": {
            "type": "object",
            "properties": {
                "averageTransaction": {
                    "type": "number",
                    "example": 52.07
                },
                "category": {
                    "$ref": "#/definitions/analytics.Category"
                },
                "dailyAverage": {
                    "type": "number",
                    "example": 10.08
                },
                "months": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.MonthBucket"
                    }
                },
                "period": {
                    "$ref": "#/definitions/types.DateRange"
                },
                "totalSpent": {
                    "type": "number",
                    "example": 312.4
                },
                "transactionCount": {
                    "type": "integer",
                    "example": 6
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.Expense"
                    }
                },
                "weekdays": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.WeekdayBucket"
                    },
                    "description": "Sunday to Saturday"
                }
            }
        },
        "analytics.CategoryShare": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 1950
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "color": {
                    "type": "string",
                    "example": "#4caf50"
                },
                "count": {
                    "type": "integer",
                    "example": 14
                },
                "icon": {
                    "type": "string",
                    "example": "🛒"
                },
                "percentage": {
                    "type": "number",
                    "description": "Share of the total expenses",
                    "example": 30
                }
            }
        },
        "analytics.CategorySummary": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "isNearLimit": {
                    "type": "boolean",
                    "example": true
                },
                "isOverBudget": {
                    "type": "boolean",
                    "example": true
                },
                "limit": {
                    "type": "number",
                    "example": 500
                },
                "percentageUsed": {
                    "type": "number",
                    "example": 112
                },
                "remaining": {
                    "type": "number",
                    "example": -60
                },
                "spent": {
                    "type": "number",
                    "example": 560
                }
            }
        },
        "analytics.DailyAdvice": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "message": {
                    "type": "string",
                    "example": "You spent 245.00 today."
                },
                "priority": {
                    "$ref": "#/definitions/analytics.Priority"
                },
                "title": {
                    "type": "string",
                    "example": "High spending today"
                },
                "type": {
                    "$ref": "#/definitions/analytics.AdviceType"
                }
            }
        },
        "analytics.Expense": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 42.17
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "date": {
                    "type": "string",
                    "example": "2024-03-14T12:00:00Z"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "example": "c4b5b0d4-5d59-4a43-a7a6-07b0fb0b7b4e"
                },
                "note": {
                    "type": "string",
                    "example": "Weekly shopping"
                },
                "subcategoryId": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "analytics.ExpenseForecast": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryForecast"
                    }
                },
                "confidence": {
                    "type": "number",
                    "example": 80
                },
                "predicted": {
                    "type": "number",
                    "example": 19500
                },
                "trend": {
                    "$ref": "#/definitions/analytics.Trend"
                }
            }
        },
        "analytics.ExpenseValidation": {
            "type": "object",
            "properties": {
                "allowed": {
                    "type": "boolean",
                    "example": true
                },
                "budgetContext": {
                    "description": "Only set when the category is budgeted",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.BudgetContext"
                        }
                    ]
                },
                "warning": {
                    "type": "string",
                    "example": "Groceries will be at 96.0% of its limit"
                }
            }
        },
        "analytics.ForecastData": {
            "type": "object",
            "properties": {
                "budgetRecommendation": {
                    "$ref": "#/definitions/analytics.BudgetRecommendation"
                },
                "expenseForecast": {
                    "$ref": "#/definitions/analytics.ExpenseForecast"
                },
                "generatedAt": {
                    "type": "string",
                    "example": "2024-03-14T09:30:00Z"
                },
                "incomeForecast": {
                    "$ref": "#/definitions/analytics.IncomeForecast"
                },
                "months": {
                    "type": "integer",
                    "example": 3
                },
                "period": {
                    "$ref": "#/definitions/types.DateRange"
                },
                "risks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.Risk"
                    }
                },
                "savingsForecast": {
                    "$ref": "#/definitions/analytics.SavingsForecast"
                }
            }
        },
        "analytics.IncomeForecast": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number",
                    "example": 85
                },
                "predicted": {
                    "type": "number",
                    "example": 24000
                },
                "trend": {
                    "$ref": "#/definitions/analytics.Trend"
                },
                "types": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.IncomeTypeForecast"
                    }
                }
            }
        },
        "analytics.IncomeShare": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 8000
                },
                "count": {
                    "type": "integer",
                    "example": 1
                },
                "percentage": {
                    "type": "number",
                    "description": "Share of the total income",
                    "example": 100
                },
                "type": {
                    "$ref": "#/definitions/analytics.IncomeType"
                }
            }
        },
        "analytics.IncomeType": {
            "type": "string",
            "enum": [
                "salary",
                "freelance",
                "investment",
                "other"
            ],
            "x-enum-varnames": [
                "IncomeSalary",
                "IncomeFreelance",
                "IncomeInvestment",
                "IncomeOther"
            ]
        },
        "analytics.IncomeTypeForecast": {
            "type": "object",
            "properties": {
                "predicted": {
                    "type": "number",
                    "example": 24000
                },
                "trend": {
                    "$ref": "#/definitions/analytics.Trend"
                },
                "type": {
                    "$ref": "#/definitions/analytics.IncomeType"
                }
            }
        },
        "analytics.MonthBucket": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 312.4
                },
                "count": {
                    "type": "integer",
                    "example": 6
                },
                "month": {
                    "type": "string",
                    "example": "2024-03"
                }
            }
        },
        "analytics.MonthComparison": {
            "type": "object",
            "properties": {
                "expenseChange": {
                    "type": "number",
                    "example": 6.56
                },
                "incomeChange": {
                    "type": "number",
                    "example": 2.56
                },
                "netChange": {
                    "type": "number",
                    "example": -11.76
                },
                "previousExpenses": {
                    "type": "number",
                    "example": 6100
                },
                "previousIncome": {
                    "type": "number",
                    "example": 7800
                },
                "previousNet": {
                    "type": "number",
                    "example": 1700
                }
            }
        },
        "analytics.MonthSummary": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "number",
                    "example": 6500
                },
                "income": {
                    "type": "number",
                    "example": 8000
                },
                "month": {
                    "type": "string",
                    "example": "2024-03"
                },
                "savings": {
                    "type": "number",
                    "example": 1500
                }
            }
        },
        "analytics.MonthlyAdvice": {
            "type": "object",
            "properties": {
                "achievements": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "improvements": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "month": {
                    "type": "string",
                    "example": "2024-03"
                },
                "nextMonthGoals": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "savingsRate": {
                    "type": "number",
                    "example": 18.75
                },
                "score": {
                    "type": "integer",
                    "example": 85
                },
                "totalExpenses": {
                    "type": "number",
                    "example": 6500
                },
                "totalIncome": {
                    "type": "number",
                    "example": 8000
                }
            }
        },
        "analytics.MonthlyReportData": {
            "type": "object",
            "properties": {
                "budgetComparison": {
                    "description": "Only set if a budget is active in the month",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.BudgetComparison"
                        }
                    ]
                },
                "categoryBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.CategoryShare"
                    }
                },
                "comparison": {
                    "$ref": "#/definitions/analytics.MonthComparison"
                },
                "incomeBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.IncomeShare"
                    }
                },
                "month": {
                    "type": "string",
                    "example": "2024-03"
                },
                "netAmount": {
                    "type": "number",
                    "example": 1500
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "savingsRate": {
                    "type": "number",
                    "example": 18.75
                },
                "totalExpenses": {
                    "type": "number",
                    "example": 6500
                },
                "totalIncome": {
                    "type": "number",
                    "example": 8000
                }
            }
        },
        "analytics.Priority": {
            "type": "string",
            "enum": [
                "high",
                "medium",
                "low"
            ],
            "x-enum-varnames": [
                "PriorityHigh",
                "PriorityMedium",
                "PriorityLow"
            ]
        },
        "analytics.Risk": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Spending in Travel varies strongly from month to month"
                },
                "impact": {
                    "$ref": "#/definitions/analytics.Priority"
                },
                "mitigation": {
                    "type": "string",
                    "example": "Set money aside in calm months"
                },
                "probability": {
                    "type": "number",
                    "description": "0 to 100",
                    "example": 60
                },
                "type": {
                    "$ref": "#/definitions/analytics.RiskType"
                }
            }
        },
        "analytics.RiskType": {
            "type": "string",
            "enum": [
                "budget_overspend",
                "income_shortage",
                "seasonal_spike",
                "trend_change"
            ],
            "x-enum-varnames": [
                "RiskBudgetOverspend",
                "RiskIncomeShortage",
                "RiskSeasonalSpike",
                "RiskTrendChange"
            ]
        },
        "analytics.SavingsForecast": {
            "type": "object",
            "properties": {
                "achievableSavingsRate": {
                    "type": "number",
                    "example": 18.75
                },
                "predicted": {
                    "type": "number",
                    "example": 4500
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "analytics.Seasonality": {
            "type": "object",
            "properties": {
                "hasPattern": {
                    "type": "boolean",
                    "description": "Whether a periodic pattern has been detected",
                    "example": false
                }
            }
        },
        "analytics.Trend": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number",
                    "description": "0 to 100",
                    "example": 60
                },
                "direction": {
                    "$ref": "#/definitions/analytics.TrendDirection"
                },
                "seasonality": {
                    "$ref": "#/definitions/analytics.Seasonality"
                },
                "strength": {
                    "type": "number",
                    "description": "Slope relative to the mean in percent, 0 to 100",
                    "example": 13.33
                },
                "volatility": {
                    "description": "Classification of the coefficient of variation",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.Volatility"
                        }
                    ]
                }
            }
        },
        "analytics.TrendDirection": {
            "type": "string",
            "enum": [
                "increasing",
                "decreasing",
                "stable"
            ],
            "x-enum-varnames": [
                "TrendIncreasing",
                "TrendDecreasing",
                "TrendStable"
            ]
        },
        "analytics.Volatility": {
            "type": "string",
            "enum": [
                "low",
                "medium",
                "high"
            ],
            "x-enum-varnames": [
                "VolatilityLow",
                "VolatilityMedium",
                "VolatilityHigh"
            ]
        },
        "analytics.WeekdayBucket": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 120
                },
                "count": {
                    "type": "integer",
                    "example": 2
                },
                "weekday": {
                    "type": "string",
                    "example": "Saturday"
                }
            }
        },
        "analytics.WeeklyAdvice": {
            "type": "object",
            "properties": {
                "budgetUsage": {
                    "type": "number",
                    "description": "Percentage of the active budget used, unset without an active budget",
                    "example": 64.2
                },
                "changeFromLastWeek": {
                    "type": "number",
                    "example": -12.5
                },
                "concerns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "highlights": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "income": {
                    "type": "number",
                    "example": 2000
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "savingsThisWeek": {
                    "type": "number",
                    "example": 1487.7
                },
                "spent": {
                    "type": "number",
                    "example": 512.3
                },
                "week": {
                    "$ref": "#/definitions/types.DateRange"
                }
            }
        },
        "analytics.YearlyCategoryShare": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 1950
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "color": {
                    "type": "string",
                    "example": "#4caf50"
                },
                "count": {
                    "type": "integer",
                    "example": 14
                },
                "icon": {
                    "type": "string",
                    "example": "🛒"
                },
                "percentage": {
                    "type": "number",
                    "description": "Share of the total expenses",
                    "example": 30
                },
                "trend": {
                    "$ref": "#/definitions/analytics.TrendDirection"
                }
            }
        },
        "analytics.YearlyReportData": {
            "type": "object",
            "properties": {
                "bestMonth": {
                    "description": "Month with the highest savings, unset if there is no data",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.MonthSummary"
                        }
                    ]
                },
                "categoryBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.YearlyCategoryShare"
                    }
                },
                "months": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.MonthSummary"
                    }
                },
                "savingsRate": {
                    "type": "number",
                    "example": 18.75
                },
                "totalExpenses": {
                    "type": "number",
                    "example": 78000
                },
                "totalIncome": {
                    "type": "number",
                    "example": 96000
                },
                "totalSavings": {
                    "type": "number",
                    "example": 18000
                },
                "worstMonth": {
                    "description": "Month with the lowest savings, unset if there is no data",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.MonthSummary"
                        }
                    ]
                },
                "year": {
                    "type": "integer",
                    "example": 2024
                }
            }
        },
        "healthz.Response": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "The database cannot be pinged"
                }
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CategoryBudget"
                    },
                    "description": "Limits for single categories"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "endDate": {
                    "type": "string",
                    "description": "Last day of the budget, inclusive",
                    "example": "2024-03-31T00:00:00Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the resource is shared with",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the budget",
                    "example": "March household"
                },
                "startDate": {
                    "type": "string",
                    "description": "First day of the budget",
                    "example": "2024-03-01T00:00:00Z"
                },
                "totalLimit": {
                    "type": "number",
                    "description": "Limit for all expenses in the period",
                    "example": 2500
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who owns the resource",
                    "example": "3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"
                }
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "color": {
                    "type": "string",
                    "description": "Color used for the category in charts",
                    "example": "#4caf50"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the category is restricted to",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "icon": {
                    "type": "string",
                    "description": "Icon shown for the category",
                    "example": "🛒"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isDefault": {
                    "type": "boolean",
                    "description": "Is the category one of the built-in defaults?",
                    "example": false
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Groceries"
                },
                "subcategories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Subcategory"
                    },
                    "description": "Subcategories of the category"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.CategoryBudget": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the budget",
                    "example": "0fa9c6a4-5ff6-4a3e-8f15-60a3c7cf1f3e"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "limit": {
                    "type": "number",
                    "description": "Limit for the category",
                    "example": 400
                },
                "spent": {
                    "type": "number",
                    "description": "Amount spent in the category during the budget period",
                    "example": 123.45
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount of the expense, always positive",
                    "example": 42.17
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string",
                    "description": "Date of the expense",
                    "example": "2024-03-14T12:00:00Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the resource is shared with",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "note": {
                    "type": "string",
                    "description": "A note for the expense",
                    "example": "Weekly shopping"
                },
                "subcategoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the subcategory",
                    "example": "null"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who owns the resource",
                    "example": "3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"
                }
            }
        },
        "models.Income": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount of the income, always positive",
                    "example": 3200
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string",
                    "description": "Date the income was received",
                    "example": "2024-03-01T00:00:00Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the resource is shared with",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "note": {
                    "type": "string",
                    "description": "A note for the income",
                    "example": "March salary"
                },
                "type": {
                    "description": "Type of the income",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.IncomeType"
                        }
                    ]
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who owns the resource",
                    "example": "3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"
                }
            }
        },
        "models.Subcategory": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the subcategory",
                    "example": "Organic"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Health check",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "type": "string",
                    "description": "Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "description": "List endpoint for all v1 endpoints",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "type": "string",
                    "description": "Endpoint returning the version of the service",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.V1Links": {
            "type": "object",
            "properties": {
                "advice": {
                    "type": "string",
                    "description": "URL prefix of the advice endpoints",
                    "example": "https://example.com/api/v1/advice"
                },
                "alerts": {
                    "type": "string",
                    "description": "URL of the budget alert endpoint",
                    "example": "https://example.com/api/v1/alerts"
                },
                "budgetRecommendations": {
                    "type": "string",
                    "description": "URL of the budget recommendation endpoint",
                    "example": "https://example.com/api/v1/budget-recommendations"
                },
                "budgets": {
                    "type": "string",
                    "description": "URL of the budget endpoint",
                    "example": "https://example.com/api/v1/budgets"
                },
                "categories": {
                    "type": "string",
                    "description": "URL of the category list endpoint",
                    "example": "https://example.com/api/v1/categories"
                },
                "expenseChecks": {
                    "type": "string",
                    "description": "URL of the expense check endpoint",
                    "example": "https://example.com/api/v1/expense-checks"
                },
                "expenses": {
                    "type": "string",
                    "description": "URL of the expense endpoint",
                    "example": "https://example.com/api/v1/expenses"
                },
                "forecasts": {
                    "type": "string",
                    "description": "URL of the forecast endpoint",
                    "example": "https://example.com/api/v1/forecasts"
                },
                "incomes": {
                    "type": "string",
                    "description": "URL of the income endpoint",
                    "example": "https://example.com/api/v1/incomes"
                },
                "reports": {
                    "type": "string",
                    "description": "URL prefix of the report endpoints",
                    "example": "https://example.com/api/v1/reports"
                }
            }
        },
        "router.V1Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.V1Links"
                        }
                    ]
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the service",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "types.DateRange": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string",
                    "description": "First instant in the range",
                    "example": "2024-03-01T00:00:00Z"
                },
                "until": {
                    "type": "string",
                    "description": "First instant after the range",
                    "example": "2024-04-01T00:00:00Z"
                }
            }
        },
        "v1.AlertListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.BudgetAlert"
                    },
                    "description": "Alerts for categories that are over their limit"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.BudgetAdjustmentListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.BudgetAdjustment"
                    },
                    "description": "Suggested adjustments"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.BudgetEditable": {
            "type": "object",
            "required": [
                "endDate",
                "name",
                "startDate"
            ],
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryBudgetEditable"
                    },
                    "description": "Limits for single categories"
                },
                "endDate": {
                    "type": "string",
                    "description": "Last day of the budget, inclusive",
                    "example": "2024-03-31T00:00:00Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the budget is shared with",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the budget",
                    "example": "March household"
                },
                "startDate": {
                    "type": "string",
                    "description": "First day of the budget",
                    "example": "2024-03-01T00:00:00Z"
                },
                "totalLimit": {
                    "type": "number",
                    "description": "Limit for all expenses in the period",
                    "example": 2500
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who owns the budget",
                    "example": "3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"
                }
            }
        },
        "v1.BudgetPerformanceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Performance of the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.BudgetPerformance"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.BudgetRecommendationsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Recommended category limits",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.BudgetRecommendations"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Budget"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.BudgetSummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Analysis of the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.BudgetSummary"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.CategoryAdviceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Advice for the category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.CategoryAdvice"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.CategoryBudgetEditable": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "limit": {
                    "type": "number",
                    "description": "Limit for the category",
                    "example": 400
                }
            }
        },
        "v1.CategoryEditable": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "color": {
                    "type": "string",
                    "description": "Color used for the category in charts",
                    "example": "#795548"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the category is restricted to",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "icon": {
                    "type": "string",
                    "description": "Icon shown for the category",
                    "example": "🐾"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Pets"
                },
                "subcategories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "description": "Names of the subcategories",
                    "example": [
                        "Food",
                        "Vet"
                    ]
                }
            }
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    },
                    "description": "List of categories"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.CategoryReportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Report for the category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.CategoryReport"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.CategoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Category"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.DailyAdviceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/analytics.DailyAdvice"
                    },
                    "description": "Advice for today"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.ExpenseEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount of the expense",
                    "example": 42.17
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "9b0a7a53-4c7a-4ba2-8a51-3c8f1c9f3d34"
                },
                "date": {
                    "type": "string",
                    "description": "Date of the expense, defaults to now",
                    "example": "2024-03-14T12:00:00Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the expense is shared with",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "note": {
                    "type": "string",
                    "description": "A note for the expense",
                    "example": "Weekly shopping"
                },
                "subcategoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the subcategory",
                    "example": "null"
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who owns the expense",
                    "example": "3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"
                }
            }
        },
        "v1.ExpenseResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the expense",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Expense"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                },
                "validation": {
                    "description": "Result of the budget check for the expense",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.ExpenseValidation"
                        }
                    ]
                }
            }
        },
        "v1.ExpenseValidationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Result of the budget check",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.ExpenseValidation"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.ForecastResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The forecast",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.ForecastData"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.IncomeEditable": {
            "type": "object",
            "required": [
                "type"
            ],
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount of the income",
                    "example": 3200
                },
                "date": {
                    "type": "string",
                    "description": "Date the income was received, defaults to now",
                    "example": "2024-03-01T00:00:00Z"
                },
                "familyId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the family the income is shared with",
                    "example": "1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"
                },
                "note": {
                    "type": "string",
                    "description": "A note for the income",
                    "example": "March salary"
                },
                "type": {
                    "description": "Type of the income",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.IncomeType"
                        }
                    ]
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who owns the income",
                    "example": "3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"
                }
            }
        },
        "v1.IncomeResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the income",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Income"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.MonthlyAdviceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Review of the current month",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.MonthlyAdvice"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.MonthlyReportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Report for the month",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.MonthlyReportData"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.WeeklyAdviceResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Summary of the current week",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.WeeklyAdvice"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.YearlyReportResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Report for the year",
                    "allOf": [
                        {
                            "$ref": "#/definitions/analytics.YearlyReportData"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
