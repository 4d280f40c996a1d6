// Package docs registers the OpenAPI document served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/scores/dashboard": {
            "get": {
                "summary": "Growth index, trend, badge and BMI for a day",
                "parameters": [{"name": "date", "in": "query", "type": "string", "format": "date"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Dashboard"}}}
            }
        },
        "/scores/history": {
            "get": {
                "summary": "Daily growth index over a window",
                "parameters": [
                    {"name": "end_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "days", "in": "query", "type": "integer", "minimum": 1, "maximum": 90}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/scores/weekly": {
            "get": {
                "summary": "Seven day step aggregate",
                "parameters": [{"name": "end_date", "in": "query", "type": "string", "format": "date"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/scores/bmi": {"get": {"summary": "Body mass index from the profile", "responses": {"200": {"description": "OK"}}}},
        "/logs/steps": {"post": {"summary": "Record today's step count", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid count"}}}},
        "/logs/sleep": {"post": {"summary": "Log last night's sleep", "responses": {"201": {"description": "Created"}, "400": {"description": "Invalid input"}}}},
        "/logs/meals": {
            "get": {"summary": "Meals and totals for a day", "responses": {"200": {"description": "OK"}}},
            "post": {"summary": "Append a meal to today", "responses": {"201": {"description": "Created"}, "409": {"description": "Day is closed"}}}
        },
        "/logs/water": {"get": {"summary": "Hydration for a day", "responses": {"200": {"description": "OK"}}}},
        "/logs/water/add": {"post": {"summary": "Add one glass", "responses": {"200": {"description": "OK"}}}},
        "/logs/water/remove": {"post": {"summary": "Remove one glass", "responses": {"200": {"description": "OK"}}}},
        "/profile": {
            "get": {"summary": "Profile with defaults applied", "responses": {"200": {"description": "OK"}}},
            "put": {"summary": "Update profile settings", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid settings"}}}
        },
        "/activities": {
            "get": {"summary": "Activities in a day range", "responses": {"200": {"description": "OK"}}},
            "post": {"summary": "Log a manual activity", "responses": {"201": {"description": "Created"}}}
        },
        "/activities/{id}": {"delete": {"summary": "Delete an activity", "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}},
        "/workout": {"get": {"summary": "Current workout state", "responses": {"200": {"description": "OK"}}}},
        "/workout/start": {"post": {"summary": "Start a workout (no-op while running)", "responses": {"200": {"description": "OK"}}}},
        "/workout/stop": {"post": {"summary": "Stop and record the workout", "responses": {"200": {"description": "Nothing recorded"}, "201": {"description": "Activity recorded"}}}},
        "/workout/reset": {"post": {"summary": "Discard the workout", "responses": {"200": {"description": "OK"}}}},
        "/workout/stream": {"get": {"summary": "Server-sent workout state events", "produces": ["text/event-stream"], "responses": {"200": {"description": "Event stream"}}}}
    },
    "definitions": {
        "domain.Dashboard": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "growth": {"type": "object"},
                "badge": {"type": "object"},
                "trend": {"type": "object"},
                "recovery": {"type": "object"},
                "bmi": {"type": "object"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Vybe API",
	Description:      "Fitness metrics, scoring and workout sessions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
