// Package docs holds the generated Swagger specification.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/notifications/booking": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Send Booking Notification Email",
                "description": "Renders and dispatches a transactional email for a booking.",
                "parameters": [
                    {
                        "description": "Notification Request",
                        "name": "notification",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.SendBookingEmailRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/leads": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["leads"],
                "summary": "Capture Landing Page Lead",
                "description": "Persists a lead from a landing-page form and triggers follow-up emails.",
                "parameters": [
                    {
                        "description": "Lead Form Data",
                        "name": "lead",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.LeadCaptureRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/bookings": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List Bookings",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Create Booking",
                "parameters": [
                    {
                        "description": "Booking Request",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.CreateBookingRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        }
    },
    "definitions": {
        "domain.SendBookingEmailRequest": {
            "type": "object",
            "required": ["bookingId", "notificationKind"],
            "properties": {
                "bookingId": {"type": "string"},
                "notificationKind": {
                    "type": "string",
                    "enum": ["confirmation", "reminder_24h", "reminder_1h", "cancellation", "reschedule"]
                }
            }
        },
        "domain.LeadCaptureRequest": {
            "type": "object",
            "required": ["name", "email"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "segment": {"type": "string"},
                "campaign_slug": {"type": "string"},
                "campaign_id": {"type": "string"},
                "source": {"type": "string"},
                "utm_source": {"type": "string"},
                "utm_medium": {"type": "string"},
                "utm_campaign": {"type": "string"},
                "utm_term": {"type": "string"},
                "utm_content": {"type": "string"},
                "biggest_challenge": {"type": "string"},
                "urgency": {"type": "string"},
                "monthly_revenue": {"type": "string"},
                "ad_experience": {"type": "string"},
                "message": {"type": "string"},
                "company": {"type": "string"}
            }
        },
        "domain.CreateBookingRequest": {
            "type": "object",
            "required": ["serviceTypeId", "scheduledDate", "scheduledTime", "qualificationData", "participantInfo"],
            "properties": {
                "serviceTypeId": {"type": "string"},
                "scheduledDate": {"type": "string"},
                "scheduledTime": {"type": "string"},
                "qualificationData": {"type": "object"},
                "discountCode": {"type": "string"},
                "participantInfo": {"type": "object"}
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Consulting Backend API",
	Description:      "Lead intake and booking notification backend using Clean Architecture.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
