// Package docs holds the OpenAPI description served at /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {
			"name": "API Support",
			"url": "http://www.swagger.io/support",
			"email": "support@swagger.io"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.HealthResponse"
						}
					}
				}
			}
		},
		"/livez": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Liveness check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.HealthResponse"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Readiness check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.HealthResponse"
						}
					},
					"503": {
						"description": "Service Unavailable",
						"schema": {
							"$ref": "#/definitions/dto.HealthResponse"
						}
					}
				}
			}
		},
		"/user/signup": {
			"post": {
				"description": "Create a nonadmin account. Username uniqueness is checked before e-mail uniqueness.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"description": "User registration data",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SignupUserRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "User registered",
						"schema": {
							"$ref": "#/definitions/dto.SignupUserResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "Username or e-mail already taken",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/user/signin": {
			"post": {
				"description": "Authenticate with HTTP Basic credentials. The session token is returned in the access_token header.",
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Sign in",
				"parameters": [
					{
						"type": "string",
						"description": "Basic base64(username:password)",
						"name": "Authorization",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Signed in",
						"schema": {
							"$ref": "#/definitions/dto.SigninResponse"
						},
						"headers": {
							"access_token": {
								"type": "string",
								"description": "Session token"
							}
						}
					},
					"400": {
						"description": "Malformed Authorization header",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unknown username or wrong password",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/user/signout": {
			"post": {
				"description": "End the session identified by the bearer token",
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Sign out",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Signed out",
						"schema": {
							"$ref": "#/definitions/dto.SignoutResponse"
						}
					},
					"401": {
						"description": "User is not signed in",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/user/signin/google": {
			"get": {
				"description": "Returns the Google consent URL. The state is also set as a cookie and checked on callback.",
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Google OAuth login",
				"responses": {
					"200": {
						"description": "Google OAuth URL",
						"schema": {
							"$ref": "#/definitions/dto.GoogleLoginResponse"
						}
					}
				}
			}
		},
		"/user/signin/google/callback": {
			"get": {
				"description": "Signs in the account registered under the verified Google e-mail, creating it on first use",
				"produces": [
					"application/json"
				],
				"tags": [
					"user"
				],
				"summary": "Google OAuth callback",
				"parameters": [
					{
						"type": "string",
						"description": "Authorization code from Google",
						"name": "code",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "State returned by /user/signin/google",
						"name": "state",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Signed in",
						"schema": {
							"$ref": "#/definitions/dto.SigninResponse"
						},
						"headers": {
							"access_token": {
								"type": "string",
								"description": "Session token"
							}
						}
					},
					"400": {
						"description": "Missing code or state mismatch",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Google rejected the authorization",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/userprofile/{userId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"userprofile"
				],
				"summary": "Get user profile",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "User uuid",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "User profile",
						"schema": {
							"$ref": "#/definitions/dto.UserDetailsResponse"
						}
					},
					"403": {
						"description": "Not signed in or signed out",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/question/create": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"question"
				],
				"summary": "Create a question",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"description": "Question content",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.QuestionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Question created",
						"schema": {
							"$ref": "#/definitions/dto.QuestionResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Not signed in or signed out",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/question/all": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"question"
				],
				"summary": "List all questions",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Questions",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.QuestionDetailsResponse"
							}
						}
					},
					"403": {
						"description": "Not signed in or signed out",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/question/all/{userId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"question"
				],
				"summary": "List questions of a user",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "User uuid",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Questions",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.QuestionDetailsResponse"
							}
						}
					},
					"403": {
						"description": "Not signed in or signed out",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found or has no questions",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/question/edit/{questionId}": {
			"put": {
				"description": "Only the owner may edit a question",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"question"
				],
				"summary": "Edit a question",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question uuid",
						"name": "questionId",
						"in": "path",
						"required": true
					},
					{
						"description": "New content",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.QuestionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Question edited",
						"schema": {
							"$ref": "#/definitions/dto.QuestionResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Not signed in, signed out or not the owner",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Question not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/question/delete/{questionId}": {
			"delete": {
				"description": "The owner or an admin may delete a question",
				"produces": [
					"application/json"
				],
				"tags": [
					"question"
				],
				"summary": "Delete a question",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question uuid",
						"name": "questionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Question deleted",
						"schema": {
							"$ref": "#/definitions/dto.QuestionResponse"
						}
					},
					"403": {
						"description": "Not signed in, signed out or not allowed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Question not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/question/{questionId}/answer/create": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"answer"
				],
				"summary": "Answer a question",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question uuid",
						"name": "questionId",
						"in": "path",
						"required": true
					},
					{
						"description": "Answer content",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AnswerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Answer created",
						"schema": {
							"$ref": "#/definitions/dto.AnswerResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Not signed in or signed out",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Question not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/answer/edit/{answerId}": {
			"put": {
				"description": "Only the owner may edit an answer",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"answer"
				],
				"summary": "Edit an answer",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Answer uuid",
						"name": "answerId",
						"in": "path",
						"required": true
					},
					{
						"description": "New content",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AnswerEditRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Answer edited",
						"schema": {
							"$ref": "#/definitions/dto.AnswerResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "Not signed in, signed out or not the owner",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Answer not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/answer/delete/{answerId}": {
			"delete": {
				"description": "The owner or an admin may delete an answer",
				"produces": [
					"application/json"
				],
				"tags": [
					"answer"
				],
				"summary": "Delete an answer",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Answer uuid",
						"name": "answerId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Answer deleted",
						"schema": {
							"$ref": "#/definitions/dto.AnswerResponse"
						}
					},
					"403": {
						"description": "Not signed in, signed out or not allowed",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Answer not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/answer/all/{questionId}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"answer"
				],
				"summary": "List answers of a question",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "Question uuid",
						"name": "questionId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "Answers",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.AnswerDetailsResponse"
							}
						}
					},
					"403": {
						"description": "Not signed in or signed out",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Question not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/admin/user/{userId}": {
			"delete": {
				"description": "Admin only. Removes the user with their sessions, questions and answers.",
				"produces": [
					"application/json"
				],
				"tags": [
					"admin"
				],
				"summary": "Delete a user",
				"parameters": [
					{
						"type": "string",
						"description": "Bearer access token",
						"name": "Authorization",
						"in": "header",
						"required": true
					},
					{
						"type": "string",
						"description": "User uuid",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "User deleted",
						"schema": {
							"$ref": "#/definitions/dto.UserDeleteResponse"
						}
					},
					"403": {
						"description": "Not signed in, signed out or not an admin",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.AnswerDetailsResponse": {
			"type": "object",
			"properties": {
				"answerContent": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"questionContent": {
					"type": "string"
				}
			}
		},
		"dto.AnswerEditRequest": {
			"type": "object",
			"required": [
				"content"
			],
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"dto.AnswerRequest": {
			"type": "object",
			"required": [
				"answer"
			],
			"properties": {
				"answer": {
					"type": "string"
				}
			}
		},
		"dto.AnswerResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.ErrorResponse": {
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
		"dto.GoogleLoginResponse": {
			"type": "object",
			"properties": {
				"auth_url": {
					"type": "string"
				},
				"state": {
					"type": "string"
				}
			}
		},
		"dto.HealthResponse": {
			"type": "object",
			"properties": {
				"details": {},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.QuestionDetailsResponse": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				},
				"id": {
					"type": "string"
				}
			}
		},
		"dto.QuestionRequest": {
			"type": "object",
			"required": [
				"content"
			],
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"dto.QuestionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.SigninResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.SignoutResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.SignupUserRequest": {
			"type": "object",
			"required": [
				"emailAddress",
				"password",
				"userName"
			],
			"properties": {
				"aboutMe": {
					"type": "string"
				},
				"contactNumber": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"dob": {
					"type": "string"
				},
				"emailAddress": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"userName": {
					"type": "string"
				}
			}
		},
		"dto.SignupUserResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.UserDeleteResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"dto.UserDetailsResponse": {
			"type": "object",
			"properties": {
				"aboutMe": {
					"type": "string"
				},
				"contactNumber": {
					"type": "string"
				},
				"country": {
					"type": "string"
				},
				"dob": {
					"type": "string"
				},
				"emailAddress": {
					"type": "string"
				},
				"firstName": {
					"type": "string"
				},
				"lastName": {
					"type": "string"
				},
				"userName": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Quora Backend API",
	Description:      "Question and answer API with user accounts, sessions and admin moderation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
