// Package docs holds the Swagger spec served at /swagger/index.html.
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
				"tags": [
					"system"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/token": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Issue controller token",
				"produces": [
					"application/json"
				],
				"description": "Exchanges the controller PIN for a bearer token. Returns 404 when no PIN is configured.",
				"parameters": [
					{
						"description": "PIN payload",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.TokenRequest"
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
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/v1/workouts": {
			"get": {
				"tags": [
					"workouts"
				],
				"summary": "List workouts",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Search text",
						"name": "q",
						"in": "query"
					},
					{
						"enum": [
							"name",
							"duration"
						],
						"type": "string",
						"description": "Sort key",
						"name": "sort",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/workouts/import": {
			"post": {
				"tags": [
					"workouts"
				],
				"summary": "Import workout",
				"produces": [
					"application/json"
				],
				"description": "Accepts an exported workout; a new id is assigned",
				"parameters": [
					{
						"description": "Exported workout",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.Workout"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.WorkoutSummary"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/workouts/{id}": {
			"get": {
				"tags": [
					"workouts"
				],
				"summary": "Get workout",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Workout id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.WorkoutSummary"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/workouts/{id}/export": {
			"get": {
				"tags": [
					"workouts"
				],
				"summary": "Export workout",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Workout id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Workout"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Select workout",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Selection payload",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.SelectSessionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session/start": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Start or resume session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session/pause": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Pause session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session/stop": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Stop session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session/reset": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Reset session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session/resync": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Resync session clock",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/session/state": {
			"get": {
				"tags": [
					"session"
				],
				"summary": "Get session state",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/service.SessionSnapshot"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/progress": {
			"get": {
				"tags": [
					"progress"
				],
				"summary": "Progress summary",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"progress"
				],
				"summary": "Clear all progress",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/progress/{id}": {
			"get": {
				"tags": [
					"progress"
				],
				"summary": "Workout progress",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Workout id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.WorkoutProgress"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"progress"
				],
				"summary": "Reset workout progress",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Workout id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/audio": {
			"get": {
				"tags": [
					"audio"
				],
				"summary": "Get audio settings",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.AudioSettings"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"audio"
				],
				"summary": "Update audio settings",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Partial settings",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/service.AudioUpdate"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.AudioSettings"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/audio/test": {
			"post": {
				"tags": [
					"audio"
				],
				"summary": "Play test cue",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/v1/logs": {
			"get": {
				"tags": [
					"logs"
				],
				"summary": "List session events",
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Start of range",
						"name": "from",
						"in": "query"
					},
					{
						"type": "string",
						"description": "End of range. Date-only treated as end of day.",
						"name": "to",
						"in": "query"
					},
					{
						"enum": [
							"START",
							"PAUSE",
							"STOP",
							"RESET",
							"RESYNC",
							"PHASE_CHANGE",
							"COMPLETE"
						],
						"type": "string",
						"description": "Event type",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Workout id",
						"name": "workout_id",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Maximum events, 0 for no limit",
						"name": "limit",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"handlers.TokenRequest": {
			"type": "object",
			"properties": {
				"pin": {
					"type": "string",
					"example": "4321"
				}
			}
		},
		"handlers.SelectSessionRequest": {
			"type": "object",
			"properties": {
				"workout_id": {
					"type": "string",
					"example": "quick-blast"
				},
				"config": {
					"$ref": "#/definitions/timer.Config"
				},
				"resume": {
					"type": "boolean",
					"example": true
				}
			}
		},
		"timer.Config": {
			"type": "object",
			"properties": {
				"work_time": {
					"type": "integer"
				},
				"rest_time": {
					"type": "integer"
				},
				"pair_rest_time": {
					"type": "integer"
				}
			}
		},
		"models.Exercise": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				}
			}
		},
		"models.WorkoutPair": {
			"type": "object",
			"properties": {
				"exercise_a": {
					"$ref": "#/definitions/models.Exercise"
				},
				"exercise_b": {
					"$ref": "#/definitions/models.Exercise"
				}
			}
		},
		"models.Workout": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"pairs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.WorkoutPair"
					}
				},
				"rounds": {
					"type": "integer"
				},
				"rest_between_pairs": {
					"type": "integer"
				},
				"imported_at": {
					"type": "string"
				}
			}
		},
		"models.TimerState": {
			"type": "object",
			"properties": {
				"is_active": {
					"type": "boolean"
				},
				"is_paused": {
					"type": "boolean"
				},
				"current_phase": {
					"type": "string"
				},
				"time_remaining": {
					"type": "integer"
				},
				"current_round": {
					"type": "integer"
				},
				"current_pair_index": {
					"type": "integer"
				}
			}
		},
		"models.WorkoutProgress": {
			"type": "object",
			"properties": {
				"workout_id": {
					"type": "string"
				},
				"current_pair_index": {
					"type": "integer"
				},
				"current_round": {
					"type": "integer"
				},
				"is_completed": {
					"type": "boolean"
				},
				"completed_at": {
					"type": "string"
				}
			}
		},
		"models.AudioSettings": {
			"type": "object",
			"properties": {
				"enabled": {
					"type": "boolean"
				},
				"volume": {
					"type": "number"
				}
			}
		},
		"service.AudioUpdate": {
			"type": "object",
			"properties": {
				"enabled": {
					"type": "boolean"
				},
				"volume": {
					"type": "number"
				}
			}
		},
		"service.SessionSnapshot": {
			"type": "object",
			"properties": {
				"workout_id": {
					"type": "string"
				},
				"workout_name": {
					"type": "string"
				},
				"state": {
					"$ref": "#/definitions/models.TimerState"
				},
				"config": {
					"$ref": "#/definitions/timer.Config"
				},
				"current_exercise": {
					"type": "string"
				},
				"exercise_name": {
					"type": "string"
				},
				"progress_percentage": {
					"type": "number"
				},
				"is_complete": {
					"type": "boolean"
				},
				"resumable": {
					"type": "boolean"
				},
				"pair_count": {
					"type": "integer"
				},
				"rounds": {
					"type": "integer"
				},
				"total_seconds": {
					"type": "integer"
				}
			}
		},
		"service.WorkoutSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"pairs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.WorkoutPair"
					}
				},
				"rounds": {
					"type": "integer"
				},
				"rest_between_pairs": {
					"type": "integer"
				},
				"total_duration": {
					"type": "integer"
				},
				"formatted_total": {
					"type": "string"
				},
				"formatted_rest": {
					"type": "string"
				},
				"completed": {
					"type": "boolean"
				}
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
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"Tabata Timer API",
	Description:	  "Controls a tabata workout session and streams its state and audio cues.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
