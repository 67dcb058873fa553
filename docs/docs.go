// Package docs holds the OpenAPI document served at /swagger. Regenerate it
// with `swag init -g cmd/main.go` after changing controller annotations.
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
        "/quizzes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Quizzes"],
                "summary": "List all quizzes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.QuizSummaryDTO"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{quiz_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Quizzes"],
                "summary": "Get a quiz with its questions",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizDetailDTO"}},
                    "400": {"description": "Invalid Quiz ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Quiz not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/quizzes/{quiz_id}/with_answers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Quizzes"],
                "summary": "Get a quiz including correct answers",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuizWithAnswersDTO"}},
                    "404": {"description": "Quiz not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "Register a student",
                "parameters": [{"description": "Name and email", "name": "student", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StudentRegisterDTO"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.StudentAuthResponse"}},
                    "400": {"description": "Invalid body or email already registered", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "Log a student in by email",
                "parameters": [{"description": "Email", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.StudentLoginDTO"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StudentAuthResponse"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/{student_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "Get a student",
                "parameters": [{"type": "integer", "description": "Student ID", "name": "student_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StudentDTO"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students/{student_id}/attempts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "List a student's attempts",
                "parameters": [{"type": "integer", "description": "Student ID", "name": "student_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.AttemptDTO"}}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/attempts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Attempts"],
                "summary": "Start or resume a quiz attempt",
                "parameters": [{"description": "Quiz and student IDs", "name": "attempt", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AttemptStartDTO"}}],
                "responses": {
                    "200": {"description": "Existing attempt resumed", "schema": {"$ref": "#/definitions/dto.AttemptDTO"}},
                    "201": {"description": "Attempt created", "schema": {"$ref": "#/definitions/dto.AttemptDTO"}},
                    "404": {"description": "Quiz or student not found, or quiz has no questions", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/attempts/{attempt_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Attempts"],
                "summary": "Get an attempt",
                "parameters": [{"type": "integer", "description": "Attempt ID", "name": "attempt_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AttemptDTO"}},
                    "404": {"description": "Attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/attempts/{attempt_id}/current_question": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Attempts"],
                "summary": "Get the question the attempt is on",
                "parameters": [{"type": "integer", "description": "Attempt ID", "name": "attempt_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrentQuestionDTO"}},
                    "400": {"description": "Quiz already completed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/attempts/{attempt_id}/answer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Attempts"],
                "summary": "Answer the current question",
                "parameters": [
                    {"type": "integer", "description": "Attempt ID", "name": "attempt_id", "in": "path", "required": true},
                    {"description": "Answer to the current question", "name": "answer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AnswerSubmitDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AnswerSubmitResponse"}},
                    "400": {"description": "Quiz already completed, missing or invalid choice", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/attempts/{attempt_id}/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Attempts"],
                "summary": "Get the graded results of a completed attempt",
                "parameters": [{"type": "integer", "description": "Attempt ID", "name": "attempt_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AttemptResultsDTO"}},
                    "400": {"description": "Quiz not yet completed", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/quizzes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Create a quiz with its questions",
                "parameters": [{"description": "Quiz with MCQs and FTQs", "name": "quiz", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.QuizCreateDTO"}}],
                "responses": {
                    "201": {"description": "Quiz created successfully", "schema": {"$ref": "#/definitions/dto.QuizWithAnswersDTO"}},
                    "400": {"description": "Invalid input data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/quizzes/{quiz_id}": {
            "delete": {
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Delete a quiz",
                "parameters": [{"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Quiz not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/quizzes/{quiz_id}/mcqs": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Add a multiple choice question to a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true},
                    {"description": "Question with choices", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.MCQCreateDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.MCQWithAnswersDTO"}},
                    "404": {"description": "Quiz not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/quizzes/{quiz_id}/ftqs": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Add a free text question to a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "quiz_id", "in": "path", "required": true},
                    {"description": "Question and points", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FTQCreateDTO"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.FTQDTO"}},
                    "404": {"description": "Quiz not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/questions/{ref}": {
            "delete": {
                "tags": ["Admin - Quizzes"],
                "summary": "(Admin) Delete a question",
                "parameters": [{"type": "string", "description": "Question reference, e.g. mcq:12", "name": "ref", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Invalid question reference", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/admin/attempts/{attempt_id}": {
            "delete": {
                "tags": ["Admin - Attempts"],
                "summary": "(Admin) Delete an attempt and its answers",
                "parameters": [{"type": "integer", "description": "Attempt ID", "name": "attempt_id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Attempt not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "kind": {"type": "string"}, "details": {"type": "array", "items": {"type": "string"}}}},
        "dto.StudentDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}},
        "dto.StudentRegisterDTO": {"type": "object", "required": ["name", "email"], "properties": {"name": {"type": "string"}, "email": {"type": "string"}}},
        "dto.StudentLoginDTO": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "dto.StudentAuthResponse": {"type": "object", "properties": {"message": {"type": "string"}, "student": {"$ref": "#/definitions/dto.StudentDTO"}}},
        "dto.QuizSummaryDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "dto.ChoiceDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "content": {"type": "string"}}},
        "dto.ChoiceWithAnswerDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "content": {"type": "string"}, "is_correct": {"type": "boolean"}}},
        "dto.MCQDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "question": {"type": "string"}, "points": {"type": "integer"}, "choices": {"type": "array", "items": {"$ref": "#/definitions/dto.ChoiceDTO"}}}},
        "dto.MCQWithAnswersDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "question": {"type": "string"}, "points": {"type": "integer"}, "choices": {"type": "array", "items": {"$ref": "#/definitions/dto.ChoiceWithAnswerDTO"}}}},
        "dto.FTQDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "question": {"type": "string"}, "points": {"type": "integer"}}},
        "dto.QuizDetailDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "total_points": {"type": "integer"}, "mcqs": {"type": "array", "items": {"$ref": "#/definitions/dto.MCQDTO"}}, "ftqs": {"type": "array", "items": {"$ref": "#/definitions/dto.FTQDTO"}}}},
        "dto.QuizWithAnswersDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "total_points": {"type": "integer"}, "mcqs": {"type": "array", "items": {"$ref": "#/definitions/dto.MCQWithAnswersDTO"}}, "ftqs": {"type": "array", "items": {"$ref": "#/definitions/dto.FTQDTO"}}, "created_at": {"type": "string"}}},
        "dto.ChoiceCreateDTO": {"type": "object", "required": ["content"], "properties": {"content": {"type": "string"}, "is_correct": {"type": "boolean"}}},
        "dto.MCQCreateDTO": {"type": "object", "required": ["question"], "properties": {"question": {"type": "string"}, "points": {"type": "integer", "minimum": 0}, "choices": {"type": "array", "items": {"$ref": "#/definitions/dto.ChoiceCreateDTO"}}}},
        "dto.FTQCreateDTO": {"type": "object", "required": ["question", "points"], "properties": {"question": {"type": "string"}, "points": {"type": "integer", "minimum": 0}}},
        "dto.QuizCreateDTO": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}, "mcqs": {"type": "array", "items": {"$ref": "#/definitions/dto.MCQCreateDTO"}}, "ftqs": {"type": "array", "items": {"$ref": "#/definitions/dto.FTQCreateDTO"}}}},
        "dto.AttemptStartDTO": {"type": "object", "required": ["quiz_id", "student_id"], "properties": {"quiz_id": {"type": "integer"}, "student_id": {"type": "integer"}}},
        "dto.AttemptDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "student": {"$ref": "#/definitions/dto.StudentDTO"}, "quiz": {"$ref": "#/definitions/dto.QuizSummaryDTO"}, "time_start": {"type": "string"}, "time_end": {"type": "string"}, "score": {"type": "number"}, "status": {"type": "string"}, "current_question": {"type": "string"}, "duration": {"type": "string"}}},
        "dto.CurrentQuestionDTO": {"type": "object", "properties": {"question_id": {"type": "integer"}, "question_type": {"type": "string"}, "question_text": {"type": "string"}, "points": {"type": "integer"}, "choices": {"type": "array", "items": {"$ref": "#/definitions/dto.ChoiceDTO"}}, "question_number": {"type": "integer"}, "total_questions": {"type": "integer"}, "quiz_id": {"type": "integer"}}},
        "dto.AnswerSubmitDTO": {"type": "object", "properties": {"choice_id": {"type": "integer"}, "answer": {"type": "string"}, "free_text_response": {"type": "string"}}},
        "dto.AnswerSubmitResponse": {"type": "object", "properties": {"message": {"type": "string"}, "next_question_available": {"type": "boolean"}, "is_correct": {"type": "boolean"}}},
        "dto.AnswerResultDTO": {"type": "object", "properties": {"question_text": {"type": "string"}, "question_type": {"type": "string"}, "is_correct": {"type": "boolean"}, "points_earned": {"type": "integer"}, "correct_answer": {"type": "string"}, "student_answer": {"type": "string"}}},
        "dto.AttemptResultsDTO": {"type": "object", "properties": {"id": {"type": "integer"}, "student": {"$ref": "#/definitions/dto.StudentDTO"}, "quiz": {"$ref": "#/definitions/dto.QuizSummaryDTO"}, "time_start": {"type": "string"}, "time_end": {"type": "string"}, "score": {"type": "number"}, "total_questions": {"type": "integer"}, "correct_answers": {"type": "integer"}, "total_points_earned": {"type": "integer"}, "total_possible_points": {"type": "integer"}, "time_taken": {"type": "string"}, "time_taken_seconds": {"type": "number"}, "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerResultDTO"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "QuizWhiz API",
	Description:      "Students register, take quizzes one question at a time and get graded results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
