// Package docs holds the OpenAPI description served under /v1/swagger.
// Regenerate with go generate ./cmd/api after changing handler annotations.
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
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Service health",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "User Registration",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "register",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.RegisterRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "User Login",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "login",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/auth/profile": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current user profile",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/users": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "List users",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/users/{user_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Get a user",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "user_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Update a user",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "user_id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.UpdateUserRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Delete a user",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "user_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/applicants": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applicants"
				],
				"summary": "List applicants",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/applicants/{applicant_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applicants"
				],
				"summary": "Get an applicant",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applicants"
				],
				"summary": "Update an applicant profile",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "applicant",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.UpdateApplicantRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applicants"
				],
				"summary": "Delete an applicant",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/applicants/{applicant_id}/applications": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applicants"
				],
				"summary": "Applications filed by an applicant",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/applicants/{applicant_id}/experiences": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applicants"
				],
				"summary": "Work experience of an applicant",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/companies": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "List companies",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/companies/{company_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Get a company",
				"parameters": [
					{
						"name": "company_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Update a company profile",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "company_id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "company",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.UpdateCompanyRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Delete a company",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "company_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/companies/{company_id}/jobs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"companies"
				],
				"summary": "Jobs posted by a company",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "company_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/jobs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "List jobs",
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Create a new job",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "job",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.CreateJobRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/jobs/search": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Search jobs",
				"parameters": [
					{
						"name": "q",
						"in": "query",
						"required": false,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/jobs/{job_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Get a job",
				"parameters": [
					{
						"name": "job_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Update a job",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "job_id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "job",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.UpdateJobRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"jobs"
				],
				"summary": "Delete a job",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "job_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/experiences": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"experiences"
				],
				"summary": "List an applicant's experience",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "query",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"experiences"
				],
				"summary": "Add work experience",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "applicant_id",
						"in": "query",
						"required": true,
						"type": "integer"
					},
					{
						"name": "experience",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.CreateExperienceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/experiences/{experience_id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"experiences"
				],
				"summary": "Update work experience",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "experience_id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "experience",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.UpdateExperienceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"experiences"
				],
				"summary": "Delete work experience",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "experience_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/applications": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "List applications",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "page",
						"in": "query",
						"required": false,
						"type": "integer"
					},
					{
						"name": "page_size",
						"in": "query",
						"required": false,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Apply for a job",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "application",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.ApplyRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		},
		"/applications/{application_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Get an application",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "application_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"put": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Update an application",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "application_id",
						"in": "path",
						"required": true,
						"type": "integer"
					},
					{
						"name": "application",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/v1.UpdateApplicationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"applications"
				],
				"summary": "Withdraw an application",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "application_id",
						"in": "path",
						"required": true,
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/response.Response"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"response.Response": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"data": {},
				"error": {},
				"request_id": {
					"type": "string"
				}
			}
		},
		"v1.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"linkedin": {
					"type": "string"
				},
				"github": {
					"type": "string"
				},
				"resume": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				},
				"company_name": {
					"type": "string"
				},
				"industry": {
					"type": "string"
				},
				"brief": {
					"type": "string"
				},
				"website": {
					"type": "string"
				},
				"logo": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password",
				"role",
				"name"
			]
		},
		"v1.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"email",
				"password"
			]
		},
		"v1.UpdateUserRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"v1.UpdateApplicantRequest": {
			"type": "object",
			"properties": {
				"linkedin": {
					"type": "string"
				},
				"github": {
					"type": "string"
				},
				"resume": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				}
			}
		},
		"v1.UpdateCompanyRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"industry": {
					"type": "string"
				},
				"logo": {
					"type": "string"
				},
				"brief": {
					"type": "string"
				},
				"website": {
					"type": "string"
				}
			}
		},
		"v1.CreateJobRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"application_url": {
					"type": "string"
				},
				"salary": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"job_type": {
					"type": "string"
				}
			},
			"required": [
				"title",
				"description",
				"location"
			]
		},
		"v1.UpdateJobRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"application_url": {
					"type": "string"
				},
				"salary": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"job_type": {
					"type": "string"
				}
			}
		},
		"v1.CreateExperienceRequest": {
			"type": "object",
			"properties": {
				"company_name": {
					"type": "string"
				},
				"job_title": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				}
			},
			"required": [
				"company_name",
				"job_title",
				"start_date"
			]
		},
		"v1.UpdateExperienceRequest": {
			"type": "object",
			"properties": {
				"company_name": {
					"type": "string"
				},
				"job_title": {
					"type": "string"
				},
				"start_date": {
					"type": "string"
				},
				"end_date": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"skills": {
					"type": "string"
				}
			}
		},
		"v1.ApplyRequest": {
			"type": "object",
			"properties": {
				"job_id": {
					"type": "integer"
				},
				"status": {
					"type": "string"
				}
			},
			"required": [
				"job_id"
			]
		},
		"v1.UpdateApplicationRequest": {
			"type": "object",
			"properties": {
				"company_name": {
					"type": "string"
				},
				"job_title": {
					"type": "string"
				},
				"job_url": {
					"type": "string"
				},
				"status": {
					"type": "string"
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
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Job Portal API",
	Description:      "Job board backend: accounts, company and applicant profiles, jobs, applications and full-text job search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
