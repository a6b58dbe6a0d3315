package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	MsgNoData        = "No data found"
	MsgRouteNotFound = "Route not found"
	MsgGenericError  = "Something went wrong"
)

// MessageBody is the payload of informational responses.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the payload of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes data as a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message writes {"message": msg} with the given status.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageBody{Message: msg})
}

// Error writes {"error": msg} with the given status and stops the chain.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: errorMessage})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// UnsupportedMediaType sends a 415 error response.
func UnsupportedMediaType(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnsupportedMediaType, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}

// SomethingWentWrong hides the cause of a failed operation.
func SomethingWentWrong(c *gin.Context) {
	InternalServerError(c, MsgGenericError)
}

// NoData is the placeholder for an empty report.
func NoData(c *gin.Context) {
	Message(c, http.StatusOK, MsgNoData)
}

// RouteNotFound answers any unmatched path or method.
func RouteNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, MessageBody{Message: MsgRouteNotFound})
}
