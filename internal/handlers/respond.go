package handlers

import (
	"net/http"

	"quiz-platform/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fail maps a typed service error to its status code. Anything untyped is
// reported as a generic 500 so no internal detail leaks.
func fail(c *gin.Context, err error) {
	status := service.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		if _, ok := err.(*service.Error); !ok {
			message = "Internal server error"
		}
	}
	c.JSON(status, gin.H{"message": message})
}

// objectID parses a path parameter, failing the request with 404 when it is
// not a valid id: a malformed reference can never name an existing entity.
func objectID(c *gin.Context, param, notFoundMsg string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return primitive.NilObjectID, false
	}
	return id, true
}
