package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/models"
	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP status codes.
// Everything here is a recoverable business condition except StorageError.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr     *services.ValidationError
		authenticationErr *services.AuthenticationError
		authorizationErr  *services.AuthorizationError
		notFoundErr       *services.NotFoundError
		conflictErr       *services.ConflictError
		storageErr        *services.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &authenticationErr):
		c.JSON(http.StatusUnauthorized, gin.H{"error": authenticationErr.Message})
	case errors.As(err, &authorizationErr):
		c.JSON(http.StatusForbidden, gin.H{"error": authorizationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Message})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
	case errors.As(err, &storageErr):
		log.Printf("[respondServiceError] %v", storageErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure, please retry"})
	default:
		log.Printf("[respondServiceError] unexpected: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// currentUser pulls the authenticated user placed in the context by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication context missing"})
		return nil, false
	}

	user, ok := value.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid authentication context"})
		return nil, false
	}

	return user, true
}
