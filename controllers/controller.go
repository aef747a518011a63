// File: controllers/controller.go
package controllers

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"pasteleria-backend/cache"
)

// fetchLimit bounds every list query issued by this backend.
const fetchLimit = 1000

// Controller carries the dependencies shared by all handlers.
type Controller struct {
	DB              *mongo.Database
	Cld             *cloudinary.Cloudinary
	PasetoSecretKey []byte
	Pages           *cache.Pages
}

// Every mutation resolves to one of three shapes: success, a per-field
// validation error map, or a single operational error string.

func successResult() gin.H {
	return gin.H{"success": true}
}

func validationResult(errs map[string][]string) gin.H {
	return gin.H{"success": false, "errors": errs}
}

func operationalResult(msg string) gin.H {
	return gin.H{"success": false, "error": msg}
}
