// File: controllers/auth.controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"pasteleria-backend/middleware"
	"pasteleria-backend/models"
)

const (
	sessionMaxAge = 24 * time.Hour
	tokenFooter   = "pasteleria-admin"
)

// LoginRequest is the login form payload.
type LoginRequest struct {
	Correo   string `json:"correo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted credentials, resolves the user's profile and
// sets the session cookie.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cred models.UserDoc
	users := ctrl.DB.Collection("users")
	err := users.FindOne(ctx, bson.M{"$or": []bson.M{
		{"correo": req.Correo},
		{"email": req.Correo},
	}}).Decode(&cred)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	identity := models.Identity{
		UID:         cred.UIDAny(),
		DisplayName: firstNonEmpty(cred.Nombre, cred.Name),
		Email:       req.Correo,
	}
	profile := ctrl.ResolveProfile(ctx, identity)

	token, err := ctrl.issueSessionToken(identity.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar la sesión"})
		return
	}
	c.SetCookie(middleware.SessionCookie, token, int(sessionMaxAge.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// Logout clears the session cookie.
func (ctrl *Controller) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, successResult())
}

// Session returns the profile for the current session.
func (ctrl *Controller) Session(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uid := c.GetString("uid")
	profile := ctrl.ResolveProfile(ctx, models.Identity{UID: uid})
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ResolveProfile finds the stored profile for an authenticated identity.
// Lookup order: uid key, then the canonical email field, then the legacy
// one. When nothing matches, or any lookup fails outright, a profile is
// synthesized from the identity so the UI never blocks on profile errors.
// Authorization never depends on the result, only display does.
func (ctrl *Controller) ResolveProfile(ctx context.Context, id models.Identity) models.UserProfile {
	users := ctrl.DB.Collection("users")

	var doc models.UserDoc
	if err := users.FindOne(ctx, bson.M{"uid": id.UID}).Decode(&doc); err == nil {
		return models.MergeProfile(id, &doc)
	}

	if id.Email != "" {
		if err := users.FindOne(ctx, bson.M{"correo": id.Email}).Decode(&doc); err == nil {
			return models.MergeProfile(id, &doc)
		}
		if err := users.FindOne(ctx, bson.M{"email": id.Email}).Decode(&doc); err == nil {
			return models.MergeProfile(id, &doc)
		}
	}

	return models.MergeProfile(id, nil)
}

func (ctrl *Controller) issueSessionToken(uid string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    uid,
		IssuedAt:   now,
		Expiration: now.Add(sessionMaxAge),
	}
	return paseto.NewV2().Encrypt(ctrl.PasetoSecretKey, jsonToken, tokenFooter)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
