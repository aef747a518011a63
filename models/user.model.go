// File: models/user.model.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Default values applied when a profile has to be synthesized from auth
// data alone.
const (
	DefaultUserName = "Usuario"
	DefaultUserRole = "cliente"
	RoleAdmin       = "admin"
	RoleCustomer    = "cliente"
)

// UserProfile is the canonical profile returned to the UI. Passwords never
// leave the server; the hash lives only on UserDoc.
type UserProfile struct {
	UID          string `json:"uid" bson:"uid"`
	Nombre       string `json:"nombre" bson:"nombre"`
	Correo       string `json:"correo" bson:"correo"`
	Rol          string `json:"rol" bson:"rol"`
	ImagenPerfil string `json:"imagen_perfil,omitempty" bson:"imagen_perfil,omitempty"`
}

// UserDoc is the stored user document. Like products, user documents exist
// in two field-name generations; both are read, canonical preferred.
type UserDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UID             string             `bson:"uid"`
	Nombre          string             `bson:"nombre"`
	Name            string             `bson:"name"`
	Correo          string             `bson:"correo"`
	Email           string             `bson:"email"`
	Rol             string             `bson:"rol"`
	Role            string             `bson:"role"`
	ImagenPerfil    string             `bson:"imagen_perfil"`
	ProfileImageURL string             `bson:"profileImageUrl"`
	Password        string             `bson:"password"`
}

// UIDAny returns the stored uid, falling back to the document id for user
// documents written before the uid field existed.
func (d *UserDoc) UIDAny() string {
	if d.UID != "" {
		return d.UID
	}
	if !d.ID.IsZero() {
		return d.ID.Hex()
	}
	return ""
}

// EmailAny returns whichever email field the document carries.
func (d *UserDoc) EmailAny() string {
	return firstNonEmpty(d.Email, d.Correo)
}

// RoleAny returns whichever role field the document carries.
func (d *UserDoc) RoleAny() string {
	return firstNonEmpty(d.Rol, d.Role)
}

// Identity is what the authentication step establishes about a user before
// any profile document is consulted.
type Identity struct {
	UID         string
	DisplayName string
	Email       string
}

// MergeProfile combines a stored document with the auth identity, resolving
// alias pairs and filling defaults. A nil doc synthesizes a profile from the
// identity alone; the result is never persisted.
func MergeProfile(id Identity, doc *UserDoc) UserProfile {
	if doc == nil {
		return UserProfile{
			UID:    id.UID,
			Nombre: firstNonEmpty(id.DisplayName, DefaultUserName),
			Correo: id.Email,
			Rol:    DefaultUserRole,
		}
	}
	return UserProfile{
		UID:          id.UID,
		Nombre:       firstNonEmpty(doc.Nombre, doc.Name, id.DisplayName, DefaultUserName),
		Correo:       firstNonEmpty(doc.Correo, doc.Email, id.Email),
		Rol:          firstNonEmpty(doc.Rol, doc.Role, DefaultUserRole),
		ImagenPerfil: firstNonEmpty(doc.ImagenPerfil, doc.ProfileImageURL),
	}
}

// IsCustomer reports whether a user document represents a customer, checking
// the canonical role field and its legacy alias.
func (d *UserDoc) IsCustomer() bool {
	return d.RoleAny() == RoleCustomer
}
