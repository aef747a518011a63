// File: models/product.model.go
package models

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the canonical product record. The collection still contains
// documents written with the historical English field names; those are
// absorbed once at decode time (see ProductDoc), never at read sites.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Nombre      string             `json:"nombre" bson:"nombre"`
	Descripcion string             `json:"descripcion" bson:"descripcion"`
	Precio      float64            `json:"precio" bson:"precio"`
	Stock       int                `json:"stock" bson:"stock"`
	Categoria   string             `json:"categoria" bson:"categoria"`
	ImagenURL   string             `json:"imagen_url" bson:"imagen_url"`
}

// ProductDoc carries both the canonical and the legacy field names so a
// single decode can see whichever generation of document is stored.
type ProductDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nombre      string             `bson:"nombre"`
	Name        string             `bson:"name"`
	Descripcion string             `bson:"descripcion"`
	Description string             `bson:"description"`
	Precio      *float64           `bson:"precio"`
	Price       *float64           `bson:"price"`
	Stock       *int               `bson:"stock"`
	Categoria   string             `bson:"categoria"`
	Category    string             `bson:"category"`
	ImagenURL   string             `bson:"imagen_url"`
	ImageURL    string             `bson:"imageUrl"`
	ImageURLAlt string             `bson:"image_url"`
}

// Normalize resolves each alias pair, canonical field first.
func (d *ProductDoc) Normalize() Product {
	p := Product{
		ID:          d.ID,
		Nombre:      firstNonEmpty(d.Nombre, d.Name),
		Descripcion: firstNonEmpty(d.Descripcion, d.Description),
		Categoria:   firstNonEmpty(d.Categoria, d.Category),
		ImagenURL:   firstNonEmpty(d.ImagenURL, d.ImageURL, d.ImageURLAlt),
	}
	if d.Precio != nil {
		p.Precio = *d.Precio
	} else if d.Price != nil {
		p.Precio = *d.Price
	}
	if d.Stock != nil {
		p.Stock = *d.Stock
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ProductForm is the raw form submission for create/update. Numeric fields
// arrive as strings and are coerced during validation so a bad value can be
// reported against its field instead of failing the whole decode.
type ProductForm struct {
	Nombre      string `schema:"nombre"`
	Descripcion string `schema:"descripcion"`
	Precio      string `schema:"precio"`
	Stock       string `schema:"stock"`
	Categoria   string `schema:"categoria"`
	ImagenURL   string `schema:"imagen_url"`
}

// Validate checks the submitted fields and returns per-field error messages.
// An empty map means the form is valid and Product() may be called.
func (f *ProductForm) Validate() map[string][]string {
	errs := map[string][]string{}

	if utf8.RuneCountInString(strings.TrimSpace(f.Nombre)) < 3 {
		errs["nombre"] = append(errs["nombre"], "El nombre debe tener al menos 3 caracteres.")
	}
	if utf8.RuneCountInString(strings.TrimSpace(f.Descripcion)) < 10 {
		errs["descripcion"] = append(errs["descripcion"], "La descripción debe tener al menos 10 caracteres.")
	}

	// ParseFloat accepts "NaN" and "Inf", neither of which compares below
	// zero; both would later break JSON rendering of the stored product.
	precio, err := strconv.ParseFloat(strings.TrimSpace(f.Precio), 64)
	if err != nil || math.IsNaN(precio) || math.IsInf(precio, 0) || precio < 0 {
		errs["precio"] = append(errs["precio"], "El precio debe ser un número positivo.")
	}

	stock, err := strconv.Atoi(strings.TrimSpace(f.Stock))
	if err != nil {
		errs["stock"] = append(errs["stock"], "El stock debe ser un número entero.")
	} else if stock < 0 {
		errs["stock"] = append(errs["stock"], "El stock no puede ser negativo.")
	}

	if utf8.RuneCountInString(strings.TrimSpace(f.Categoria)) < 3 {
		errs["categoria"] = append(errs["categoria"], "La categoría es obligatoria.")
	}

	if f.ImagenURL != "" {
		if u, err := url.Parse(f.ImagenURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs["imagen_url"] = append(errs["imagen_url"], "Por favor, introduce una URL de imagen válida.")
		}
	}

	return errs
}

// Product converts a validated form into the canonical record. Must only be
// called after Validate returned no errors.
func (f *ProductForm) Product() Product {
	precio, _ := strconv.ParseFloat(strings.TrimSpace(f.Precio), 64)
	stock, _ := strconv.Atoi(strings.TrimSpace(f.Stock))
	return Product{
		Nombre:      strings.TrimSpace(f.Nombre),
		Descripcion: strings.TrimSpace(f.Descripcion),
		Precio:      precio,
		Stock:       stock,
		Categoria:   strings.TrimSpace(f.Categoria),
		ImagenURL:   f.ImagenURL,
	}
}
