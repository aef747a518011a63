package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() ProductForm {
	return ProductForm{
		Nombre:      "Tarta de queso",
		Descripcion: "Tarta de queso horneada con base de galleta.",
		Precio:      "12.50",
		Stock:       "8",
		Categoria:   "Tartas",
		ImagenURL:   "https://example.com/tarta.jpg",
	}
}

func TestProductFormValidateOK(t *testing.T) {
	f := validForm()
	require.Empty(t, f.Validate())

	p := f.Product()
	assert.Equal(t, "Tarta de queso", p.Nombre)
	assert.Equal(t, 12.5, p.Precio)
	assert.Equal(t, 8, p.Stock)
}

func TestProductFormValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductForm)
		field   string
		message string
	}{
		{
			name:    "negative price",
			mutate:  func(f *ProductForm) { f.Precio = "-1" },
			field:   "precio",
			message: "El precio debe ser un número positivo.",
		},
		{
			name:    "non numeric price",
			mutate:  func(f *ProductForm) { f.Precio = "gratis" },
			field:   "precio",
			message: "El precio debe ser un número positivo.",
		},
		{
			name:    "NaN price",
			mutate:  func(f *ProductForm) { f.Precio = "NaN" },
			field:   "precio",
			message: "El precio debe ser un número positivo.",
		},
		{
			name:    "infinite price",
			mutate:  func(f *ProductForm) { f.Precio = "Inf" },
			field:   "precio",
			message: "El precio debe ser un número positivo.",
		},
		{
			name:    "negative infinite price",
			mutate:  func(f *ProductForm) { f.Precio = "-Inf" },
			field:   "precio",
			message: "El precio debe ser un número positivo.",
		},
		{
			name:    "fractional stock",
			mutate:  func(f *ProductForm) { f.Stock = "1.5" },
			field:   "stock",
			message: "El stock debe ser un número entero.",
		},
		{
			name:    "negative stock",
			mutate:  func(f *ProductForm) { f.Stock = "-3" },
			field:   "stock",
			message: "El stock no puede ser negativo.",
		},
		{
			name:    "short name",
			mutate:  func(f *ProductForm) { f.Nombre = "ab" },
			field:   "nombre",
			message: "El nombre debe tener al menos 3 caracteres.",
		},
		{
			name:    "short accented name",
			mutate:  func(f *ProductForm) { f.Nombre = "ñé" }, // two characters, four bytes
			field:   "nombre",
			message: "El nombre debe tener al menos 3 caracteres.",
		},
		{
			name:    "short description",
			mutate:  func(f *ProductForm) { f.Descripcion = "corta" },
			field:   "descripcion",
			message: "La descripción debe tener al menos 10 caracteres.",
		},
		{
			name:    "missing category",
			mutate:  func(f *ProductForm) { f.Categoria = "" },
			field:   "categoria",
			message: "La categoría es obligatoria.",
		},
		{
			name:    "bad image url",
			mutate:  func(f *ProductForm) { f.ImagenURL = "not-a-url" },
			field:   "imagen_url",
			message: "Por favor, introduce una URL de imagen válida.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)

			errs := f.Validate()
			require.Contains(t, errs, tt.field)
			assert.Contains(t, errs[tt.field], tt.message)
		})
	}
}

func TestProductFormAccentedLengthsCountCharacters(t *testing.T) {
	f := validForm()
	f.Nombre = "ñéñ" // three characters
	f.Descripcion = "crème brûlée…"
	f.Categoria = "Té"

	errs := f.Validate()
	assert.NotContains(t, errs, "nombre")
	assert.NotContains(t, errs, "descripcion")
	assert.Contains(t, errs, "categoria", "two characters remain too short")
}

func TestProductFormEmptyImageURLAllowed(t *testing.T) {
	f := validForm()
	f.ImagenURL = ""
	assert.Empty(t, f.Validate())
}

func TestProductDocNormalize(t *testing.T) {
	price := 7.25
	stock := 3

	t.Run("legacy fields only", func(t *testing.T) {
		doc := ProductDoc{
			Name:        "Croissant",
			Description: "Croissant de mantequilla",
			Price:       &price,
			Stock:       &stock,
			Category:    "Bollería",
			ImageURL:    "https://example.com/c.jpg",
		}
		p := doc.Normalize()
		assert.Equal(t, "Croissant", p.Nombre)
		assert.Equal(t, "Croissant de mantequilla", p.Descripcion)
		assert.Equal(t, 7.25, p.Precio)
		assert.Equal(t, 3, p.Stock)
		assert.Equal(t, "Bollería", p.Categoria)
		assert.Equal(t, "https://example.com/c.jpg", p.ImagenURL)
	})

	t.Run("canonical wins over legacy", func(t *testing.T) {
		canonical := 9.0
		doc := ProductDoc{
			Nombre:    "Palmera",
			Name:      "Palm tree pastry",
			Precio:    &canonical,
			Price:     &price,
			ImagenURL: "https://example.com/nueva.jpg",
			ImageURL:  "https://example.com/vieja.jpg",
		}
		p := doc.Normalize()
		assert.Equal(t, "Palmera", p.Nombre)
		assert.Equal(t, 9.0, p.Precio)
		assert.Equal(t, "https://example.com/nueva.jpg", p.ImagenURL)
	})
}
