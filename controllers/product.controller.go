// File: controllers/product.controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pasteleria-backend/models"
)

// InventarioPath is the page path whose cached payload product mutations
// invalidate.
const InventarioPath = "/admin/inventario"

const maxUploadSize = 10 << 20

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// GetProducts returns the product listing, alias fields normalized.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	products, err := ctrl.fetchProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (ctrl *Controller) fetchProducts(ctx context.Context) ([]models.Product, error) {
	opts := options.Find().SetLimit(fetchLimit)
	cursor, err := ctrl.DB.Collection("products").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.ProductDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for i := range docs {
		products = append(products, docs[i].Normalize())
	}
	return products, nil
}

// CreateProduct validates the submitted form, uploads the image if one was
// attached and inserts the product.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	form, file, err := parseProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, validationResult(errs))
		return
	}

	product := form.Product()
	if file != nil && ctrl.Cld != nil {
		imageURL, err := ctrl.uploadProductImage(file)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, operationalResult("No se pudo crear el producto."))
			return
		}
		// The resolved upload URL wins over any URL typed into the form.
		product.ImagenURL = imageURL
	}

	if _, err := ctrl.DB.Collection("products").InsertOne(ctx, product); err != nil {
		c.JSON(http.StatusInternalServerError, operationalResult("No se pudo crear el producto."))
		return
	}

	ctrl.Pages.Invalidate(InventarioPath)
	c.JSON(http.StatusCreated, successResult())
}

// UpdateProduct replaces the mutable fields of an existing product.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, operationalResult("ID de producto no válido."))
		return
	}

	form, file, err := parseProductForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, validationResult(errs))
		return
	}

	product := form.Product()
	if file != nil && ctrl.Cld != nil {
		imageURL, err := ctrl.uploadProductImage(file)
		if err != nil {
			log.Println("Cloudinary upload error:", err)
			c.JSON(http.StatusInternalServerError, operationalResult("No se pudo actualizar el producto."))
			return
		}
		product.ImagenURL = imageURL
	}

	update := bson.M{"$set": bson.M{
		"nombre":      product.Nombre,
		"descripcion": product.Descripcion,
		"precio":      product.Precio,
		"stock":       product.Stock,
		"categoria":   product.Categoria,
		"imagen_url":  product.ImagenURL,
	}}
	result, err := ctrl.DB.Collection("products").UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, operationalResult("No se pudo actualizar el producto."))
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, operationalResult("No se pudo actualizar el producto."))
		return
	}

	ctrl.Pages.Invalidate(InventarioPath)
	c.JSON(http.StatusOK, successResult())
}

// DeleteProduct removes a product by id. Orders keep their captured
// product snapshots; nothing cascades.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, operationalResult("ID de producto no válido."))
		return
	}

	result, err := ctrl.DB.Collection("products").DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, operationalResult("No se pudo eliminar el producto."))
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, operationalResult("No se pudo eliminar el producto."))
		return
	}

	ctrl.Pages.Invalidate(InventarioPath)
	c.JSON(http.StatusOK, successResult())
}

// parseProductForm decodes a multipart or urlencoded product submission and
// returns the optional image file alongside the field values.
func parseProductForm(c *gin.Context) (*models.ProductForm, *multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil && err != http.ErrNotMultipart {
		return nil, nil, err
	}

	var form models.ProductForm
	if err := formDecoder.Decode(&form, c.Request.PostForm); err != nil {
		return nil, nil, err
	}

	file, err := c.FormFile("imagen_file")
	if err != nil {
		// No file attached is the common case, not an error.
		return &form, nil, nil
	}
	return &form, file, nil
}

// uploadProductImage stores the file under a timestamped key and returns
// the retrievable URL.
func (ctrl *Controller) uploadProductImage(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	publicID := fmt.Sprintf("products/%d_%s", time.Now().UnixMilli(), file.Filename)
	result, err := ctrl.Cld.Upload.Upload(context.Background(), src, uploader.UploadParams{
		PublicID: publicID,
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
