package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"tradehub/db"
	"tradehub/models"
	"tradehub/rdx"
	"tradehub/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var productUploadPath = "./static/productpic"

// CreateProduct handles admin product creation from multipart form data,
// including the optional main image upload.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form: "+err.Error())
		return
	}

	name := r.FormValue("name")
	if len(name) == 0 || len(name) > 200 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name must be between 1 and 200 characters")
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid price value. Must be a non-negative number")
		return
	}

	category := r.FormValue("category")
	if !models.ValidCategory(category) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	description := r.FormValue("description")
	if description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Description is required")
		return
	}

	stock := 100
	if s := r.FormValue("stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid stock value. Must be a non-negative integer")
			return
		}
	}

	rating := 5
	if s := r.FormValue("rating"); s != "" {
		rating, err = strconv.Atoi(s)
		if err != nil || rating < 1 || rating > 5 {
			utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
	}

	slug := r.FormValue("slug")
	if slug == "" {
		slug = utils.Slugify(name)
	}

	shortName := r.FormValue("shortName")
	if shortName == "" {
		shortName = name
	}

	now := time.Now()
	product := models.Product{
		Name:        name,
		ShortName:   shortName,
		Slug:        slug,
		Price:       price,
		Rating:      rating,
		Category:    category,
		Description: description,
		Featured:    r.FormValue("featured") == "true",
		Stock:       stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	imageFile, imageHeader, err := r.FormFile("image")
	if err != nil && err != http.ErrMissingFile {
		utils.RespondWithError(w, http.StatusBadRequest, "Error retrieving image file: "+err.Error())
		return
	}
	if imageFile != nil {
		defer imageFile.Close()

		mimeType := imageHeader.Header.Get("Content-Type")
		if _, ok := utils.SupportedImageTypes[mimeType]; !ok {
			utils.RespondWithError(w, http.StatusUnsupportedMediaType,
				"Unsupported image type. Only JPG, PNG and WEBP are allowed")
			return
		}

		fileName, err := utils.SaveImageWithThumb(imageFile, productUploadPath, utils.GenerateID(14))
		if err != nil {
			log.Println("CreateProduct image save error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Error saving image")
			return
		}
		product.MainImage = fileName
	}

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "A product with this slug already exists")
			return
		}
		log.Println("CreateProduct InsertOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error creating product")
		return
	}

	invalidateFeaturedCache(ctx)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

// EditProduct updates an existing product by slug. Only fields present in
// the JSON body are changed.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var patch struct {
		Name        *string  `json:"name"`
		ShortName   *string  `json:"shortName"`
		Price       *float64 `json:"price"`
		Rating      *int     `json:"rating"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Featured    *bool    `json:"featured"`
		Stock       *int     `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Println("EditProduct decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.ShortName != nil {
		set["shortName"] = *patch.ShortName
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Price cannot be negative")
			return
		}
		set["price"] = *patch.Price
	}
	if patch.Rating != nil {
		if *patch.Rating < 1 || *patch.Rating > 5 {
			utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
			return
		}
		set["rating"] = *patch.Rating
	}
	if patch.Category != nil {
		if !models.ValidCategory(*patch.Category) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		set["category"] = *patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Featured != nil {
		set["featured"] = *patch.Featured
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Stock cannot be negative")
			return
		}
		set["stock"] = *patch.Stock
	}

	var product models.Product
	err := db.ProductsCollection.FindOneAndUpdate(ctx,
		bson.M{"slug": ps.ByName("slug")},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("EditProduct FindOneAndUpdate error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating product")
		return
	}

	invalidateFeaturedCache(ctx)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct removes a product from the catalog.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"slug": ps.ByName("slug")})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	invalidateFeaturedCache(ctx)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func invalidateFeaturedCache(ctx context.Context) {
	rdx.RdxDel(ctx, featuredCacheKey)
}
