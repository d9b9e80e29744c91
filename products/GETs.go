package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
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

const featuredCacheKey = "products:featured"
const featuredCacheTTL = 5 * time.Minute

// GetProducts returns all products, newest first, optional ?category= filter.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if cat := r.URL.Query().Get("category"); cat != "" {
		filter["category"] = cat
	}

	cursor, err := db.ProductsCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("GetProducts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetProducts cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// GetFeaturedProducts returns up to 8 featured products for the homepage.
// The result is cached in Redis and invalidated on catalog mutation.
func GetFeaturedProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached := rdx.RdxGet(ctx, featuredCacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"featured": true},
		options.Find().SetLimit(8))
	if err != nil {
		log.Println("GetFeaturedProducts Find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching featured products")
		return
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("GetFeaturedProducts cursor.All error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching featured products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	body := utils.M{
		"success": true,
		"count":   len(products),
		"data":    products,
	}
	if raw, err := json.Marshal(body); err == nil {
		rdx.RdxSet(ctx, featuredCacheKey, string(raw), featuredCacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, body)
}

// GetProduct returns a single product by its URL slug.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    product,
	})
}
