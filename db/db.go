package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ProductsCollection    *mongo.Collection
	OrdersCollection      *mongo.Collection
	ContactsCollection    *mongo.Collection
	IdempotencyCollection *mongo.Collection
	Client                *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_NAME")
	if dbName == "" {
		dbName = "tradehub"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ProductsCollection = Client.Database(dbName).Collection("products")
	OrdersCollection = Client.Database(dbName).Collection("orders")
	ContactsCollection = Client.Database(dbName).Collection("contacts")
	IdempotencyCollection = Client.Database(dbName).Collection("idempotency")
}

// EnsureIndexes creates the indexes the query paths rely on: unique product
// slugs, the shop category and featured filters, order listing by recency,
// contact triage, and the idempotency unique-key + TTL pair.
func EnsureIndexes(ctx context.Context) error {
	productIdx := []mongo.IndexModel{
		{Keys: bson.M{"slug": 1}, Options: options.Index().SetUnique(true).SetName("unique_slug")},
		{Keys: bson.M{"category": 1}},
		{Keys: bson.M{"featured": 1}},
	}
	if _, err := ProductsCollection.Indexes().CreateMany(ctx, productIdx); err != nil {
		return err
	}

	orderIdx := []mongo.IndexModel{
		{Keys: bson.M{"orderId": 1}, Options: options.Index().SetUnique(true).SetName("unique_order_id")},
		{Keys: bson.M{"status": 1}},
		{Keys: bson.M{"createdAt": -1}},
		{Keys: bson.M{"customer.email": 1}},
	}
	if _, err := OrdersCollection.Indexes().CreateMany(ctx, orderIdx); err != nil {
		return err
	}

	contactIdx := []mongo.IndexModel{
		{Keys: bson.M{"isRead": 1}},
		{Keys: bson.M{"createdAt": -1}},
	}
	if _, err := ContactsCollection.Indexes().CreateMany(ctx, contactIdx); err != nil {
		return err
	}

	idemIdx := []mongo.IndexModel{
		{Keys: bson.M{"key": 1}, Options: options.Index().SetUnique(true).SetName("unique_key")},
		{Keys: bson.M{"expires_at": 1}, Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires_at")},
	}
	if _, err := IdempotencyCollection.Indexes().CreateMany(ctx, idemIdx); err != nil {
		return err
	}

	return nil
}
