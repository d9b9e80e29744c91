// Package seed loads the original Trade Hub catalog into MongoDB.
package seed

import (
	"context"
	"log"
	"time"

	"tradehub/db"
	"tradehub/models"

	"go.mongodb.org/mongo-driver/bson"
)

var catalog = []models.Product{
	{
		Name:             "Airpods Pro 2 with Touch Controls",
		ShortName:        "AIRPODS PRO 2ND GENERATION WITH TOUCH SCREEN DISPLAY",
		Slug:             "airpods-pro-2",
		Price:            5999,
		Rating:           5,
		Category:         "Electronics",
		Description:      "The Apple AirPods are wireless earbuds designed by Apple Inc. They offer seamless connectivity with Apple devices like iPhones. The AirPods provide high-quality audio, easy setup, and convenient features like Siri integration.",
		MainImage:        "airpods 2.jpeg",
		AdditionalImages: []string{"airpods 2.jpeg", "airpodd.webp", "airpd.jpeg", "airpod.jpeg"},
		Featured:         true,
	},
	{
		Name:             "Adidas AEROREADY 3-STRIPES BASEBALL CAP",
		ShortName:        "Adidas AEROREADY 3-STRIPES BASEBALL CAP",
		Slug:             "adidas-baseball-cap",
		Price:            999,
		Rating:           5,
		Category:         "Fashion",
		Description:      "Stay cool and stylish with this Adidas AEROREADY 3-Stripes Baseball Cap. Features moisture-wicking AEROREADY technology to keep you dry and comfortable.",
		MainImage:        "addidas cap.jpeg",
		AdditionalImages: []string{"addidas cap.jpeg"},
		Featured:         true,
	},
	{
		Name:             "Watch Band Quick Release Leather Strap for Samsung Galaxy Watch 3",
		ShortName:        "Watch band Quick release Leather Strap for Samsung Galaxy Watch 3",
		Slug:             "samsung-watch-leather-strap",
		Price:            999,
		Rating:           5,
		Category:         "Electronics",
		Description:      "Premium quality leather watch band compatible with Samsung Galaxy Watch 3. Features quick release pins for easy installation.",
		MainImage:        "patta.jpeg",
		AdditionalImages: []string{"patta.jpeg"},
		Featured:         true,
	},
	{
		Name:             "Decorative Calligraphy Wooden Wall Clock",
		ShortName:        "Decorative Calligraphy Wooden Wall Clock",
		Slug:             "calligraphy-wall-clock",
		Price:            999,
		Rating:           5,
		Category:         "Home",
		Description:      "Beautiful decorative wall clock featuring elegant calligraphy design. Made from high-quality wood with a smooth finish. Silent non-ticking movement.",
		MainImage:        "potraitclock.jpeg",
		AdditionalImages: []string{"potraitclock.jpeg"},
		Featured:         true,
	},
	{
		Name:             "H60 Watch 9 Smartwatch with 7+1 Strap",
		ShortName:        "H60 Watch 9 Smartwatch with 7+1 Strap",
		Slug:             "h60-smartwatch",
		Price:            3999,
		Rating:           5,
		Category:         "Electronics",
		Description:      "Advanced smartwatch with heart rate monitoring, step counter, sleep tracking, and more. Comes with 7+1 interchangeable straps. Water-resistant design.",
		MainImage:        "smartwatch.jpeg",
		AdditionalImages: []string{"smartwatch.jpeg"},
		Featured:         true,
	},
	{
		Name:             "Nikah Date Fixing Cards - Marriage Date Fixing Card",
		ShortName:        "Nikah Date Fixing Cards, Marriage Date Fixing Card By Khatoon Trends",
		Slug:             "nikah-date-cards",
		Price:            499,
		Rating:           5,
		Category:         "Gifts",
		Description:      "Beautiful Nikah date fixing cards designed by Khatoon Trends. Premium quality printing with elegant design. Customizable with your details.",
		MainImage:        "save the date.jpeg",
		AdditionalImages: []string{"save the date.jpeg"},
		Featured:         true,
	},
	{
		Name:             "Rice Dispenser Food Storage Box Container",
		ShortName:        "Rice Dispenser Food Storage Box Container | Insect Moisture Proof |",
		Slug:             "rice-dispenser-storage",
		Price:            5999,
		Rating:           5,
		Category:         "Home",
		Description:      "Keep your rice and grains fresh with this insect and moisture proof storage container. Built-in dispenser for easy access. Food-grade materials.",
		MainImage:        "kitchen.jpeg",
		AdditionalImages: []string{"kitchen.jpeg"},
		Featured:         true,
	},
	{
		Name:             "LED Neon Light Signs",
		ShortName:        "LED Neon Light Signs",
		Slug:             "led-neon-signs",
		Price:            6200,
		Rating:           5,
		Category:         "Lighting",
		Description:      "Custom LED neon light signs for home decoration, business, or events. Energy-efficient LED technology with long lifespan. Available in multiple colors.",
		MainImage:        "led writing.jpeg",
		AdditionalImages: []string{"led writing.jpeg"},
		Featured:         true,
	},
	{
		Name:             "SNK Fitness GYM GLOVES with Wrist Support",
		ShortName:        "SNK Fitness GYM GLOVES Weight Lifting Gloves Fitness Gloves With Wrist Support",
		Slug:             "gym-gloves",
		Price:            699,
		Rating:           5,
		Category:         "Sports",
		Description:      "Professional gym gloves with integrated wrist support for weight lifting and fitness. Padded palm for grip and protection. Breathable material.",
		MainImage:        "gymgrip.jpeg",
		AdditionalImages: []string{"gymgrip.jpeg", "gymgrip2.jpeg"},
	},
	{
		Name:             "Wooden Wall Clock 3D Bird Style",
		ShortName:        "Wooden Wall Clock 3D Bird Style Wooden Watch Design Decoration",
		Slug:             "wooden-bird-clock",
		Price:            999,
		Rating:           5,
		Category:         "Home",
		Description:      "Unique 3D bird style wooden wall clock that adds character to any room. Handcrafted from quality wood. Silent quartz movement.",
		MainImage:        "woddenwc.jpeg",
		AdditionalImages: []string{"woddenwc.jpeg"},
	},
	{
		Name:             "Multipurpose Wooden Wall Hanger",
		ShortName:        "Mister Traders Brand Multipurpose Wooden Wall Hanger | Mobile Charging Stand | Keys Hanging Hooks",
		Slug:             "wooden-wall-hanger",
		Price:            699,
		Rating:           5,
		Category:         "Home",
		Description:      "Versatile wooden wall organizer from Mister Traders. Hooks for keys, shelf for phone charging. Solid wood construction. Easy to mount.",
		MainImage:        "wallhanger.jpeg",
		AdditionalImages: []string{"wallhanger.jpeg", "wallhanger2.jpeg"},
	},
	{
		Name:             "Automatic Sensor Night Light",
		ShortName:        "Automatic Sensor Light Night",
		Slug:             "sensor-night-light",
		Price:            999,
		Rating:           5,
		Category:         "Lighting",
		Description:      "Smart automatic sensor night light that turns on in darkness and off in daylight. Energy efficient LED. Plugs directly into wall outlet.",
		MainImage:        "autonl.jpeg",
		AdditionalImages: []string{"autonl.jpeg", "autonl2.jpeg"},
	},
	{
		Name:             "Mobile Waist Bag for Men and Women",
		ShortName:        "Mobile Waist Bag For Both Men And Women",
		Slug:             "mobile-waist-bag",
		Price:            2699,
		Rating:           5,
		Category:         "Fashion",
		Description:      "Stylish and functional waist bag suitable for both men and women. Adjustable strap fits all sizes. Multiple compartments for organization.",
		MainImage:        "waistbag.jpeg",
		AdditionalImages: []string{"waistbag.jpeg"},
	},
	{
		Name:             "X-TIGER Arm Sports Sleeves",
		ShortName:        "X-TIGER Arm Sports Sleeves",
		Slug:             "arm-sports-sleeves",
		Price:            999,
		Rating:           5,
		Category:         "Sports",
		Description:      "Professional arm sleeves for sports and outdoor activities. UV protection and compression support. Moisture-wicking fabric keeps you dry.",
		MainImage:        "idk.jpeg",
		AdditionalImages: []string{"idk.jpeg"},
	},
	{
		Name:             "Fairy String Lights for Indoor & Outdoor",
		ShortName:        "10Ft/30 LEDs Fairy String Lights for Indoor&Outdoor Decoration",
		Slug:             "fairy-string-lights",
		Price:            600,
		Rating:           5,
		Category:         "Lighting",
		Description:      "10 feet fairy string lights with 30 LEDs. Creates magical ambiance for bedrooms, patios, weddings, and parties. Battery operated.",
		MainImage:        "led.jpeg",
		AdditionalImages: []string{"led.jpeg"},
	},
	{
		Name:             "Custom Photo Printed 3D LED Lamp",
		ShortName:        "CUSTOM PHOTO PRINTED 3D LED LAMP",
		Slug:             "3d-led-lamp",
		Price:            2900,
		Rating:           5,
		Category:         "Gifts",
		Description:      "Personalized 3D LED lamp with your custom photo. Multiple color options with remote control. Unique and memorable gift idea.",
		MainImage:        "3dlamp.jpeg",
		AdditionalImages: []string{"3dlamp.jpeg"},
	},
}

// Products replaces the product catalog with the seed fixtures.
func Products(ctx context.Context) error {
	if _, err := db.ProductsCollection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(catalog))
	for _, p := range catalog {
		p.Stock = 100
		p.CreatedAt = now
		p.UpdatedAt = now
		docs = append(docs, p)
	}

	res, err := db.ProductsCollection.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	log.Printf("Seeded %d products", len(res.InsertedIDs))
	return nil
}
