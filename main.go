package main

import (
	"context"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"

	"pasteleria-backend/cache"
	"pasteleria-backend/config"
	"pasteleria-backend/controllers"
	"pasteleria-backend/routes"
)

func main() {
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI, cfg.MongoMode)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	var cld *cloudinary.Cloudinary
	if cfg.CloudinaryURL != "" {
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Cloudinary init error:", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, image uploads disabled")
	}

	ctrl := &controllers.Controller{
		DB:              client.Database(cfg.DBName),
		Cld:             cld,
		PasetoSecretKey: cfg.PasetoSecretKey,
		Pages:           cache.NewPages(),
	}

	r := routes.Setup(ctrl, cfg)
	log.Println("🚀 Server listening on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
