package main

import (
	"log"

	"agroshop-bot-be/internal/config"
	"agroshop-bot-be/internal/model"
	"agroshop-bot-be/pkg/database"

	"gorm.io/gorm"
)

// Seeds a small demo catalog for local development.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.CartItem{},
		&model.ProductView{},
		&model.ConsultationLog{},
	); err != nil {
		log.Panicf("Migration failed: %v", err)
	}
	log.Println("Migration complete")

	if err := seedCatalog(db); err != nil {
		log.Panicf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}

func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return nil
	}

	fertilizers := model.Category{Name: "Fertilizers"}
	seeds := model.Category{Name: "Seeds"}
	protection := model.Category{Name: "Crop Protection"}
	for _, c := range []*model.Category{&fertilizers, &seeds, &protection} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	micro := model.Category{Name: "Micronutrients", ParentId: &fertilizers.Id}
	organic := model.Category{Name: "Organic", ParentId: &fertilizers.Id}
	vegetable := model.Category{Name: "Vegetable Seeds", ParentId: &seeds.Id}
	for _, c := range []*model.Category{&micro, &organic, &vegetable} {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	price := func(v float64) *float64 { return &v }
	desc := func(v string) *string { return &v }

	products := []model.Product{
		{Name: "Boron 150", Description: desc("Foliar boron concentrate for flowering crops."), Price: price(12.50), Available: true, CategoryId: micro.Id},
		{Name: "Zinc Chelate", Description: desc("EDTA-chelated zinc for early growth stages."), Price: price(14.00), Available: true, CategoryId: micro.Id},
		{Name: "Iron Plus", Description: desc("Iron chelate against chlorosis."), Price: price(11.20), Available: true, CategoryId: micro.Id},
		{Name: "Manganese Mix", Price: price(10.80), Available: true, CategoryId: micro.Id},
		{Name: "Copper Shield", Price: price(13.40), Available: true, CategoryId: micro.Id},
		{Name: "Molybdenum Drops", Price: price(16.00), Available: true, CategoryId: micro.Id},
		{Name: "Calcium Boost", Price: price(9.90), Available: true, CategoryId: micro.Id},
		{Name: "Magnesium Leaf", Price: price(8.70), Available: true, CategoryId: micro.Id},
		{Name: "Sulfur Fine", Price: price(7.50), Available: true, CategoryId: micro.Id},
		{Name: "Trace Element Pack", Price: price(21.00), Available: true, CategoryId: micro.Id},
		{Name: "Cobalt Micro", Price: price(18.30), Available: true, CategoryId: micro.Id},
		{Name: "Silicon Guard", Price: price(15.60), Available: true, CategoryId: micro.Id},
		{Name: "Compost Classic", Description: desc("Matured compost, 40L bag."), Price: price(6.00), Available: true, CategoryId: organic.Id},
		{Name: "Worm Castings", Price: price(9.50), Available: true, CategoryId: organic.Id},
		{Name: "Tomato Titan F1", Description: desc("Determinate hybrid, 250 seeds."), Price: price(4.20), Available: true, CategoryId: vegetable.Id},
		{Name: "Cucumber Crisp F1", Price: price(3.80), Available: true, CategoryId: vegetable.Id},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
