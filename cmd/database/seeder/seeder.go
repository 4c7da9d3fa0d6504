package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"snackstock-api/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedProduct struct {
	name     string
	category string
	calories int
	times    int
}

// Seed loads a demo user with a realistic inventory and 30 days of
// consumption history, useful for exercising the statistics endpoints
// locally.
func Seed(db *gorm.DB) error {
	var existing entities.User
	err := db.Where("email = ?", "test@snackstock.com").First(&existing).Error
	if err == nil {
		fmt.Println("Seed data already present, skipping")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	firstLogin := now.AddDate(0, 0, -45)

	user := &entities.User{
		ID:                    uuid.New(),
		Email:                 "test@snackstock.com",
		Password:              string(hashed),
		Name:                  "Usuario Test",
		IsFirstLogin:          false,
		FirstLogin:            &firstLogin,
		TotalProductsAdded:    150,
		TotalProductsConsumed: 89,
		TotalProductsWasted:   15,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	addDays := func(days int) *time.Time {
		date := now.AddDate(0, 0, days)
		return &date
	}

	articles := []*entities.Article{
		{ID: uuid.New(), UserID: user.ID, Name: "Leche", Quantity: 2, Category: "Lácteos", ExpiryDate: addDays(2)},
		{ID: uuid.New(), UserID: user.ID, Name: "Pan Integral", Quantity: 1, Category: "Panadería", ExpiryDate: addDays(1)},
		{ID: uuid.New(), UserID: user.ID, Name: "Queso Gouda", Quantity: 1, Category: "Lácteos", ExpiryDate: addDays(5)},
		{ID: uuid.New(), UserID: user.ID, Name: "Yogurt Natural", Quantity: 4, Category: "Lácteos", ExpiryDate: addDays(8)},
		{ID: uuid.New(), UserID: user.ID, Name: "Manzanas", Quantity: 6, Category: "Frutas", ExpiryDate: addDays(10)},
		{ID: uuid.New(), UserID: user.ID, Name: "Pollo", Quantity: 1, Category: "Proteínas", ExpiryDate: addDays(3)},
	}
	if err := db.Create(articles).Error; err != nil {
		return err
	}

	topProducts := []seedProduct{
		{"Leche", "Lácteos", 60, 12},
		{"Pan", "Panadería", 265, 10},
		{"Huevos", "Proteínas", 155, 9},
		{"Yogurt", "Lácteos", 60, 8},
		{"Pollo", "Carnes", 165, 7},
		{"Arroz", "Despensa", 130, 6},
	}
	wastedProducts := []seedProduct{
		{"Lechuga", "Verduras", 15, 4},
		{"Tomates", "Verduras", 18, 3},
		{"Plátanos", "Frutas", 89, 3},
	}

	var records []*entities.ConsumptionRecord
	for _, product := range topProducts {
		for i := 0; i < product.times; i++ {
			records = append(records, &entities.ConsumptionRecord{
				ID:          uuid.New(),
				UserID:      user.ID,
				ProductName: product.name,
				Category:    product.category,
				Quantity:    1,
				Calories:    product.calories,
				Action:      entities.ActionConsumed,
				ConsumedAt:  now.AddDate(0, 0, -rand.Intn(30)),
			})
		}
	}
	for _, product := range wastedProducts {
		for i := 0; i < product.times; i++ {
			records = append(records, &entities.ConsumptionRecord{
				ID:          uuid.New(),
				UserID:      user.ID,
				ProductName: product.name,
				Category:    product.category,
				Quantity:    1,
				Calories:    product.calories,
				Action:      entities.ActionWasted,
				ConsumedAt:  now.AddDate(0, 0, -rand.Intn(30)),
			})
		}
	}
	if err := db.Create(records).Error; err != nil {
		return err
	}

	fmt.Printf("Seeded demo user %s with %d articles and %d consumption records\n",
		user.Email, len(articles), len(records))
	return nil
}
