package main

import (
	"fmt"
	"os"

	"github.com/shopfront-next/internal/config"
	"github.com/shopfront-next/internal/logger"
	"github.com/shopfront-next/internal/models"
	"github.com/shopfront-next/internal/repository"

	"github.com/shopspring/decimal"
)

// 开发环境演示数据
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{}); err != nil {
		fmt.Fprintf(os.Stderr, "init database: %v\n", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	if err := seedProducts(); err != nil {
		fmt.Fprintf(os.Stderr, "seed products: %v\n", err)
		os.Exit(1)
	}
	if err := seedUsers(); err != nil {
		fmt.Fprintf(os.Stderr, "seed users: %v\n", err)
		os.Exit(1)
	}
	if err := models.InitDefaultStaff("admin", "admin123"); err != nil {
		fmt.Fprintf(os.Stderr, "seed staff: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("seed completed")
}

func seedProducts() error {
	var count int64
	if err := models.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("products already seeded, skipping")
		return nil
	}

	products := []models.Product{
		{
			Name:           "Wireless Headphones",
			Description:    "Over-ear wireless headphones with active noise cancellation.",
			Price:          money("129.99"),
			ImageURL:       "https://images.example.com/products/headphones.jpg",
			Category:       "electronics",
			InventoryCount: 50,
			Featured:       true,
		},
		{
			Name:           "Mechanical Keyboard",
			Description:    "Tenkeyless mechanical keyboard with hot-swappable switches.",
			Price:          money("89.00"),
			ImageURL:       "https://images.example.com/products/keyboard.jpg",
			Category:       "electronics",
			InventoryCount: 35,
			Featured:       false,
		},
		{
			Name:           "Ceramic Pour-Over Set",
			Description:    "Hand-glazed ceramic dripper with matching carafe.",
			Price:          money("42.50"),
			ImageURL:       "https://images.example.com/products/pourover.jpg",
			Category:       "home",
			InventoryCount: 20,
			Featured:       true,
		},
		{
			Name:           "Canvas Tote Bag",
			Description:    "Heavy-duty canvas tote with interior pockets.",
			Price:          money("24.00"),
			ImageURL:       "https://images.example.com/products/tote.jpg",
			Category:       "accessories",
			InventoryCount: 100,
			Featured:       false,
		},
		{
			Name:           "Desk Lamp",
			Description:    "Adjustable LED desk lamp with three color temperatures.",
			Price:          money("39.99"),
			ImageURL:       "https://images.example.com/products/lamp.jpg",
			Category:       "home",
			InventoryCount: 0,
			Featured:       false,
		},
	}
	repo := repository.NewGormProductRepository(models.DB)
	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			return err
		}
	}
	fmt.Printf("seeded %d products\n", len(products))
	return nil
}

func seedUsers() error {
	var count int64
	if err := models.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("users already seeded, skipping")
		return nil
	}

	users := []models.User{
		{ExternalID: "demo-user-1", Email: "demo@example.com", FullName: "Demo Shopper"},
	}
	if err := models.DB.Create(&users).Error; err != nil {
		return err
	}
	fmt.Printf("seeded %d users\n", len(users))
	return nil
}

func money(s string) models.Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return models.NewMoney(d)
}
