package entities

import (
	"time"
)

type FoodListing struct {
	FoodID       int64     `gorm:"primaryKey" json:"Food_ID"`
	FoodName     string    `gorm:"size:255" json:"Food_Name"`
	Quantity     int64     `json:"Quantity"`
	ExpiryDate   time.Time `gorm:"type:date;index" json:"Expiry_Date"`
	ProviderID   int64     `gorm:"index" json:"Provider_ID"`
	ProviderType string    `gorm:"size:100" json:"Provider_Type"`
	Location     string    `gorm:"size:100;index" json:"Location"`
	FoodType     string    `gorm:"size:50" json:"Food_Type"` // Vegetarian, Non-Vegetarian, Vegan
	MealType     string    `gorm:"size:50" json:"Meal_Type"` // Breakfast, Lunch, Dinner, Snacks

	Claims []Claim `gorm:"foreignKey:FoodID;references:FoodID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type Claim struct {
	ClaimID    int64     `gorm:"primaryKey" json:"Claim_ID"`
	FoodID     int64     `gorm:"index" json:"Food_ID"`
	ReceiverID int64     `gorm:"index" json:"Receiver_ID"`
	Status     string    `gorm:"size:20;index" json:"Status"` // Pending, Completed, Cancelled
	ClaimDate  time.Time `json:"Claim_Date"`
}
