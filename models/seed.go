package models

import "gorm.io/gorm"

// defaultCatalog provisions a fresh install. After first boot operators
// manage the rewards table directly and this list is never consulted again.
var defaultCatalog = []Reward{
	{Name: "$5 Bank Transfer", Icon: "💰", PointsRequired: 5000, Status: RewardStatusLocked,
		Description: "The $5 equivalent will be transferred to your bank account."},
	{Name: "$5 PayPal International", Icon: "💰", PointsRequired: 5000, Status: RewardStatusLocked,
		Description: "Receive a $5 PayPal balance transfer directly to your PayPal account email."},
	{Name: "$5 Virtual Visa Card", Icon: "🎁", PointsRequired: 5000, Status: RewardStatusLocked,
		Description: "Use your $5 prepaid card to shop anywhere Visa is accepted online."},
	{Name: "$5 Apple Gift Card", Icon: "🎁", PointsRequired: 5000, Status: RewardStatusLocked,
		Description: "Redeem this $5 Apple Gift Card for apps, games, music, movies, and more on the App Store and iTunes."},
	{Name: "$5 Google Play Card", Icon: "🎁", PointsRequired: 5000, Status: RewardStatusLocked,
		Description: "Use this $5 Google Play Gift Card to purchase apps, games, movies, books, and more on the Google Play Store."},
	{Name: "$5 Amazon Gift Card", Icon: "🎁", PointsRequired: 5000, Status: RewardStatusLocked,
		Description: "Get a $5 digital gift card to spend on your favorite tools or platforms."},
	{Name: "$10 Amazon Gift Card", Icon: "🎁", PointsRequired: 10000, Status: RewardStatusLocked,
		Description: "Get a $10 digital gift card to spend on your favorite tools or platforms."},
	{Name: "Free Udemy Course", Icon: "📚", PointsRequired: 0, Status: RewardStatusComingSoon,
		Description: "Coming Soon!"},
}

// SeedRewards inserts the default catalog when the rewards table is empty.
// Returns the number of rows inserted.
func SeedRewards(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&Reward{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := db.Create(&defaultCatalog).Error; err != nil {
		return 0, err
	}
	return len(defaultCatalog), nil
}
