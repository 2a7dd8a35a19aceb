package models

// Recipe is a recipe shared by a user. UserID is fixed at creation.
type Recipe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"size:100;not null" json:"title"`
	Ingredients  string `gorm:"type:text;not null" json:"ingredients"`
	Instructions string `gorm:"type:text;not null" json:"instructions"`
	ChefName     string `gorm:"size:100;not null" json:"chef_name"`
	Cuisine      string `gorm:"size:50;not null" json:"cuisine"`
	UserID       uint   `gorm:"index;not null" json:"user_id"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Recipe model
func (Recipe) TableName() string {
	return "recipes"
}
