package models

// Hobby is a personal interest shown on the portfolio.
type Hobby struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;check:name <> ''" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	IconURL     string `gorm:"size:200" json:"iconUrl"`
}

// TableName specifies the table name for GORM.
func (Hobby) TableName() string {
	return "hobby"
}
