package models

// Skill is a technology or competence shown on the portfolio.
type Skill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null;check:name <> ''" json:"name"`
	Category string `gorm:"size:50;index" json:"category"`
	IconURL  string `gorm:"size:200" json:"iconUrl"`
	// Proficiency is meant to be 1-100; only presence is enforced.
	Proficiency *int   `gorm:"not null" json:"proficiency"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for GORM.
func (Skill) TableName() string {
	return "skill"
}
