package models

// Project is a piece of work shown on the portfolio.
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;not null;check:name <> ''" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:500" json:"imageUrl"`
	GithubURL   string `gorm:"size:500" json:"githubUrl"`
	LiveURL     string `gorm:"size:500" json:"liveUrl"`
	// Technologies is a comma-separated or JSON-encoded list, stored as-is.
	Technologies string `gorm:"size:500" json:"technologies"`
	CreatedAt    *Date  `gorm:"column:created_at;autoCreateTime:false" json:"createdAt"`
	Featured     bool   `gorm:"not null;default:false" json:"featured"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "project"
}
