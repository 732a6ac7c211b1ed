// Package models contains the portfolio records persisted by the application.
package models

// ProfileID is the fixed identifier of the one profile row.
const ProfileID uint = 1

// Profile holds the portfolio owner's personal information.
type Profile struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	FullName        string `gorm:"size:100;not null;check:full_name <> ''" json:"fullName"`
	Title           string `gorm:"size:200" json:"title"`
	Bio             string `gorm:"type:text" json:"bio"`
	ProfileImageURL string `gorm:"size:500" json:"profileImageUrl"`
	Email           string `gorm:"size:200" json:"email"`
	Phone           string `gorm:"size:50" json:"phone"`
	Location        string `gorm:"size:200" json:"location"`
	LinkedinURL     string `gorm:"size:200" json:"linkedinUrl"`
	GithubURL       string `gorm:"size:200" json:"githubUrl"`
	WebsiteURL      string `gorm:"size:200" json:"websiteUrl"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profile"
}
