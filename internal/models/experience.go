package models

// Experience is a position held by the portfolio owner.
type Experience struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Title          string `gorm:"size:200;not null;check:title <> ''" json:"title"`
	Company        string `gorm:"size:200;not null;check:company <> ''" json:"company"`
	Location       string `gorm:"size:100" json:"location"`
	StartDate      *Date  `gorm:"column:start_date;index" json:"startDate"`
	EndDate        *Date  `gorm:"column:end_date" json:"endDate"`
	Current        bool   `gorm:"column:current;not null;default:false" json:"current"`
	Description    string `gorm:"type:text" json:"description"`
	CompanyLogoURL string `gorm:"column:company_logo_url;size:500" json:"companyLogoUrl"`
}

// TableName specifies the table name for GORM.
func (Experience) TableName() string {
	return "experience"
}
