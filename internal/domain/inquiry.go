package domain

// Inquiry is one submitted contact/quote request. Rows are append-only:
// nothing in the system updates or deletes them.
type Inquiry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `gorm:"not null" json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (Inquiry) TableName() string {
	return "contacts"
}
