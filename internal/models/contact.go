// internal/models/contact.go
package models

type ContactSubmission struct {
	BaseModel
	Kind          ContactKind `json:"kind" gorm:"type:varchar(20);not null;index"`
	FirstName     string      `json:"first_name" gorm:"size:100"`
	LastName      string      `json:"last_name" gorm:"size:100"`
	Email         string      `json:"email" gorm:"size:255;not null"`
	Company       string      `json:"company,omitempty" gorm:"size:255"`
	Subject       string      `json:"subject,omitempty" gorm:"size:255"`
	Message       string      `json:"message,omitempty" gorm:"type:text"`
	ContactNumber string      `json:"contact_number,omitempty" gorm:"size:50"`
	SoftwareName  string      `json:"software_name,omitempty" gorm:"size:255"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

func (c ContactSubmission) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
