package models

import "time"

// User categories that gate catalog visibility.
const (
	UserTypeTitans = "Titans"
	UserTypeNyxen  = "Nyxen"
	UserTypeMSDSM  = "MSDSM"
	UserTypePhD    = "PhD"
	UserTypeStaffs = "Staffs/Faculty"
)

type User struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	Phone      string     `json:"phone"`
	Section    string     `json:"section"`
	RollNumber string     `gorm:"uniqueIndex;not null" json:"roll_number"`
	Hostel     string     `json:"hostel"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	Password   string     `gorm:"not null" json:"-"`
	UserType   string     `gorm:"type:VARCHAR(20)" json:"userType"`
	IsAdmin    bool       `gorm:"default:false" json:"isAdmin"`
	SuperAdmin bool       `gorm:"default:false" json:"superAdmin"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedAt  time.Time  `json:"created_at"`

	Orders []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
}

func ValidUserType(t string) bool {
	switch t {
	case UserTypeTitans, UserTypeNyxen, UserTypeMSDSM, UserTypePhD, UserTypeStaffs:
		return true
	}
	return false
}
