package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	LastName     string   `gorm:"default:'last name'" json:"lastName"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Location     string   `gorm:"default:'my city'" json:"location"`
	Role         UserRole `gorm:"type:varchar(20);default:'user'" json:"role"`

	// Avatar is the public URL of the externally stored image;
	// AvatarKey is the storage key needed to delete it later.
	Avatar    string `json:"avatar,omitempty"`
	AvatarKey string `json:"-"`

	// Relations
	Jobs []Job `gorm:"foreignKey:CreatedBy" json:"-"`
}
