package models

type Job struct {
	BaseModel
	CreatedBy   string    `gorm:"type:uuid;not null;index" json:"createdBy"`
	Company     string    `gorm:"not null" json:"company"`
	Position    string    `gorm:"not null" json:"position"`
	JobStatus   JobStatus `gorm:"type:varchar(20);default:'pending'" json:"jobStatus"`
	JobType     JobType   `gorm:"type:varchar(20);default:'full-time'" json:"jobType"`
	JobLocation string    `gorm:"default:'my city'" json:"jobLocation"`
}
