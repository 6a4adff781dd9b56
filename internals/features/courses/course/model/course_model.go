package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_id"`
	CourseTitle       string    `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseDescription string    `gorm:"column:course_description;type:text" json:"course_description"`
	CoursePriceIDR    int       `gorm:"column:course_price_idr;not null;default:0" json:"course_price_idr"`
	CourseDuration    int       `gorm:"column:course_duration_minutes;not null;default:0" json:"course_duration_minutes"`
	CourseImageURL    *string   `gorm:"column:course_image_url;type:text" json:"course_image_url,omitempty"`
	CourseIsActive    bool      `gorm:"column:course_is_active;default:true" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	DeletedAt       gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
