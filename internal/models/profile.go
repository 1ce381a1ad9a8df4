package models

import (
	"time"

	"github.com/lib/pq"
)

// DefaultPhotoURL is the placeholder shown until a user uploads a photo.
const DefaultPhotoURL = "https://cdn.pixabay.com/photo/2023/02/18/11/00/icon-7797704_640.png"

// Profile is the public-facing document for one user. UserID and Email are
// identity fields: written at creation, never by partial updates.
type Profile struct {
	UserID string `gorm:"column:user_id;type:uuid;primaryKey" json:"uid"`
	Email  string `gorm:"column:email;type:text" json:"email"`

	Name  string `gorm:"column:name;type:text" json:"name"`
	Role  string `gorm:"column:role;type:text" json:"role"`
	City  string `gorm:"column:city;type:text" json:"city"`
	Photo string `gorm:"column:photo;type:text" json:"photo"`
	About string `gorm:"column:about;type:text" json:"about"`
	Phone string `gorm:"column:phone;type:text" json:"phone"`

	Tags      pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	Portfolio pq.StringArray `gorm:"column:portfolio;type:text[]" json:"portfolio"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// ProfileUpdate carries a partial update: nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string   `json:"name,omitempty"`
	Role      *string   `json:"role,omitempty"`
	City      *string   `json:"city,omitempty"`
	Photo     *string   `json:"photo,omitempty"`
	About     *string   `json:"about,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
	Portfolio *[]string `json:"portfolio,omitempty"`
}

// Changes returns the column assignments for the set fields only.
func (u ProfileUpdate) Changes() map[string]any {
	m := map[string]any{}
	if u.Name != nil {
		m["name"] = *u.Name
	}
	if u.Role != nil {
		m["role"] = *u.Role
	}
	if u.City != nil {
		m["city"] = *u.City
	}
	if u.Photo != nil {
		m["photo"] = *u.Photo
	}
	if u.About != nil {
		m["about"] = *u.About
	}
	if u.Phone != nil {
		m["phone"] = *u.Phone
	}
	if u.Tags != nil {
		m["tags"] = pq.StringArray(*u.Tags)
	}
	if u.Portfolio != nil {
		m["portfolio"] = pq.StringArray(*u.Portfolio)
	}
	return m
}

// Apply merges the update into an in-memory copy so the caller's view and
// the stored row never diverge within a session.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Role != nil {
		p.Role = *u.Role
	}
	if u.City != nil {
		p.City = *u.City
	}
	if u.Photo != nil {
		p.Photo = *u.Photo
	}
	if u.About != nil {
		p.About = *u.About
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Tags != nil {
		p.Tags = pq.StringArray(*u.Tags)
	}
	if u.Portfolio != nil {
		p.Portfolio = pq.StringArray(*u.Portfolio)
	}
}
