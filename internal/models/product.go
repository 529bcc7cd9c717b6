package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryMen   = "men"
	CategoryWomen = "women"
	CategoryKids  = "kids"
)

// Sizes lists every size a product may be offered in.
var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL", "One Size"}

// Review is a customer review attached to a product.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID string    `json:"-" gorm:"type:varchar(36);index;not null"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment" gorm:"type:text"`
	Date      time.Time `json:"date"`
}

func (Review) TableName() string {
	return "product_reviews"
}

// Product represents an item in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(200);not null;index" validate:"required,max=200"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required"`
	Price       float64   `json:"price" gorm:"not null;index" validate:"gte=0"`
	Category    string    `json:"category" gorm:"type:varchar(10);not null;index" validate:"required,oneof=men women kids"`
	Subcategory string    `json:"subcategory" gorm:"type:varchar(100);not null;index" validate:"required"`
	Brand       string    `json:"brand" gorm:"type:varchar(100)"`
	Sizes       []string  `json:"sizes" gorm:"serializer:json;type:text" validate:"dive,oneof=XS S M L XL XXL 'One Size'"`
	Colors      []string  `json:"colors" gorm:"serializer:json;type:text"`
	Images      []string  `json:"images" gorm:"serializer:json;type:text"`
	Stock       int       `json:"stock" gorm:"not null;default:0" validate:"gte=0"`
	Featured    bool      `json:"featured" gorm:"not null;default:false;index"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:text"`
	Rating      float64   `json:"rating" gorm:"not null;default:0" validate:"gte=0,lte=5"`
	Reviews     []Review  `json:"reviews" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BeforeSave keeps list columns as JSON arrays rather than null.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.normalize()
	return nil
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.normalize()
	return nil
}

func (p *Product) normalize() {
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Reviews == nil {
		p.Reviews = []Review{}
	}
}

// AverageRating is the mean rating across reviews, zero when there are none.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
