package entity

// Product is listed by a seller, referenced by email.
type Product struct {
	ID               string   `json:"_id" bson:"_id,omitempty" firestore:"-"`
	ProductName      string   `json:"product_name,omitempty" bson:"product_name,omitempty" firestore:"product_name,omitempty"`
	Brand            string   `json:"brand,omitempty" bson:"brand,omitempty" firestore:"brand,omitempty"`
	Category         string   `json:"category,omitempty" bson:"category,omitempty" firestore:"category,omitempty"`
	Stock            *int     `json:"stock,omitempty" bson:"stock,omitempty" firestore:"stock,omitempty"`
	Price            *float64 `json:"price,omitempty" bson:"price,omitempty" firestore:"price,omitempty"`
	Discount         *float64 `json:"discount,omitempty" bson:"discount,omitempty" firestore:"discount,omitempty"`
	ShortDescription string   `json:"short_description,omitempty" bson:"short_description,omitempty" firestore:"short_description,omitempty"`
	Description      string   `json:"description,omitempty" bson:"description,omitempty" firestore:"description,omitempty"`
	Email            string   `json:"email" bson:"email" firestore:"email"`
	Images           []string `json:"images,omitempty" bson:"images,omitempty" firestore:"images,omitempty"`
}

func (p *Product) SetID(id string) { p.ID = id }

// Editable product fields, in the order they are overwritten by a full update.
const (
	FieldProductName      = "product_name"
	FieldBrand            = "brand"
	FieldCategory         = "category"
	FieldStock            = "stock"
	FieldPrice            = "price"
	FieldDiscount         = "discount"
	FieldShortDescription = "short_description"
	FieldDescription      = "description"
)

// ProductUpdate carries the full-overwrite field set. A nil pointer clears
// the corresponding stored field.
type ProductUpdate struct {
	ProductName      *string
	Brand            *string
	Category         *string
	Stock            *int
	Price            *float64
	Discount         *float64
	ShortDescription *string
	Description      *string
}
