package entity

// WishlistItem links a buyer (by email) to a product they saved. The product
// summary fields are a snapshot taken when the item was added.
type WishlistItem struct {
	ID          string   `json:"_id" bson:"_id,omitempty" firestore:"-"`
	ProductID   string   `json:"productId" bson:"productId" firestore:"productId"`
	Email       string   `json:"email" bson:"email" firestore:"email"`
	ProductName string   `json:"product_name,omitempty" bson:"product_name,omitempty" firestore:"product_name,omitempty"`
	Brand       string   `json:"brand,omitempty" bson:"brand,omitempty" firestore:"brand,omitempty"`
	Price       *float64 `json:"price,omitempty" bson:"price,omitempty" firestore:"price,omitempty"`
	Discount    *float64 `json:"discount,omitempty" bson:"discount,omitempty" firestore:"discount,omitempty"`
	Image       string   `json:"image,omitempty" bson:"image,omitempty" firestore:"image,omitempty"`
}

func (w *WishlistItem) SetID(id string) { w.ID = id }
