package entity

type Category struct {
	ID       string `json:"_id" bson:"_id,omitempty" firestore:"-"`
	Category string `json:"category" bson:"category" firestore:"category"`
}

func (c *Category) SetID(id string) { c.ID = id }
