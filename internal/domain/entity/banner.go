package entity

// Banner is a promotional document. Its fields are free-form and are stored
// and listed exactly as submitted, so it is a plain document rather than a
// struct.
type Banner map[string]interface{}

func (b Banner) SetID(id string) { b["_id"] = id }

// Title returns the title field when it holds a string.
func (b Banner) Title() string {
	title, _ := b["title"].(string)
	return title
}
