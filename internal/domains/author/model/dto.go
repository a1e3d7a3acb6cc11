package model

// AuthorForm carries the author form fields. Bound from the
// first_name/last_name POST parameters of the create and edit pages.
type AuthorForm struct {
	FirstName string `form:"first_name" json:"firstName"`
	LastName  string `form:"last_name" json:"lastName"`
}

// AuthorResponse is the list/detail representation, including the derived
// book count computed by the service layer.
type AuthorResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	BookCount int    `json:"bookCount"`
}

// ToResponse converts the entity to its response shape.
func (a Author) ToResponse(bookCount int) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		FullName:  a.FullName(),
		BookCount: bookCount,
	}
}
