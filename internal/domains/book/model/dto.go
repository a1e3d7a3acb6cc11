package model

// CreateBookRequest is the JSON body of POST /books?authorId=.
type CreateBookRequest struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// BookResponse is the wire representation of a book.
type BookResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"authorId"`
}

// BookListResponse wraps the per-author book list for the books endpoint.
type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

// ToResponse converts the entity to its wire shape.
func (b Book) ToResponse() BookResponse {
	return BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		AuthorID: b.AuthorID,
	}
}

// ToListResponse converts a slice of entities, never returning a nil books
// field so the JSON always carries an array.
func ToListResponse(books []Book) BookListResponse {
	items := make([]BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, b.ToResponse())
	}
	return BookListResponse{Books: items}
}
