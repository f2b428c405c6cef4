package seats

type CreateSeatRequest struct {
	SectionName string `json:"section_name" binding:"required,min=1,max=100"`
	RowName     string `json:"row_name" binding:"required,min=1,max=50"`
	SeatNumber  string `json:"seat_number" binding:"required,min=1,max=20"`
}

type BulkCreateSeatsRequest struct {
	Seats []CreateSeatRequest `json:"seats" binding:"required,min=1,max=2000,dive"`
}

type UpdateSeatRequest struct {
	SectionName *string `json:"section_name" binding:"omitempty,min=1,max=100"`
	RowName     *string `json:"row_name" binding:"omitempty,min=1,max=50"`
	SeatNumber  *string `json:"seat_number" binding:"omitempty,min=1,max=20"`
	IsBlocked   *bool   `json:"is_blocked"`
}
