package cities

type CreateCityRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	State   string `json:"state" binding:"max=100"`
	Country string `json:"country" binding:"omitempty,max=100"`
}

type UpdateCityRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	State    *string `json:"state" binding:"omitempty,max=100"`
	Country  *string `json:"country" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}
