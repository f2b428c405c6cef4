package venues

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=255"`
	Address  string `json:"address" binding:"max=500"`
	CityID   string `json:"city_id" binding:"required,uuid"`
	Capacity int    `json:"capacity" binding:"omitempty,min=0"`
}

type UpdateVenueRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=255"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
	CityID   *string `json:"city_id" binding:"omitempty,uuid"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
}

type VenueListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	CityID string `form:"city_id" binding:"omitempty,uuid"`
	Search string `form:"search"`
}
