package cities

type CityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country"`
	IsActive bool   `json:"is_active"`
}
