package location

type CountryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type StateResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CityResponse struct {
	Name string `json:"name"`
}
