package get_countries

// CountryResponse страна для формы оформления
type CountryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountriesResponse список стран магазина
type CountriesResponse struct {
	Countries []CountryResponse `json:"countries"`
}
