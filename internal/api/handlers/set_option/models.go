package set_option

// SetOptionRequest HTTP request model; пустое значение удаляет ответ
type SetOptionRequest struct {
	Value string `json:"value"`
}
