package person

type Request struct {
	Name      string `json:"name"`
	Document  string `json:"document"`
	Type      string `json:"type"`
	BirthDate string `json:"birth_date"`
	Phone     string `json:"phone"`
	CEP       string `json:"cep"`
}
