package dto

type CreateOrderRequest struct {
	ClientName             string `json:"clientName"`
	ClientEmail            string `json:"clientEmail"`
	ClientPhone            string `json:"clientPhone"`
	ClientCompany          string `json:"clientCompany,omitempty"`
	Type                   string `json:"type,omitempty"`
	Title                  string `json:"title"`
	Category               string `json:"category"`
	Description            string `json:"description"`
	Budget                 string `json:"budget"`
	Timeline               string `json:"timeline"`
	AdditionalRequirements string `json:"additionalRequirements,omitempty"`
}
