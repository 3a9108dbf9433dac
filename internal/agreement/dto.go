package agreement

import "encoding/json"

// PartyDTO mirrors the intake form fields for one side.
type PartyDTO struct {
	ClientName string  `json:"clientName"`
	ContactNo  string  `json:"contactNo"`
	Amount     float64 `json:"amount"`
	AgentName  string  `json:"agentName"`
	TokenNo    string  `json:"tokenNo"`
}

// CreateAgreementDTO is one intake form submission.
type CreateAgreementDTO struct {
	FlatNo    string    `json:"flatNo"`
	Building  string    `json:"building"`
	Region    string    `json:"region"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Owner     *PartyDTO `json:"owner"`
	Tenant    *PartyDTO `json:"tenant"`
}

// createPayload accepts either a single agreement object or an array of them
// on POST /api/agreements. Bulk records which shape arrived so the response
// can mirror it.
type createPayload struct {
	Items []CreateAgreementDTO
	Bulk  bool
}

func (p *createPayload) UnmarshalJSON(b []byte) error {
	var many []CreateAgreementDTO
	if err := json.Unmarshal(b, &many); err == nil {
		p.Items = many
		p.Bulk = true
		return nil
	}
	var one CreateAgreementDTO
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	p.Items = []CreateAgreementDTO{one}
	p.Bulk = false
	return nil
}

// PatchAgreementDTO merges named fields only; absent fields are untouched.
// Amount applies to the side named by ClientType.
type PatchAgreementDTO struct {
	ClientType           string   `json:"clientType"`
	Amount               *float64 `json:"amount"`
	Profit               *float64 `json:"profit"`
	OwnerAgentCommission *float64 `json:"ownerAgentCommission"`
	Status               string   `json:"status"`
}
