package dto

// SuccessResponse is the body of writes that return no data
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// OK is the canonical success body
var OK = SuccessResponse{Success: true}
