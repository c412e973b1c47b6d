package dto

import "strings"

// CreateProfileRequest is the optional body of profile creation
type CreateProfileRequest struct {
	FullName    *string `json:"full_name" binding:"omitempty,max=200" example:"Jane Doe"`
	DesiredRole *string `json:"desired_role" binding:"omitempty,oneof=student mentor" example:"student"`
}

// UpdateProfileRequest carries the editable display fields
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=200" example:"Jane Doe"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

// IsEmpty reports whether no field was supplied
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FullName == nil && r.AvatarURL == nil
}

// UpdateRoleRequest selects the role a user is adopting
type UpdateRoleRequest struct {
	DesiredRole string `json:"desired_role" binding:"required" example:"mentor"`
}

// DataResponse wraps a returned row
type DataResponse struct {
	Data interface{} `json:"data"`
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
