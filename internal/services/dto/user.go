package dto

// UpdateUserRequest is a partial profile update. There is deliberately no
// password field: the credential cannot be changed through this path, so
// a "password" key in the request body is dropped at the binding step.
type UpdateUserRequest struct {
	Name     *string `json:"name" form:"name"`
	LastName *string `json:"lastName" form:"lastName"`
	Email    *string `json:"email" form:"email" validate:"omitempty,email"`
	Location *string `json:"location" form:"location"`
}

// AvatarUpload describes a client-submitted image already spooled to a
// local temp file by the handler.
type AvatarUpload struct {
	TempPath    string
	ContentType string
	Ext         string
}

type AppStatsResponse struct {
	Users int64 `json:"users"`
	Jobs  int64 `json:"jobs"`
}
