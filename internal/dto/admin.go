package dto

// UserDeleteResponse acknowledges an admin user deletion
type UserDeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

const StatusUserDeleted = "USER SUCCESSFULLY DELETED"
