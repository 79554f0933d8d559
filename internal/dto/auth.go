package dto

// SignupUserRequest represents the request payload for user registration
type SignupUserRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	UserName      string `json:"userName" validate:"required,max=30"`
	EmailAddress  string `json:"emailAddress" validate:"required,max=50"`
	Password      string `json:"password" validate:"required"`
	Country       string `json:"country"`
	AboutMe       string `json:"aboutMe"`
	DOB           string `json:"dob"`
	ContactNumber string `json:"contactNumber"`
}

// SignupUserResponse is returned after a successful registration
type SignupUserResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SigninResponse is returned after a successful sign-in. The access token
// travels in the access_token response header.
type SigninResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SignoutResponse is returned after a successful sign-out
type SignoutResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	StatusUserRegistered = "USER SUCCESSFULLY REGISTERED"
	MessageSignedIn      = "SIGNED IN SUCCESSFULLY"
	MessageSignedOut     = "SIGNED OUT SUCCESSFULLY"
)
