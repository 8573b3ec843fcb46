package httpapi

// Request and response shapes for the /users endpoints. The error body is
// always {"errors":[...]} with HTTP 422 for rejected input and 401 for
// unauthenticated calls.

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type deleteRequest struct {
	CurrentPassword string `json:"current_password"`
}

type accountResponse struct {
	Email string `json:"email"`
}

type updateResponse struct {
	Message string          `json:"message"`
	User    accountResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

// User-facing messages. The delete/update strings are part of the observed
// contract and must not drift.
const (
	msgAccountUpdated         = "Account updated successfully."
	msgAccountDeleted         = "Account deleted successfully."
	msgCurrentPasswordMissing = "Current password is required to delete account"
	msgCurrentPasswordWrong   = "Current password is incorrect"
	msgEmailTaken             = "Email has already been taken"
	msgEmailBlank             = "Email can't be blank"
	msgPasswordBlank          = "Password can't be blank"
	msgPasswordTooShort       = "Password is too short (minimum is 6 characters)"
	msgPasswordMismatch       = "Password confirmation doesn't match Password"
	msgInvalidLogin           = "Invalid email or password"
	msgSignInRequired         = "You need to sign in or sign up before continuing."
	msgAccountGone            = "Account no longer exists"
	msgInternal               = "Something went wrong"
)
