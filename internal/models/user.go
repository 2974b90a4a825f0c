package models

type User struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// NonFieldErrors : clé réservée des erreurs non liées à un champ
const NonFieldErrors = "non_field_errors"

// FieldErrors : erreurs de validation par champ, messages ordonnés
type FieldErrors map[string][]string

// First retourne le premier message pour un champ, ou "" s'il n'y en a pas
func (e FieldErrors) First(field string) string {
	if msgs, ok := e[field]; ok && len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// AuthResponse : réponse de /account/login et /account/register
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

type UserResponse struct {
	AuthResponse
	User *User `json:"user"`
}
