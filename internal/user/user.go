// Package user defines the user record persisted to and reloaded from the users file.
package user

// User represents a single user record.
// Neither field is validated or normalized.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Users is an ordered sequence of user records as it appears in the users file.
type Users []User

// Fixture returns the fixed record sequence the application writes on every run.
func Fixture() Users {
	return Users{
		{Name: "Aye Chan", Email: "fate.macz@gmail.com"},
	}
}
