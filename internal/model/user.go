package model

// Sex is the owner's sex as recorded in the fixtures.
type Sex string

const (
	// SexMale marks a male owner.
	SexMale Sex = "m"
	// SexFemale marks a female owner.
	SexFemale Sex = "f"
)

// User owns one or more categories.
type User struct {
	Name string `json:"name" yaml:"name" db:"name"`
	Sex  Sex    `json:"sex" yaml:"sex" db:"sex"`
	ID   int    `json:"id" yaml:"id" db:"id"`
}

// IsFemale reports whether the user is recorded as female.
func (u User) IsFemale() bool {
	return u.Sex == SexFemale
}

// IsMale reports whether the user is recorded as male.
func (u User) IsMale() bool {
	return u.Sex == SexMale
}
