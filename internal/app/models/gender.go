package models

import "fmt"

// Gender is the closed set of values stored in members.gender.
type Gender string

const (
	GenderMan   Gender = "MAN"
	GenderWoman Gender = "WOMAN"
)

var genderNames = map[Gender]string{
	GenderMan:   "남자",
	GenderWoman: "여자",
}

// ParseGender accepts only the stored codes; anything else is an error.
func ParseGender(code string) (Gender, error) {
	g := Gender(code)
	if _, ok := genderNames[g]; !ok {
		return "", fmt.Errorf("unknown gender code %q", code)
	}
	return g, nil
}

// Code is the persisted and serialized form.
func (g Gender) Code() string {
	return string(g)
}

// CodeName is the display name shown to users.
func (g Gender) CodeName() string {
	return genderNames[g]
}

// IsValid reports whether g is one of the declared constants.
func (g Gender) IsValid() bool {
	_, ok := genderNames[g]
	return ok
}
