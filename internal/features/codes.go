package features

import "strings"

// Code returns the numeric code the model was trained with.
func (g Gender) Code() (int, error) {
	switch g {
	case GenderMale:
		return 0, nil
	case GenderFemale:
		return 1, nil
	case GenderOther:
		return 2, nil
	}
	return 0, &UnmappedCategoryError{Field: "gender", Value: string(g)}
}

// Code returns the numeric code the model was trained with.
func (o Occupation) Code() (int, error) {
	switch o {
	case OccupationNurse:
		return 0, nil
	case OccupationDoctor:
		return 1, nil
	case OccupationEngineer:
		return 2, nil
	case OccupationLawyer:
		return 3, nil
	case OccupationTeacher:
		return 4, nil
	case OccupationAccountant:
		return 5, nil
	case OccupationSalesperson:
		return 6, nil
	case OccupationStudent:
		return 7, nil
	case OccupationOthers:
		return 8, nil
	}
	return 0, &UnmappedCategoryError{Field: "occupation", Value: string(o)}
}

// ParseGender matches s case-insensitively against the known genders.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders() {
		if strings.EqualFold(strings.TrimSpace(s), string(g)) {
			return g, nil
		}
	}
	return "", &UnmappedCategoryError{Field: "gender", Value: s}
}

// ParseOccupation matches s case-insensitively against the known occupations.
func ParseOccupation(s string) (Occupation, error) {
	for _, o := range Occupations() {
		if strings.EqualFold(strings.TrimSpace(s), string(o)) {
			return o, nil
		}
	}
	return "", &UnmappedCategoryError{Field: "occupation", Value: s}
}
