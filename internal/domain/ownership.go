package domain

// ResourceKind names a record type whose owner can be resolved.
type ResourceKind int

const (
	ResourceUser ResourceKind = iota + 1
	ResourceApplicant
	ResourceCompany
	ResourceJob
	ResourceExperience
	ResourceApplication
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceUser:
		return "user"
	case ResourceApplicant:
		return "applicant"
	case ResourceCompany:
		return "company"
	case ResourceJob:
		return "job"
	case ResourceExperience:
		return "experience"
	case ResourceApplication:
		return "application"
	default:
		return "unknown"
	}
}
