package models

// Role defines the user role type
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Branch is an academic department code
type Branch string

const (
	BranchCS  Branch = "cs"
	BranchIT  Branch = "it"
	BranchECE Branch = "ece"
	BranchME  Branch = "me"
	BranchCE  Branch = "ce"
)

// AllBranches lists every valid branch code
var AllBranches = []Branch{BranchCS, BranchIT, BranchECE, BranchME, BranchCE}

// branchNames maps branch codes to display names
var branchNames = map[Branch]string{
	BranchCS:  "Computer Science",
	BranchIT:  "Information Technology",
	BranchECE: "Electronics & Communication",
	BranchME:  "Mechanical Engineering",
	BranchCE:  "Civil Engineering",
}

// IsValid reports whether the branch is one of the known codes
func (b Branch) IsValid() bool {
	_, ok := branchNames[b]
	return ok
}

// DisplayName returns a human-readable branch name, or the raw code if unknown
func (b Branch) DisplayName() string {
	if name, ok := branchNames[b]; ok {
		return name
	}
	return string(b)
}

// PlacementStatus defines the lifecycle state of a placement drive
type PlacementStatus string

const (
	PlacementActive   PlacementStatus = "active"
	PlacementInactive PlacementStatus = "inactive"
)

// ApplicationStatus defines the lifecycle state of an application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// IsDecision reports whether the status is one an admin may set on review
func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationApproved || s == ApplicationRejected
}

// StudentStanding is the derived placement standing of a student
type StudentStanding string

const (
	StandingPlaced    StudentStanding = "placed"
	StandingSearching StudentStanding = "searching"
)
