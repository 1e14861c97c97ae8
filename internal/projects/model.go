// Package projects implements the project repository: CRUD over project
// records plus the filtered status report.
package projects

// Project is an organization-sponsored project a student can claim.
type Project struct {
	ID          int64
	Title       string
	Description string

	// AssigneeID is the RGM of the student assigned to the project, or nil
	// while it is still available. The reference into users is deliberately
	// not enforced; the column carries no foreign key.
	AssigneeID *int64

	// OrgRef is the opaque numeric identifier of the sponsoring organization
	// (a CNPJ in the original data). It is not validated against anything.
	OrgRef int64
}

// Assigned reports whether the project has been claimed.
func (p *Project) Assigned() bool {
	return p.AssigneeID != nil
}

// StatusFilter selects projects by assignment state in Report.
type StatusFilter int

const (
	// StatusAvailable selects projects with no assignee.
	StatusAvailable StatusFilter = iota
	// StatusAssigned selects projects that have been claimed.
	StatusAssigned
)
