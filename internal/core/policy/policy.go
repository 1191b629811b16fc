// Package policy decides what a principal may do to a task. Every function
// is pure: no storage, no clock. Unknown roles are denied on every path.
package policy

import "github.com/TukaHeba/Task-System/internal/core/domain"

type Outcome uint8

// The zero Outcome is Deny so an uninitialised Decision never allows.
const (
	Deny Outcome = iota
	Allow
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Invalid:
		return "invalid"
	default:
		return "deny"
	}
}

const (
	ReasonUnknownRole     = "unrecognized role"
	ReasonNotCreator      = "managers may only act on tasks they created"
	ReasonNotAssignee     = "users may only act on tasks assigned to them"
	ReasonUserCannotWrite = "users may not perform this operation"
	ReasonStatusRequired  = "users may only update the status"
)

type Decision struct {
	Outcome    Outcome
	Reason     string
	Changes    domain.TaskChanges
	Violations []domain.FieldViolation
}

func (d Decision) Allowed() bool {
	return d.Outcome == Allow
}

func allow() Decision {
	return Decision{Outcome: Allow}
}

func allowChanges(changes domain.TaskChanges) Decision {
	return Decision{Outcome: Allow, Changes: changes}
}

func deny(reason string) Decision {
	return Decision{Outcome: Deny, Reason: reason}
}

// Scope restricts a listing. All means no ownership constraint.
type Scope struct {
	All        bool
	CreatedBy  *uint64
	AssignedTo *uint64
}

func ListScope(p domain.Principal) (Scope, Decision) {
	id := p.ID
	switch p.Role {
	case domain.RoleAdmin:
		return Scope{All: true}, allow()
	case domain.RoleManager:
		return Scope{CreatedBy: &id}, allow()
	case domain.RoleUser:
		return Scope{AssignedTo: &id}, allow()
	default:
		return Scope{}, deny(ReasonUnknownRole)
	}
}

func Show(p domain.Principal, task domain.Task) Decision {
	switch p.Role {
	case domain.RoleAdmin:
		return allow()
	case domain.RoleManager:
		if !task.IsCreatedBy(p.ID) {
			return deny(ReasonNotCreator)
		}
		return allow()
	case domain.RoleUser:
		if !task.IsAssignedTo(p.ID) {
			return deny(ReasonNotAssignee)
		}
		return allow()
	default:
		return deny(ReasonUnknownRole)
	}
}

func Create(p domain.Principal) Decision {
	switch p.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return allow()
	case domain.RoleUser:
		return deny(ReasonUserCannotWrite)
	default:
		return deny(ReasonUnknownRole)
	}
}

// Update computes the effective changes a principal may apply. Managers keep
// the current assignee whatever they send; users are reduced to the status.
func Update(p domain.Principal, task domain.Task, requested domain.TaskChanges) Decision {
	switch p.Role {
	case domain.RoleAdmin:
		return allowChanges(normalized(requested))
	case domain.RoleManager:
		if !task.IsCreatedBy(p.ID) {
			return deny(ReasonNotCreator)
		}
		changes := normalized(requested)
		changes.AssignedTo = nil
		changes.AssignedToSet = false
		return allowChanges(changes)
	case domain.RoleUser:
		if !task.IsAssignedTo(p.ID) {
			return deny(ReasonNotAssignee)
		}
		if requested.Status == nil {
			return Decision{
				Outcome:    Invalid,
				Reason:     ReasonStatusRequired,
				Violations: []domain.FieldViolation{{Field: "status", Rule: domain.RuleRequired}},
			}
		}
		status := *requested.Status
		return allowChanges(domain.TaskChanges{Status: &status})
	default:
		return deny(ReasonUnknownRole)
	}
}

func Delete(p domain.Principal, task domain.Task) Decision {
	switch p.Role {
	case domain.RoleAdmin:
		return allow()
	case domain.RoleManager:
		if !task.IsCreatedBy(p.ID) {
			return deny(ReasonNotCreator)
		}
		return allow()
	case domain.RoleUser:
		return deny(ReasonUserCannotWrite)
	default:
		return deny(ReasonUnknownRole)
	}
}

// Assign is gated on role alone: managers may assign any task they can
// reach, not only their own.
func Assign(p domain.Principal) Decision {
	switch p.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return allow()
	case domain.RoleUser:
		return deny(ReasonUserCannotWrite)
	default:
		return deny(ReasonUnknownRole)
	}
}

func normalized(changes domain.TaskChanges) domain.TaskChanges {
	if changes.Title != nil {
		title := domain.NormalizeTitle(*changes.Title)
		changes.Title = &title
	}
	return changes
}
