package registry

import (
	"fmt"
	"slices"
)

// SelectionPolicy decides how RegisterStudent treats subject codes that are
// out of range or repeated.
type SelectionPolicy int

const (
	// PolicyPermissive drops bad picks and enrols the student in the rest.
	PolicyPermissive SelectionPolicy = iota
	// PolicyStrict rejects the registration on the first bad pick.
	PolicyStrict
)

func (p SelectionPolicy) String() string {
	switch p {
	case PolicyPermissive:
		return "permissive"
	case PolicyStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a configuration value into a SelectionPolicy.
// The empty string selects PolicyPermissive.
func ParsePolicy(s string) (SelectionPolicy, error) {
	switch s {
	case "", "permissive":
		return PolicyPermissive, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return PolicyPermissive, fmt.Errorf("unknown selection policy %q (must be \"permissive\" or \"strict\")", s)
	}
}

// selectSubjects resolves one-based picks against a collection of total
// subjects. Accepted codes keep the order they were requested in.
func (p SelectionPolicy) selectSubjects(requested []int, total int) ([]Code, []Rejection, error) {
	accepted := make([]Code, 0, len(requested))
	var rejected []Rejection

	for _, n := range requested {
		code := FromDisplay(n)

		var reason error
		switch {
		case !code.within(total):
			reason = ErrInvalidSubjectCode
		case slices.Contains(accepted, code):
			reason = ErrDuplicateSubjectCode
		default:
			accepted = append(accepted, code)
			continue
		}

		if p == PolicyStrict {
			return nil, nil, fmt.Errorf("%w: %d", reason, n)
		}
		rejected = append(rejected, Rejection{Requested: n, Reason: reason})
	}

	// A student must take at least one subject, whatever the policy.
	if len(accepted) == 0 {
		return nil, rejected, fmt.Errorf("%w: none of %v is usable", ErrInvalidSubjectCode, requested)
	}
	return accepted, rejected, nil
}
