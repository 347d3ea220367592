// Package lifecycle holds the status state machines of the portal's
// entities and the time rules the daily expiry sweep evaluates. Status
// writes elsewhere in the codebase validate against these tables instead
// of assigning fields ad hoc, so the cascade behavior stays auditable.
package lifecycle

import "peso-job-portal/internal/domain"

// Machine is a declared set of legal status transitions for one entity.
type Machine struct {
	name        string
	transitions map[string][]string
}

// Name returns the entity name the machine governs.
func (m *Machine) Name() string {
	return m.name
}

// CanTransition reports whether from -> to is a declared transition.
// Self-transitions are never legal.
func (m *Machine) CanTransition(from, to string) bool {
	for _, t := range m.transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Terminal reports whether a status has no outgoing transitions.
func (m *Machine) Terminal(status string) bool {
	return len(m.transitions[status]) == 0
}

// Company accreditation lifecycle. Revocation is reachable only from
// accredited; a revoked or declined company re-enters review through a
// document re-submission (pending).
var Company = &Machine{
	name: "company",
	transitions: map[string][]string{
		domain.CompanyStatusIncomplete: {domain.CompanyStatusPending},
		domain.CompanyStatusPending:    {domain.CompanyStatusAccredited, domain.CompanyStatusDeclined},
		domain.CompanyStatusAccredited: {domain.CompanyStatusRevoked, domain.CompanyStatusDeclined},
		domain.CompanyStatusDeclined:   {domain.CompanyStatusPending},
		domain.CompanyStatusRevoked:    {domain.CompanyStatusPending},
	},
}

// CompanyDocuments review lifecycle. Every re-upload resets to pending,
// which is why verified/declined/expired all lead back there.
var Documents = &Machine{
	name: "company_documents",
	transitions: map[string][]string{
		domain.DocumentStatusPending:  {domain.DocumentStatusVerified, domain.DocumentStatusDeclined, domain.DocumentStatusExpired},
		domain.DocumentStatusVerified: {domain.DocumentStatusExpired, domain.DocumentStatusDeclined, domain.DocumentStatusPending},
		domain.DocumentStatusDeclined: {domain.DocumentStatusPending},
		domain.DocumentStatusExpired:  {domain.DocumentStatusPending},
	},
}

// JobVacancy operational lifecycle. Expiry is one-directional: the sweep
// never re-opens an expired vacancy. Unarchiving lands on ongoing or
// expired depending on the deadline.
var Vacancy = &Machine{
	name: "job_vacancy",
	transitions: map[string][]string{
		domain.VacancyStatusOngoing:  {domain.VacancyStatusExpired, domain.VacancyStatusArchived},
		domain.VacancyStatusExpired:  {domain.VacancyStatusArchived},
		domain.VacancyStatusArchived: {domain.VacancyStatusOngoing, domain.VacancyStatusExpired},
	},
}

// JobVacancy publication (moderation) lifecycle — orthogonal to the
// operational axis above.
var Publication = &Machine{
	name: "publication",
	transitions: map[string][]string{
		domain.PublicationStatusPending:  {domain.PublicationStatusApproved, domain.PublicationStatusDeclined},
		domain.PublicationStatusApproved: {domain.PublicationStatusDeclined},
		domain.PublicationStatusDeclined: {domain.PublicationStatusApproved},
	},
}

// Application lifecycle in strict mode: hiring requires a completed
// interview.
var ApplicationStrict = &Machine{
	name: "application",
	transitions: map[string][]string{
		domain.ApplicationStatusPending:            {domain.ApplicationStatusInterviewScheduled, domain.ApplicationStatusDeclined},
		domain.ApplicationStatusInterviewScheduled: {domain.ApplicationStatusInterviewCompleted, domain.ApplicationStatusDeclined},
		domain.ApplicationStatusInterviewCompleted: {domain.ApplicationStatusHired, domain.ApplicationStatusDeclined},
	},
}

// ApplicationPermissive mirrors the historical behavior where hiring is
// allowed from any non-terminal status while interview completion still
// requires a scheduled interview. Selected via STRICT_HIRE_PRECONDITION.
var ApplicationPermissive = &Machine{
	name: "application",
	transitions: map[string][]string{
		domain.ApplicationStatusPending:            {domain.ApplicationStatusInterviewScheduled, domain.ApplicationStatusHired, domain.ApplicationStatusDeclined},
		domain.ApplicationStatusInterviewScheduled: {domain.ApplicationStatusInterviewCompleted, domain.ApplicationStatusHired, domain.ApplicationStatusDeclined},
		domain.ApplicationStatusInterviewCompleted: {domain.ApplicationStatusHired, domain.ApplicationStatusDeclined},
	},
}

// ApplicationMachine selects the application FSM for the configured mode.
func ApplicationMachine(strictHire bool) *Machine {
	if strictHire {
		return ApplicationStrict
	}
	return ApplicationPermissive
}
