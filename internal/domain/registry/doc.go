// Package registry implements the academic record store.
//
// This package is the domain layer of registrar:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines the entity types (Professor, Subject, Student) and the Code value object
//   - Implements registration rules (unique names, referential integrity, registration numbers)
//   - Implements the cross-reference queries between professors, subjects and students
//   - Has no knowledge of terminal I/O, configuration or logging
//
// # Codes
//
// Every entity is identified by its position in an append-only collection.
// Code holds that position zero-based; operators see and type it one-based.
// Operations that take user input (RegisterSubject, RegisterStudent and the
// By* queries) accept one-based integers and convert them with FromDisplay.
// Entities are never updated or removed, so a code stays valid for the
// lifetime of the Registry.
//
// # Registry
//
// Registry owns the three collections. It provides:
//   - RegisterProfessor, RegisterSubject, RegisterStudent as the only mutators
//   - RequireProfessors, RequireSubjects, RequireStudents, CheckSubjectName and
//     CheckStudent for staged validation before all input has been gathered
//   - ListProfessors, ListSubjects, ListStudents for reports
//   - StudentsBySubject, SubjectsByProfessor, StudentsByProfessor for queries
//
// Provider is the read-only interface Registry implements. Callers compose
// it with the mutators they need rather than depending on *Registry.
//
// # Subject selection
//
// SelectionPolicy decides what happens to invalid or repeated subject codes
// during student registration. PolicyPermissive drops them and reports them
// in Enrollment.Rejected; PolicyStrict fails the whole registration.
//
// # Registration numbers
//
// Students receive a random registration number in [0, MaxRegistrationNumber].
// Numbers are drawn from a NumberSource with retry on collision; after
// MaxAttempts draws the allocator scans for the next free number, so a
// crowded number space slows registration down rather than failing it.
// ErrRegistrationSpaceExhausted is returned only once every number is taken.
package registry
