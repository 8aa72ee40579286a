package repositories

// FieldChange is one column to overwrite during a reconciliation update.
// The sync services build an ordered list of changed fields from a fixed
// field table; repositories turn that list into a single UPDATE statement.
// Columns never come from user input.
type FieldChange struct {
	Column string
	Value  any
}
