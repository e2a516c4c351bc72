package errors

// Error code constants organized by phase
// E001-E099: Lexer errors
// E100-E199: Parser errors
// E200-E299: Resolution/assembly errors
// E300-E399: Enumeration errors
// E400-E499: Export errors

const (
	// Lexer errors (E001-E099)
	CodeUnexpectedCharacter = "E001"
	CodeUnterminatedBracket = "E002"
	CodeInvalidElement      = "E003"
	CodeInvalidRingBond     = "E006"
	CodeInvalidAtomClass    = "E007"

	// Parser errors (E100-E199)
	CodeEmptyFragment     = "E100"
	CodeUnmatchedParen    = "E101"
	CodeDanglingBond      = "E102"
	CodeUnclosedRing      = "E103"
	CodeDuplicateRingBond = "E104"
	CodeDisconnected      = "E105"
	CodeOverValence       = "E106"
	CodeMarkerNoHost      = "E107"
	CodeMarkerCapacity    = "E108"
	CodeBondOrderConflict = "E109"
	CodeLeadingBond       = "E110"
	CodeEndGroupAmbiguous = "E112"

	// Resolution/assembly errors (E200-E299)
	CodePointConsumed     = "E200"
	CodeCapacityExhausted = "E201"
	CodeRoleConflict      = "E202"
	CodeNoOpenPoint       = "E203"
	CodeSelfBond          = "E204"
	CodeDuplicateBond     = "E205"
	CodeEmptySequence     = "E206"

	// Enumeration errors (E300-E399)
	CodeRatioUnsatisfiable = "E300"
	CodeRoleUnsatisfiable  = "E301"
	CodeEmptyPool          = "E302"
	CodeInvalidConstraint  = "E303"

	// Export errors (E400-E499)
	CodeUnknownFormat = "E400"
	CodeOpenValences  = "E401"
	CodeNotFrozen     = "E402"
)
