// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the VCL engine. Codes identify the
//              exact parse or grammar failure independently of the
//              human-readable message text.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the VCL engine
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// User input codes
	CodeUnknownOption         Code = "UNKNOWN_OPTION"
	CodeUnknownCommand        Code = "UNKNOWN_COMMAND"
	CodeUnknownSubcommand     Code = "UNKNOWN_SUBCOMMAND"
	CodeTooManyArguments      Code = "TOO_MANY_ARGUMENTS"
	CodeInsufficientArguments Code = "INSUFFICIENT_ARGUMENTS"
	CodeInvalidValue          Code = "INVALID_VALUE"
	CodeSuperfluousValue      Code = "SUPERFLUOUS_VALUE"
	CodeTrialDepth            Code = "TRIAL_DEPTH"
	CodeUnterminatedQuote     Code = "UNTERMINATED_QUOTE"
	CodeEmptyInput            Code = "EMPTY_INPUT"
	CodeInputTooLong          Code = "INPUT_TOO_LONG"
	CodePermissionDenied      Code = "PERMISSION_DENIED"

	// Grammar definition codes
	CodeArgumentOrder     Code = "ARGUMENT_ORDER"
	CodeDuplicateOption   Code = "DUPLICATE_OPTION"
	CodeDuplicateCommand  Code = "DUPLICATE_COMMAND"
	CodeInvalidOptionName Code = "INVALID_OPTION_NAME"
	CodeInvalidDefinition Code = "INVALID_DEFINITION"
	CodeUnknownType       Code = "UNKNOWN_TYPE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
