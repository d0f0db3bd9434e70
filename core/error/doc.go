// File: doc.go
// Title: Core Error Package Documentation
// Description: Documents the tagged error type shared by all VCL packages.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

/*
Package error provides the tagged error type used throughout the VCL engine.

Every error that crosses a package boundary is an *Error carrying a Kind and
a Code:

  • KindInput   — the user typed something the grammar rejects; always safe
    to echo back to the user.
  • KindGrammar — the host application registered a defective grammar;
    aborts registration, never shown to end users.
  • KindInternal — a programming defect inside the engine.

The package is conventionally imported as vclerr:

	import vclerr "github.com/msto63/vcl/core/error"

	err := vclerr.Newf(vclerr.KindInput, vclerr.CodeUnknownOption,
		"unknown option: %s", name)
*/
package error
