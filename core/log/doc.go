// File: doc.go
// Title: Core Log Package Documentation
// Description: Documents the structured logging package used by the VCL
//              engine components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

/*
Package log provides leveled, structured logging for the VCL engine.

Loggers carry contextual fields and a component name; derived loggers are
created with WithField/WithFields and share the underlying writer:

	logger := log.GetDefault().WithField("component", "vcl-parser")
	logger.Debug("trial parse failed", log.Fields{
		"subverb": sub.ID,
		"error":   err.Error(),
	})

Text output (default) renders one line per entry with sorted fields; JSON
output renders one object per line for machine consumption.
*/
package log
