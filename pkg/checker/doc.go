// Package checker implements the legacy validation path for settings.
//
// A Checker is called with the setting's full name and its raw value, and
// fails loudly on the first constraint it finds violated - wrong base type,
// out-of-range number, bad element type, bad length, or disallowed emptiness.
// This short-circuit behavior is preserved exactly for backward compatibility
// and contrasts with the validate package, which runs every validator and
// aggregates all failures.
//
// Deprecated: the whole package is kept only so that existing declarations
// using WithChecker keep working. New code should declare validators instead:
//
//	// legacy
//	appsettings.NewInt("retries", appsettings.WithChecker(
//	    checker.NewInteger(checker.Minimum(0), checker.Maximum(5)),
//	))
//
//	// current
//	appsettings.NewInt("retries",
//	    appsettings.WithMinimum(0), appsettings.WithMaximum(5),
//	)
//
// Every constructor logs a deprecation warning through log/slog.
package checker
