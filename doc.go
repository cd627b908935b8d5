// Package appsettings lets an application declare a typed, validated schema
// for the configuration values it reads from an external store, so that
// misconfiguration is caught once at startup with complete diagnostics
// instead of surfacing at arbitrary use sites.
//
// A declaration names a value, gives it a default, optional constraints and
// an optional transform; resolution and validation happen against a
// store.Store, an opaque read-only lookup by uppercase key:
//
//	cfg := store.Map{
//	    "MYAPP_RETRIES": 3,
//	    "MYAPP_DSN":     "postgres://localhost/app",
//	}
//
//	retries := appsettings.NewInt("retries",
//	    appsettings.WithPrefix("MYAPP_"),
//	    appsettings.WithMinimum(0), appsettings.WithMaximum(5),
//	)
//	n, err := retries.Value(cfg) // 3
//
// # Resolution
//
// GetValue performs lookup, fallback and transform, in that order. A present
// value is transformed and returned. An absent value is a hard failure when
// the setting is Required, otherwise the default applies - a literal
// (WithDefault) or a producer invoked at read time (WithDefaultFunc),
// optionally routed through the transform (WithTransformDefault). Resolution
// is re-evaluated on every call and never cached.
//
// # Validation
//
// Check validates the raw value without resolving it. Validators come from
// three sources, run in order and never short-circuit: the variant's type
// validator, caller validators (WithValidators), and validators synthesized
// from convenience constraints such as WithMinimum or WithItemType. All
// failure messages are collected into one error wrapping ErrInvalidSetting.
// A legacy checker (WithChecker, deprecated) runs before the validators and
// keeps its historical behavior: it fails immediately on the first violation.
//
// # Nesting
//
// NewNested composes settings into a block whose raw value is a mapping;
// children resolve against the block instead of the store and may be
// partially specified. Checking a nested block visits every child before
// failing, so one run reports all problems. NewNamespace does the same
// grouping at the top level, binding a prefix and a store to a set of
// declarations:
//
//	ns := appsettings.NewNamespace(cfg, "MYAPP_", map[string]appsettings.Setting{
//	    "retries": appsettings.NewInt("", appsettings.WithMinimum(0)),
//	    "dsn":     appsettings.NewString("", appsettings.Required()),
//	})
//	if err := ns.Check(); err != nil {
//	    log.Fatal(err) // every problem, not just the first
//	}
//
// # Error Handling
//
// Sentinel errors compose with errors.Is: ErrNotFound and ErrKeyNotFound for
// the two absence shapes (top-level vs. nested item), ErrRequired for a
// missing required setting, ErrInvalidSetting for validator failures, and
// ErrCheckFailed for a failed namespace check. Validator messages travel as
// validate.Errors and can be recovered with errors.As.
package appsettings
