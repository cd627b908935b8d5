// Package objpath resolves dot-separated object paths like "db.drivers.pg"
// into live Go values.
//
// Dynamic languages resolve such paths by importing the longest importable
// module prefix and walking attributes from there. Go has no runtime imports,
// so the importer is replaced with a Registry: applications register root
// objects under dotted names during startup, and Resolve peels path segments
// from the right until it finds the longest registered prefix, then walks the
// remaining segments with reflection (methods, struct fields, string-keyed
// map entries).
//
//	objpath.Register("myapp.handlers", handlers)
//	h, err := objpath.Resolve("myapp.handlers.Signup")
//
// Only registered roots can anchor a path; values that exist solely in local
// scope cannot be named. Resolution failures wrap ErrNotFound (no prefix
// registered, naming the shortest prefix tried) or ErrNoAttribute (a walk
// step had nowhere to go).
package objpath
