// Package format names the wire formats documents move through.
//
// JSON and XML are the serialization formats the engine maps schemas
// onto; YAML exists for the of tool's transcoding and never reaches
// the engine.
//
// # Related Packages
//
//   - github.com/objform/objform/jsontext - JSON text layer
//   - github.com/objform/objform/xmltext - XML text layer
package format
