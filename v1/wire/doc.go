// Package wire implements the Confluent-style wire framing used by archived
// alert packets.
//
// Every packet begins with a fixed 5-byte header:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// The magic byte is always 0x0, followed by the identifier of the schema the
// payload was encoded with. The payload itself is opaque to this package; it
// is binary Avro decoded elsewhere against the identified schema.
//
// The package is pure: no network state, no allocation beyond the returned
// slices, and every function is independently testable.
package wire
