// Package protocol implements the binary wire protocol between a motion
// host and its rendering clients.
//
// The server streams animation command trees; clients interpolate locally
// and send interaction events back. Frames use a fixed 4-byte header
// (type, flags, big-endian payload length) followed by a payload of
// varint- and IEEE-754-encoded fields. Decoding enforces allocation,
// collection, and nesting limits so a malicious peer cannot exhaust the
// host.
package protocol
