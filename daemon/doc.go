// Package daemon implements the wire framing used to talk to the
// on-device aconfigd daemon over a Unix domain socket: a request is sent
// as a 4-byte big-endian length prefix followed by its payload, and a
// response is read the same way (spec §6.2). This is the one place in
// the whole format where big-endian appears — every on-disk integer is
// little-endian, but the daemon's framing prefix is not, and this package
// preserves that exception rather than "fixing" it to be consistent.
//
// Grounded on original_source's aflags/src/aconfig_storage_source.rs,
// which writes a request the same way: a 4-byte big-endian length, the
// message bytes, then reads a 4-byte big-endian length followed by the
// response bytes.
//
// This package is framing only. Parsing the actual
// ProtoStorageRequestMessages/ProtoStorageReturnMessages payloads is the
// daemon's business logic and explicitly out of scope (spec §1, §12);
// ListStorageRequest below is a minimal, hand-rolled stand-in payload for
// the one request this repo's framing is exercised against, not a
// generated protobuf message.
package daemon
