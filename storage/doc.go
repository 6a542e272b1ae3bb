// Package storage defines persistence contracts for founder profiles and
// their indexed documents, plus the binary serialization helpers shared
// by backends. Implementations live in subpackages (see storage/badger).
package storage
