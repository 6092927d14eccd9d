// Package storage provides the key-value persistence layer the rest of the
// system writes through. It mirrors a browser localStorage contract: string
// keys, string values, synchronous calls, last write wins. There is no
// cross-process coordination; exactly one logical writer is assumed.
package storage

// Store is the persistence contract. Get reports whether the key was
// present. Set and Remove never fail from the caller's point of view;
// implementations log and carry on if the backing medium misbehaves.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}
