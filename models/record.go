package models

// Record is a single encoded message handed to a sink.
type Record struct {
	Key   []byte
	Value []byte
}
