package errors

import "fmt"

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

// PublishFailedErr returns a formatted error for a message the sink did not acknowledge
func PublishFailedErr(topic, txID string, err error) error {
	return E(Unavailable, fmt.Sprintf("publish to %s, transaction %s failed", topic, txID), err)
}

// EncodeFailedErr returns a formatted error for a record that could not be serialized
func EncodeFailedErr(txID string, err error) error {
	return E(Internal, fmt.Sprintf("encode transaction %s failed", txID), err)
}
