package safety

import (
	"errors"
	"fmt"
)

// NotInitializedError indicates that an operation requiring an adopted epoch
// state was called before Initialize succeeded.
type NotInitializedError struct {
	Msg string
}

func NewNotInitializedErrorf(msg string, args ...interface{}) error {
	return NotInitializedError{Msg: fmt.Sprintf(msg, args...)}
}

func (e NotInitializedError) Error() string { return e.Msg }

// IsNotInitializedError returns whether an error is NotInitializedError
func IsNotInitializedError(err error) bool {
	var e NotInitializedError
	return errors.As(err, &e)
}

// IncorrectEpochError indicates that the epoch of a submitted artifact does
// not match the engine's current epoch.
type IncorrectEpochError struct {
	ItemEpoch    uint64
	CurrentEpoch uint64
}

func NewIncorrectEpochError(itemEpoch uint64, currentEpoch uint64) error {
	return IncorrectEpochError{ItemEpoch: itemEpoch, CurrentEpoch: currentEpoch}
}

func (e IncorrectEpochError) Error() string {
	return fmt.Sprintf("incorrect epoch: item belongs to epoch %d, current epoch is %d", e.ItemEpoch, e.CurrentEpoch)
}

// IsIncorrectEpochError returns whether an error is IncorrectEpochError
func IsIncorrectEpochError(err error) bool {
	var e IncorrectEpochError
	return errors.As(err, &e)
}

// InvalidEpochChangeProofError indicates that an epoch change proof failed
// verification and no epoch state was adopted from it.
type InvalidEpochChangeProofError struct {
	err error
}

func NewInvalidEpochChangeProofError(err error) error {
	return InvalidEpochChangeProofError{err}
}

func NewInvalidEpochChangeProofErrorf(msg string, args ...interface{}) error {
	return InvalidEpochChangeProofError{fmt.Errorf(msg, args...)}
}

func (e InvalidEpochChangeProofError) Error() string {
	return fmt.Sprintf("invalid epoch change proof: %s", e.err.Error())
}
func (e InvalidEpochChangeProofError) Unwrap() error { return e.err }

// IsInvalidEpochChangeProofError returns whether an error is InvalidEpochChangeProofError
func IsInvalidEpochChangeProofError(err error) bool {
	var e InvalidEpochChangeProofError
	return errors.As(err, &e)
}

// SafetyViolationError indicates that signing the submitted artifact would
// violate a safety rule, such as voting twice in a round or voting against
// the lock. The request is refused and no state is changed.
type SafetyViolationError struct {
	err error
}

func NewSafetyViolationError(err error) error {
	return SafetyViolationError{err}
}

func NewSafetyViolationErrorf(msg string, args ...interface{}) error {
	return SafetyViolationError{fmt.Errorf(msg, args...)}
}

func (e SafetyViolationError) Error() string {
	return fmt.Sprintf("safety violation: %s", e.err.Error())
}
func (e SafetyViolationError) Unwrap() error { return e.err }

// IsSafetyViolationError returns whether an error is SafetyViolationError
func IsSafetyViolationError(err error) bool {
	var e SafetyViolationError
	return errors.As(err, &e)
}

// InvalidCertificateError indicates that a certificate embedded in a request
// is missing, malformed, or inconsistent with the artifact it accompanies.
type InvalidCertificateError struct {
	err error
}

func NewInvalidCertificateError(err error) error {
	return InvalidCertificateError{err}
}

func NewInvalidCertificateErrorf(msg string, args ...interface{}) error {
	return InvalidCertificateError{fmt.Errorf(msg, args...)}
}

func (e InvalidCertificateError) Error() string {
	return fmt.Sprintf("invalid certificate: %s", e.err.Error())
}
func (e InvalidCertificateError) Unwrap() error { return e.err }

// IsInvalidCertificateError returns whether an error is InvalidCertificateError
func IsInvalidCertificateError(err error) bool {
	var e InvalidCertificateError
	return errors.As(err, &e)
}

// SerializationError indicates that a request or response could not be
// encoded or decoded.
type SerializationError struct {
	err error
}

func NewSerializationError(err error) error {
	return SerializationError{err}
}

func NewSerializationErrorf(msg string, args ...interface{}) error {
	return SerializationError{fmt.Errorf(msg, args...)}
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %s", e.err.Error())
}
func (e SerializationError) Unwrap() error { return e.err }

// IsSerializationError returns whether an error is SerializationError
func IsSerializationError(err error) bool {
	var e SerializationError
	return errors.As(err, &e)
}

// SecureStorageError indicates that reading from or writing to the secure
// persistent store failed. State visible to the caller is undefined only up
// to the documented write order of the failed operation.
type SecureStorageError struct {
	err error
}

func NewSecureStorageError(err error) error {
	return SecureStorageError{err}
}

func NewSecureStorageErrorf(msg string, args ...interface{}) error {
	return SecureStorageError{fmt.Errorf(msg, args...)}
}

func (e SecureStorageError) Error() string {
	return fmt.Sprintf("secure storage error: %s", e.err.Error())
}
func (e SecureStorageError) Unwrap() error { return e.err }

// IsSecureStorageError returns whether an error is SecureStorageError
func IsSecureStorageError(err error) bool {
	var e SecureStorageError
	return errors.As(err, &e)
}

// InternalError indicates an unexpected failure inside the engine, such as a
// signing failure, that maps to no other error kind.
type InternalError struct {
	err error
}

func NewInternalError(err error) error {
	return InternalError{err}
}

func NewInternalErrorf(msg string, args ...interface{}) error {
	return InternalError{fmt.Errorf(msg, args...)}
}

func (e InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.err.Error())
}
func (e InternalError) Unwrap() error { return e.err }

// IsInternalError returns whether an error is InternalError
func IsInternalError(err error) bool {
	var e InternalError
	return errors.As(err, &e)
}

// ErrorKindLabel maps an error to the label of its kind. Errors outside the
// kinds above are labelled internal.
func ErrorKindLabel(err error) string {
	switch {
	case IsNotInitializedError(err):
		return "not_initialized"
	case IsIncorrectEpochError(err):
		return "incorrect_epoch"
	case IsInvalidEpochChangeProofError(err):
		return "invalid_epoch_change_proof"
	case IsSafetyViolationError(err):
		return "safety_violation"
	case IsInvalidCertificateError(err):
		return "invalid_certificate"
	case IsSerializationError(err):
		return "serialization"
	case IsSecureStorageError(err):
		return "secure_storage"
	default:
		return "internal"
	}
}
