package serializer

import (
	"errors"

	"github.com/bastionlabs/bastion-go/model/bastion"
	"github.com/bastionlabs/bastion-go/safety"
)

// EncodeRequest encodes a request struct into its wire representation: one
// request code byte followed by the canonical CBOR encoding of the struct.
func EncodeRequest(request interface{}) ([]byte, error) {
	code, err := requestCode(request)
	if err != nil {
		return nil, safety.NewSerializationError(err)
	}
	data, err := bastion.EncodeCanonical(request)
	if err != nil {
		return nil, safety.NewSerializationErrorf("could not encode request (%T): %w", request, err)
	}
	return append([]byte{code}, data...), nil
}

// DecodeRequest decodes the wire representation of a request. The concrete
// type of the returned value identifies the requested operation.
func DecodeRequest(data []byte) (interface{}, error) {
	if len(data) == 0 {
		return nil, safety.NewSerializationErrorf("request is empty")
	}
	request, err := requestForCode(data[0])
	if err != nil {
		return nil, safety.NewSerializationError(err)
	}
	err = bastion.DecodeCanonical(data[1:], request)
	if err != nil {
		return nil, safety.NewSerializationErrorf("could not decode request (code %d): %w", data[0], err)
	}
	return request, nil
}

// EncodeSuccess encodes a successful operation result: the success status
// byte followed by the canonical CBOR encoding of the result. A nil result
// encodes to the bare status byte, for operations that return nothing.
func EncodeSuccess(result interface{}) ([]byte, error) {
	if result == nil {
		return []byte{statusSuccess}, nil
	}
	data, err := bastion.EncodeCanonical(result)
	if err != nil {
		return nil, safety.NewSerializationErrorf("could not encode result (%T): %w", result, err)
	}
	return append([]byte{statusSuccess}, data...), nil
}

// EncodeFailure encodes a refused operation: the failure status byte
// followed by the canonical CBOR encoding of an envelope carrying the error
// kind and message.
func EncodeFailure(operr error) ([]byte, error) {
	data, err := bastion.EncodeCanonical(envelopeFromError(operr))
	if err != nil {
		return nil, safety.NewSerializationErrorf("could not encode error envelope: %w", err)
	}
	return append([]byte{statusFailure}, data...), nil
}

// DecodeResponse decodes the wire representation of a response. A success
// payload is decoded into result, which must point to the operation's result
// type; a nil result skips the payload for operations that return nothing. A
// failure is returned as the typed error the service reported, reconstructed
// with the same kind and message.
func DecodeResponse(data []byte, result interface{}) error {
	if len(data) == 0 {
		return safety.NewSerializationErrorf("response is empty")
	}
	switch data[0] {
	case statusSuccess:
		if result == nil {
			return nil
		}
		err := bastion.DecodeCanonical(data[1:], result)
		if err != nil {
			return safety.NewSerializationErrorf("could not decode result (%T): %w", result, err)
		}
		return nil
	case statusFailure:
		var env errorEnvelope
		err := bastion.DecodeCanonical(data[1:], &env)
		if err != nil {
			return safety.NewSerializationErrorf("could not decode error envelope: %w", err)
		}
		return env.toError()
	default:
		return safety.NewSerializationErrorf("unknown response status (%d)", data[0])
	}
}

// errorEnvelope carries one typed error across the wire. ItemEpoch and
// CurrentEpoch are meaningful only for kindIncorrectEpoch.
type errorEnvelope struct {
	Kind         uint8
	Message      string
	ItemEpoch    uint64
	CurrentEpoch uint64
}

// envelopeFromError flattens a typed error into its wire envelope. The
// message is taken from inside the kind wrapper, so reconstruction does not
// stack a second kind prefix on top. Errors outside the known kinds travel
// as internal errors.
func envelopeFromError(err error) errorEnvelope {
	switch {
	case safety.IsNotInitializedError(err):
		var e safety.NotInitializedError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindNotInitialized, Message: e.Msg}
	case safety.IsIncorrectEpochError(err):
		var e safety.IncorrectEpochError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindIncorrectEpoch, ItemEpoch: e.ItemEpoch, CurrentEpoch: e.CurrentEpoch}
	case safety.IsInvalidEpochChangeProofError(err):
		var e safety.InvalidEpochChangeProofError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindInvalidEpochChangeProof, Message: e.Unwrap().Error()}
	case safety.IsSafetyViolationError(err):
		var e safety.SafetyViolationError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindSafetyViolation, Message: e.Unwrap().Error()}
	case safety.IsInvalidCertificateError(err):
		var e safety.InvalidCertificateError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindInvalidCertificate, Message: e.Unwrap().Error()}
	case safety.IsSerializationError(err):
		var e safety.SerializationError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindSerialization, Message: e.Unwrap().Error()}
	case safety.IsSecureStorageError(err):
		var e safety.SecureStorageError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindSecureStorage, Message: e.Unwrap().Error()}
	case safety.IsInternalError(err):
		var e safety.InternalError
		errors.As(err, &e)
		return errorEnvelope{Kind: kindInternal, Message: e.Unwrap().Error()}
	default:
		return errorEnvelope{Kind: kindInternal, Message: err.Error()}
	}
}

// toError reconstructs the typed error the envelope carries. The kind and
// the message survive the round trip; the Go wrapping chain does not.
func (env errorEnvelope) toError() error {
	switch env.Kind {
	case kindNotInitialized:
		return safety.NewNotInitializedErrorf("%s", env.Message)
	case kindIncorrectEpoch:
		return safety.NewIncorrectEpochError(env.ItemEpoch, env.CurrentEpoch)
	case kindInvalidEpochChangeProof:
		return safety.NewInvalidEpochChangeProofErrorf("%s", env.Message)
	case kindSafetyViolation:
		return safety.NewSafetyViolationErrorf("%s", env.Message)
	case kindInvalidCertificate:
		return safety.NewInvalidCertificateErrorf("%s", env.Message)
	case kindSerialization:
		return safety.NewSerializationErrorf("%s", env.Message)
	case kindSecureStorage:
		return safety.NewSecureStorageErrorf("%s", env.Message)
	case kindInternal:
		return safety.NewInternalErrorf("%s", env.Message)
	default:
		return safety.NewSerializationErrorf("unknown error kind (%d)", env.Kind)
	}
}
