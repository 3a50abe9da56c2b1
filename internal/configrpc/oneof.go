package configrpc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// BodyOrErrorCase is the discriminant of the body/error_container oneof.
type BodyOrErrorCase uint64

const (
	BodyOrErrorNotSet         BodyOrErrorCase = 0
	BodyOrErrorBody           BodyOrErrorCase = 1
	BodyOrErrorErrorContainer BodyOrErrorCase = 2
)

// envelope is the on-wire layout of a oneof: the discriminant next to the
// still-encoded payload of the selected variant.
type envelope struct {
	Case    BodyOrErrorCase `cbor:"1,keyasint"`
	Payload cbor.RawMessage `cbor:"2,keyasint,omitempty"`
}

type bodyOrError interface {
	bodyOrErrorCase() BodyOrErrorCase
}

type isLoadConfigurationResponseBodyOrError interface {
	bodyOrError
	isLoadConfigurationResponseBodyOrError()
}

type isLoadNodesConfigurationResponseBodyOrError interface {
	bodyOrError
	isLoadNodesConfigurationResponseBodyOrError()
}

// UnknownBodyOrError is what a receiver decodes when the peer sent a
// discriminant outside the known set. Payload keeps the raw variant bytes.
type UnknownBodyOrError struct {
	Case    BodyOrErrorCase
	Payload cbor.RawMessage
}

func (*LoadConfigurationResponseBody) bodyOrErrorCase() BodyOrErrorCase      { return BodyOrErrorBody }
func (*LoadNodesConfigurationResponseBody) bodyOrErrorCase() BodyOrErrorCase { return BodyOrErrorBody }
func (*ErrorContainer) bodyOrErrorCase() BodyOrErrorCase                     { return BodyOrErrorErrorContainer }
func (u *UnknownBodyOrError) bodyOrErrorCase() BodyOrErrorCase               { return u.Case }

func (*LoadConfigurationResponseBody) isLoadConfigurationResponseBodyOrError() {}
func (*ErrorContainer) isLoadConfigurationResponseBodyOrError()                {}
func (*UnknownBodyOrError) isLoadConfigurationResponseBodyOrError()            {}

func (*LoadNodesConfigurationResponseBody) isLoadNodesConfigurationResponseBodyOrError() {}
func (*ErrorContainer) isLoadNodesConfigurationResponseBodyOrError()                     {}
func (*UnknownBodyOrError) isLoadNodesConfigurationResponseBodyOrError()                 {}

// BodyOrErrorCase reports which variant r carries.
func (r *LoadConfigurationResponse) BodyOrErrorCase() BodyOrErrorCase {
	if r == nil || r.BodyOrError == nil {
		return BodyOrErrorNotSet
	}
	return r.BodyOrError.bodyOrErrorCase()
}

// BodyOrErrorCase reports which variant r carries.
func (r *LoadNodesConfigurationResponse) BodyOrErrorCase() BodyOrErrorCase {
	if r == nil || r.BodyOrError == nil {
		return BodyOrErrorNotSet
	}
	return r.BodyOrError.bodyOrErrorCase()
}

// MarshalCBOR implements cbor.Marshaler.
func (r *LoadConfigurationResponse) MarshalCBOR() ([]byte, error) {
	return marshalEnvelope(r.BodyOrError)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *LoadConfigurationResponse) UnmarshalCBOR(data []byte) error {
	env, err := unmarshalEnvelope(data)
	if err != nil {
		return err
	}

	switch env.Case {
	case BodyOrErrorNotSet:
		r.BodyOrError = nil
	case BodyOrErrorBody:
		body := new(LoadConfigurationResponseBody)
		if err = decodePayload(env, body); err != nil {
			return err
		}
		r.BodyOrError = body
	case BodyOrErrorErrorContainer:
		container := new(ErrorContainer)
		if err = decodePayload(env, container); err != nil {
			return err
		}
		r.BodyOrError = container
	default:
		r.BodyOrError = &UnknownBodyOrError{Case: env.Case, Payload: env.Payload}
	}

	return nil
}

// MarshalCBOR implements cbor.Marshaler.
func (r *LoadNodesConfigurationResponse) MarshalCBOR() ([]byte, error) {
	return marshalEnvelope(r.BodyOrError)
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (r *LoadNodesConfigurationResponse) UnmarshalCBOR(data []byte) error {
	env, err := unmarshalEnvelope(data)
	if err != nil {
		return err
	}

	switch env.Case {
	case BodyOrErrorNotSet:
		r.BodyOrError = nil
	case BodyOrErrorBody:
		body := new(LoadNodesConfigurationResponseBody)
		if err = decodePayload(env, body); err != nil {
			return err
		}
		r.BodyOrError = body
	case BodyOrErrorErrorContainer:
		container := new(ErrorContainer)
		if err = decodePayload(env, container); err != nil {
			return err
		}
		r.BodyOrError = container
	default:
		r.BodyOrError = &UnknownBodyOrError{Case: env.Case, Payload: env.Payload}
	}

	return nil
}

func marshalEnvelope(variant bodyOrError) ([]byte, error) {
	if variant == nil {
		return encMode.Marshal(envelope{Case: BodyOrErrorNotSet})
	}

	env := envelope{Case: variant.bodyOrErrorCase()}

	if unknown, ok := variant.(*UnknownBodyOrError); ok {
		env.Payload = unknown.Payload
		return encMode.Marshal(env)
	}

	payload, err := encMode.Marshal(variant)
	if err != nil {
		return nil, fmt.Errorf("error encoding oneof payload %T: %w", variant, err)
	}
	env.Payload = payload

	return encMode.Marshal(env)
}

func unmarshalEnvelope(data []byte) (envelope, error) {
	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return envelope{}, fmt.Errorf("error decoding oneof envelope: %w", err)
	}
	return env, nil
}

func decodePayload(env envelope, v any) error {
	if len(env.Payload) == 0 {
		return nil
	}
	if err := decMode.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("error decoding oneof payload %T: %w", v, err)
	}
	return nil
}
