// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configrpc

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"google.golang.org/grpc/encoding"
)

// Name is the gRPC content-subtype of the CBOR codec.
const Name = "cbor"

var (
	// encMode uses Core Deterministic Encoding: the same message always
	// produces the same bytes.
	encMode cbor.EncMode

	// decMode ignores unknown map keys so newer peers can add fields.
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("configrpc: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("configrpc: CBOR decoder initialization failed: " + err.Error())
	}

	encoding.RegisterCodec(codec{})
}

// codec implements encoding.Codec on top of fxamacker/cbor.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cbor marshal %T: %w", v, err)
	}
	return data, nil
}

func (codec) Unmarshal(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cbor unmarshal %T: %w", v, err)
	}
	return nil
}

func (codec) Name() string {
	return Name
}

// Marshal encodes v with the same settings the gRPC codec uses.
func Marshal(v any) ([]byte, error) {
	return codec{}.Marshal(v)
}

// Unmarshal decodes data with the same settings the gRPC codec uses.
func Unmarshal(data []byte, v any) error {
	return codec{}.Unmarshal(data, v)
}
