package session

import (
	"github.com/AINative-Studio/ai-kit-a2ui/errors"
	"github.com/AINative-Studio/ai-kit-a2ui/protocol"
)

// DecodeEventFrame turns one raw inbound frame into a transport event. Both
// shipped transports route their frames through this, so envelope parsing
// and schema validation behave identically regardless of the wire.
//
// Unknown message types return ErrUnknownMessage; transports log and drop
// those. Any other failure should be surfaced as an ErrorEvent so the
// controller can enter the error state instead of crashing the render path.
func DecodeEventFrame(data []byte) (Event, error) {
	envelope, err := protocol.ParseEnvelope(data)
	if err != nil {
		return nil, err
	}

	switch envelope.Type {
	case protocol.TypeCreateSurface:
		msg, err := protocol.DecodeCreateSurface(envelope.Payload)
		if err != nil {
			return nil, err
		}
		return CreateSurfaceEvent{Message: msg}, nil

	case protocol.TypeUpdateComponents:
		msg, err := protocol.DecodeUpdateComponents(envelope.Payload)
		if err != nil {
			return nil, err
		}
		return UpdateComponentsEvent{Message: msg}, nil

	case protocol.TypeError:
		msg := protocol.DecodeErrorMessage(envelope.Payload)
		return ErrorEvent{
			Err: errors.Wrap(errors.New(msg.Message), "session", "DecodeEventFrame", "agent reported error"),
		}, nil

	default:
		return nil, errors.WrapInvalid(errors.ErrUnknownMessage, "session", "DecodeEventFrame", "decode "+envelope.Type)
	}
}
