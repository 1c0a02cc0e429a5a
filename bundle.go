package nls

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat reports a loaded bundle whose shape is neither a
	// message sequence, a keys/messages pair nor a key to message mapping.
	ErrUnsupportedFormat = errors.New("unsupported message bundle format")

	// ErrBrokenLocalizeCall reports a localize call whose key does not fit
	// the bundle it was made against.
	ErrBrokenLocalizeCall = errors.New("broken localize call")

	// ErrKeyNotExternalized reports a lookup key with no translation in the
	// loaded bundle.
	ErrKeyNotExternalized = errors.New("message key not externalized")
)

// bundleFormat pairs a bundle file extension with the function that parses it.
type bundleFormat struct {
	ext       string
	unmarshal UnmarshalFunc
}

type bundleKind int

const (
	bundleIndexed bundleKind = iota
	bundleKeyed
)

// bundle is the shape variant a message file decoded into, fixed once at
// load time.
type bundle struct {
	kind     bundleKind
	messages []string
	byKey    map[string]string
}

// decodeBundle detects which of the supported shapes the payload carries.
// A sequence localizes by index. An object holding parallel "keys" and
// "messages" sequences also localizes by index over messages; the keys are
// carried for extraction tooling and never consulted at lookup time. Any
// other object localizes by key, with every value required to be a string.
func decodeBundle(data []byte, f bundleFormat) (*bundle, error) {
	var raw any
	if err := f.unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s bundle: %w", f.ext, err)
	}

	switch v := raw.(type) {
	case []any:
		messages, err := stringSequence(v)
		if err != nil {
			return nil, err
		}
		return &bundle{kind: bundleIndexed, messages: messages}, nil

	case map[string]any:
		_, hasKeys := v["keys"]
		rawMessages, hasMessages := v["messages"]
		if hasKeys && hasMessages {
			seq, ok := rawMessages.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: messages must be a sequence", ErrUnsupportedFormat)
			}
			messages, err := stringSequence(seq)
			if err != nil {
				return nil, err
			}
			return &bundle{kind: bundleIndexed, messages: messages}, nil
		}

		byKey := make(map[string]string, len(v))
		for key, value := range v {
			message, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: value for key %q is not a string", ErrUnsupportedFormat, key)
			}
			byKey[key] = message
		}
		return &bundle{kind: bundleKeyed, byKey: byKey}, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedFormat, raw)
	}
}

func stringSequence(seq []any) ([]string, error) {
	messages := make([]string, len(seq))
	for i, value := range seq {
		message, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: message %d is not a string", ErrUnsupportedFormat, i)
		}
		messages[i] = message
	}

	return messages, nil
}
