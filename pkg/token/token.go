package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the action a control token triggers. The set is closed:
// decoding rejects anything outside it.
type Kind string

const (
	KindOpenCategory     Kind = "category"
	KindChangePage       Kind = "page"
	KindOpenProduct      Kind = "product"
	KindChangeQuantity   Kind = "cartqty"
	KindAddToCart        Kind = "cartadd"
	KindRemoveFromCart   Kind = "cartdel"
	KindClearCart        Kind = "cartclear"
	KindAckNoop          Kind = "noop"
	KindOpenConsultation Kind = "consult"
)

// MaxPayload is the transport ceiling for an encoded token. Encoding fails
// rather than truncates when a token would exceed it.
const MaxPayload = 64

const delimiter = ":"

// paramArity maps each kind to the exact number of extra int params it
// carries after the subject id.
var paramArity = map[Kind]int{
	KindOpenCategory:     0,
	KindChangePage:       1, // listing offset
	KindOpenProduct:      0,
	KindChangeQuantity:   1, // target quantity rendered on the control
	KindAddToCart:        0,
	KindRemoveFromCart:   0,
	KindClearCart:        0,
	KindAckNoop:          0,
	KindOpenConsultation: 0,
}

// Action is the typed result of decoding a control token.
type Action struct {
	Kind      Kind
	SubjectID int64
	Params    []int64
}

// Param returns the i-th extra parameter, or 0 when absent.
func (a Action) Param(i int) int64 {
	if i < 0 || i >= len(a.Params) {
		return 0
	}
	return a.Params[i]
}

// DecodeError reports a token that could not be turned into an Action.
// Decoding is total: every input yields either an Action or a DecodeError,
// never a partial result.
type DecodeError struct {
	Raw    string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed token %q: %s", e.Raw, e.Reason)
}

// IsDecodeError reports whether err is a token DecodeError.
func IsDecodeError(err error) bool {
	_, ok := err.(*DecodeError)
	return ok
}

// Encode builds the wire form `kind:subject(:param)*`. It validates the kind,
// arity and value ranges, and rejects payloads over MaxPayload.
func Encode(kind Kind, subjectID int64, params ...int64) (string, error) {
	arity, ok := paramArity[kind]
	if !ok {
		return "", fmt.Errorf("token: unknown action kind %q", kind)
	}
	if len(params) != arity {
		return "", fmt.Errorf("token: kind %q expects %d params, got %d", kind, arity, len(params))
	}
	if subjectID < 0 {
		return "", fmt.Errorf("token: negative subject id %d", subjectID)
	}

	parts := make([]string, 0, 2+len(params))
	parts = append(parts, string(kind), strconv.FormatInt(subjectID, 10))
	for _, p := range params {
		if p < 0 {
			return "", fmt.Errorf("token: negative param %d for kind %q", p, kind)
		}
		parts = append(parts, strconv.FormatInt(p, 10))
	}

	encoded := strings.Join(parts, delimiter)
	if len(encoded) > MaxPayload {
		return "", fmt.Errorf("token: encoded payload %d bytes exceeds limit %d", len(encoded), MaxPayload)
	}
	return encoded, nil
}

// Decode parses a wire token back into an Action. It performs no lookups:
// whether the subject still exists is the caller's concern.
func Decode(raw string) (Action, error) {
	if raw == "" {
		return Action{}, &DecodeError{Raw: raw, Reason: "empty payload"}
	}
	if len(raw) > MaxPayload {
		return Action{}, &DecodeError{Raw: raw, Reason: "payload over transport limit"}
	}

	parts := strings.Split(raw, delimiter)
	if len(parts) < 2 {
		return Action{}, &DecodeError{Raw: raw, Reason: "missing subject id"}
	}

	kind := Kind(parts[0])
	arity, ok := paramArity[kind]
	if !ok {
		return Action{}, &DecodeError{Raw: raw, Reason: "unknown action kind"}
	}
	if len(parts) != 2+arity {
		return Action{}, &DecodeError{Raw: raw, Reason: "wrong parameter count"}
	}

	subject, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || subject < 0 {
		return Action{}, &DecodeError{Raw: raw, Reason: "subject id is not a valid id"}
	}

	action := Action{Kind: kind, SubjectID: subject}
	for _, part := range parts[2:] {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v < 0 {
			return Action{}, &DecodeError{Raw: raw, Reason: "parameter is not a valid number"}
		}
		action.Params = append(action.Params, v)
	}
	return action, nil
}
