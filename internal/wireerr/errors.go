// Package wireerr defines the error taxonomy shared by the label, record,
// and packet codecs.
package wireerr

import "fmt"

// Mandate describes how a record's stated length is constrained.
type Mandate struct {
	// Exactly, when true, means the length must equal N precisely.
	// Otherwise the length must be at least N (AtLeast).
	Exactly bool
	N       int
}

func ExactlyN(n int) Mandate { return Mandate{Exactly: true, N: n} }
func AtLeastN(n int) Mandate { return Mandate{Exactly: false, N: n} }

func (m Mandate) String() string {
	if m.Exactly {
		return fmt.Sprintf("exactly %d", m.N)
	}
	return fmt.Sprintf("at least %d", m.N)
}

func (m Mandate) Satisfies(length int) bool {
	if m.Exactly {
		return length == m.N
	}
	return length >= m.N
}

// WireError is the error type returned by the label, record, and packet
// codecs. Only one of the typed fields is meaningful for a given Kind; the
// zero value of the others is ignored.
type WireError struct {
	Kind Kind

	// WrongRecordLength
	Stated   int
	Mandated Mandate

	// WrongLabelLength
	AfterLabels int

	// TooMuchRecursion
	Path []int

	// OutOfBounds
	Offset int

	// WrongVersion
	MaxSupported int
}

type Kind int

const (
	IO Kind = iota
	WrongRecordLength
	WrongLabelLength
	TooMuchRecursion
	OutOfBounds
	WrongVersion
	BadName
	BadSVCB
)

func (e *WireError) Error() string {
	switch e.Kind {
	case IO:
		return "wire: buffer too short"
	case WrongRecordLength:
		return fmt.Sprintf("wire: record length %d does not satisfy mandate %s", e.Stated, e.Mandated)
	case WrongLabelLength:
		return fmt.Sprintf("wire: stated length %d does not match %d bytes consumed by labels", e.Stated, e.AfterLabels)
	case TooMuchRecursion:
		return fmt.Sprintf("wire: label compression chain exceeded recursion limit at offsets %v", e.Path)
	case OutOfBounds:
		return fmt.Sprintf("wire: pointer targeted out-of-bounds offset %d", e.Offset)
	case WrongVersion:
		return fmt.Sprintf("wire: unsupported version (max supported %d)", e.MaxSupported)
	case BadName:
		return "wire: malformed domain name"
	case BadSVCB:
		return "wire: malformed SVCB/HTTPS service parameters"
	default:
		return "wire: unknown error"
	}
}

func ErrIO() error { return &WireError{Kind: IO} }

func ErrWrongRecordLength(stated int, mandated Mandate) error {
	return &WireError{Kind: WrongRecordLength, Stated: stated, Mandated: mandated}
}

func ErrWrongLabelLength(stated, afterLabels int) error {
	return &WireError{Kind: WrongLabelLength, Stated: stated, AfterLabels: afterLabels}
}

func ErrTooMuchRecursion(path []int) error {
	return &WireError{Kind: TooMuchRecursion, Path: path}
}

func ErrOutOfBounds(offset int) error {
	return &WireError{Kind: OutOfBounds, Offset: offset}
}

func ErrWrongVersion(maxSupported int) error {
	return &WireError{Kind: WrongVersion, MaxSupported: maxSupported}
}

func ErrBadName() error { return &WireError{Kind: BadName} }
func ErrBadSVCB() error { return &WireError{Kind: BadSVCB} }

// Phase classifies a TransportError for user-facing diagnostics.
type Phase string

const (
	PhaseNetwork  Phase = "network"
	PhaseProtocol Phase = "protocol"
	PhaseTLS      Phase = "tls"
	PhaseHTTP     Phase = "http"
	PhaseSystem   Phase = "system"
)

// TransportErrorKind enumerates the transport-level failure modes.
type TransportErrorKind int

const (
	NoNameservers TransportErrorKind = iota
	NetworkError
	TruncatedResponse
	TlsError
	TlsHandshakeError
	HttpError
	WrongHttpStatus
	ProxyError
	MismatchedResponse
)

// TransportError is the error type returned by the transport dispatch layer.
type TransportError struct {
	Kind  TransportErrorKind
	Phase Phase

	// WrongHttpStatus
	StatusCode int
	Reason     string

	// ProxyError
	ProxyReason string

	Err error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case NoNameservers:
		return "transport: no nameservers available"
	case NetworkError:
		if e.Err != nil {
			return fmt.Sprintf("transport: network error: %v", e.Err)
		}
		return "transport: network error"
	case TruncatedResponse:
		return "transport: peer closed connection mid-message"
	case TlsError:
		return fmt.Sprintf("transport: tls error: %v", e.Err)
	case TlsHandshakeError:
		return fmt.Sprintf("transport: tls handshake failed: %v", e.Err)
	case HttpError:
		return fmt.Sprintf("transport: http error: %v", e.Err)
	case WrongHttpStatus:
		if e.Reason != "" {
			return fmt.Sprintf("transport: unexpected HTTP status %d %s", e.StatusCode, e.Reason)
		}
		return fmt.Sprintf("transport: unexpected HTTP status %d", e.StatusCode)
	case ProxyError:
		return fmt.Sprintf("transport: proxy tunnel failed: %s", e.ProxyReason)
	case MismatchedResponse:
		return "transport: response does not match the query sent (wrong transaction ID or question)"
	default:
		return "transport: unknown error"
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

func newTE(kind TransportErrorKind, phase Phase, err error) *TransportError {
	return &TransportError{Kind: kind, Phase: phase, Err: err}
}

func ErrNoNameservers() error { return newTE(NoNameservers, PhaseSystem, nil) }
func ErrNetworkError(err error) error {
	return newTE(NetworkError, PhaseNetwork, err)
}
func ErrTruncatedResponse() error { return newTE(TruncatedResponse, PhaseNetwork, nil) }
func ErrTlsError(err error) error { return newTE(TlsError, PhaseTLS, err) }
func ErrTlsHandshakeError(err error) error {
	return newTE(TlsHandshakeError, PhaseTLS, err)
}
func ErrHttpError(err error) error { return newTE(HttpError, PhaseHTTP, err) }
func ErrWrongHttpStatus(code int, reason string) error {
	return &TransportError{Kind: WrongHttpStatus, Phase: PhaseHTTP, StatusCode: code, Reason: reason}
}
func ErrProxyError(reason string) error {
	return &TransportError{Kind: ProxyError, Phase: PhaseNetwork, ProxyReason: reason}
}
func ErrMismatchedResponse() error {
	return newTE(MismatchedResponse, PhaseProtocol, nil)
}
