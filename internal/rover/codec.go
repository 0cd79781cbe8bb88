package rover

import (
	"strconv"
	"strings"

	"github.com/fieldbotics/robowire/internal/wire"
)

const (
	cmdMarker      = "Cmd = nav"
	responseMarker = "responses = "
)

// DecodeNav extracts the response payload from a raw CGI reply body. The
// body must contain the command marker followed by the responses marker;
// a missing or malformed marker is a *wire.FormatError (firmware
// mismatch). A nonzero leading code is a *wire.DeviceError named from the
// navigation response table. On code zero the payload is the text after
// the first '|', or the whole remainder when there is none.
func DecodeNav(body string) (string, error) {
	i := strings.Index(body, cmdMarker)
	if i < 0 {
		return "", wire.Formatf("reply is missing %q marker", cmdMarker)
	}
	rest := body[i+len(cmdMarker):]

	j := strings.Index(rest, responseMarker)
	if j < 0 {
		return "", wire.Formatf("reply is missing %q marker", responseMarker)
	}
	rest = strings.TrimLeft(rest[j+len(responseMarker):], " \t")

	// leading integer response code
	n := 0
	for n < len(rest) && ((n == 0 && rest[n] == '-') || (rest[n] >= '0' && rest[n] <= '9')) {
		n++
	}
	code, err := strconv.Atoi(rest[:n])
	if err != nil {
		return "", wire.Formatf("response code missing after %q marker", responseMarker)
	}
	if code != 0 {
		return "", &wire.DeviceError{Code: code, Name: ResponseName(code)}
	}

	remainder := rest[n:]
	if k := strings.IndexByte(remainder, '|'); k >= 0 {
		return strings.TrimRight(remainder[k+1:], "\r\n"), nil
	}
	return strings.TrimSpace(remainder), nil
}

// ExtractField locates "<key>=" in a response payload and returns the
// characters from just after '=' up to the next '|' or end of string. A
// missing key is a *wire.FormatError: field names are fixed per firmware
// version, so absence means a mismatch, not an empty value.
func ExtractField(payload, key string) (string, error) {
	marker := key + "="
	for search := payload; ; {
		i := strings.Index(search, marker)
		if i < 0 {
			return "", wire.Formatf("field %q not found in response payload", key)
		}
		// match only at a field boundary: start of payload or after '|'
		if i == 0 || search[i-1] == '|' {
			value := search[i+len(marker):]
			if k := strings.IndexByte(value, '|'); k >= 0 {
				value = value[:k]
			}
			return value, nil
		}
		search = search[i+len(marker):]
	}
}

// FloatField extracts a field and parses it as a float.
func FloatField(payload, key string) (float64, error) {
	text, err := ExtractField(payload, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, wire.Formatf("field %q value %q is not numeric", key, text)
	}
	return v, nil
}

// IntField extracts a field and parses it as an integer.
func IntField(payload, key string) (int, error) {
	text, err := ExtractField(payload, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, wire.Formatf("field %q value %q is not an integer", key, text)
	}
	return v, nil
}
