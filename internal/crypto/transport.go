package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/mrz1836/textsign/internal/constants"
	"github.com/mrz1836/textsign/internal/errors"
)

// Encoding is a text form for carrying binary signatures through the CLI.
// Both encodings are URL-safe and padding-free.
type Encoding int

const (
	// EncodingBase64URL is unpadded URL-safe base64 (RFC 4648 §5). Default.
	EncodingBase64URL Encoding = iota + 1

	// EncodingBase58 is base58 with the Bitcoin alphabet.
	EncodingBase58
)

// ParseEncoding converts an encoding name into an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case constants.EncodingNameBase64URL:
		return EncodingBase64URL, nil
	case constants.EncodingNameBase58:
		return EncodingBase58, nil
	default:
		return 0, errors.Wrapf(errors.ErrUnknownEncoding, "%q", name)
	}
}

// String returns the encoding's command-line name.
func (e Encoding) String() string {
	switch e {
	case EncodingBase64URL:
		return constants.EncodingNameBase64URL
	case EncodingBase58:
		return constants.EncodingNameBase58
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}

// Encode renders a signature as unpadded URL-safe base64.
func Encode(signature []byte) string {
	return base64.RawURLEncoding.EncodeToString(signature)
}

// Decode parses unpadded URL-safe base64 text back into signature bytes.
func Decode(text string) ([]byte, error) {
	return DecodeWith(EncodingBase64URL, text)
}

// EncodeWith renders a signature in the given encoding.
func EncodeWith(enc Encoding, signature []byte) (string, error) {
	switch enc {
	case EncodingBase64URL:
		return Encode(signature), nil
	case EncodingBase58:
		return base58.Encode(signature), nil
	default:
		return "", errors.Wrapf(errors.ErrUnknownEncoding, "%s", enc)
	}
}

// DecodeWith parses text in the given encoding. Surrounding whitespace is
// ignored; line breaks inside the text and non-zero trailing bits are
// rejected so each signature has exactly one textual form. On failure no
// bytes are returned.
func DecodeWith(enc Encoding, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if strings.ContainsAny(text, "\r\n") {
		return nil, errors.Wrap(errors.ErrTransportDecode, "line break inside signature text")
	}

	var (
		out []byte
		err error
	)
	switch enc {
	case EncodingBase64URL:
		out, err = base64.RawURLEncoding.Strict().DecodeString(text)
	case EncodingBase58:
		out, err = base58.Decode(text)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownEncoding, "%s", enc)
	}
	if err != nil {
		return nil, errors.Mark(errors.ErrTransportDecode, err)
	}
	return out, nil
}

// EncodingNames returns the command-line names of every encoding.
func EncodingNames() []string {
	return []string{constants.EncodingNameBase64URL, constants.EncodingNameBase58}
}
