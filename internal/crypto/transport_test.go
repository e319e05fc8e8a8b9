package crypto

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/textsign/internal/errors"
)

func TestEncode_Base64URLUnpadded(t *testing.T) {
	// 0xfb 0xff encodes to "+/8=" in standard base64.
	got := Encode([]byte{0xfb, 0xff})

	assert.Equal(t, "-_8", got)
	assert.NotContains(t, got, "=")
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, enc := range []Encoding{EncodingBase64URL, EncodingBase58} {
		for _, size := range []int{32, 64} {
			t.Run(enc.String(), func(t *testing.T) {
				sig := bytes.Repeat([]byte{0x5a}, size)
				sig[0] = 0x01

				text, err := EncodeWith(enc, sig)
				require.NoError(t, err)

				got, err := DecodeWith(enc, text)
				require.NoError(t, err)
				assert.Equal(t, sig, got)

				again, err := EncodeWith(enc, got)
				require.NoError(t, err)
				assert.Equal(t, text, again)
			})
		}
	}
}

func TestDecode_Whitespace(t *testing.T) {
	sig := bytes.Repeat([]byte{0x33}, 32)

	got, err := Decode("  " + Encode(sig) + "\n")
	require.NoError(t, err)
	assert.Equal(t, sig, got)
}

// withTrailingBits changes the last character of an unpadded base64url string
// so the unused low bits are no longer zero.
func withTrailingBits(text string) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	i := strings.IndexByte(alphabet, text[len(text)-1])
	return text[:len(text)-1] + string(alphabet[i^1])
}

func TestDecode_Malformed(t *testing.T) {
	mac := Encode(bytes.Repeat([]byte{0x33}, 32))
	sig := Encode(bytes.Repeat([]byte{0x5a}, 64))

	tests := []struct {
		name string
		enc  Encoding
		text string
	}{
		{"base64url standard alphabet", EncodingBase64URL, "ab+/"},
		{"base64url padded", EncodingBase64URL, "YQ=="},
		{"base64url bad length", EncodingBase64URL, "a"},
		{"base64url symbol", EncodingBase64URL, "abc!"},
		{"base64url inner newline", EncodingBase64URL, mac[:10] + "\n" + mac[10:]},
		{"base64url inner carriage return", EncodingBase64URL, sig[:20] + "\r\n" + sig[20:]},
		{"base64url trailing bits 32 bytes", EncodingBase64URL, withTrailingBits(mac)},
		{"base64url trailing bits 64 bytes", EncodingBase64URL, withTrailingBits(sig)},
		{"base58 inner newline", EncodingBase58, "3yQ\n3yQ"},
		{"base58 zero", EncodingBase58, "0OIl"},
		{"base58 empty", EncodingBase58, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeWith(tc.enc, tc.text)
			require.ErrorIs(t, err, errors.ErrTransportDecode)
			assert.Nil(t, got)
		})
	}
}

func TestDecode_EmptyBase64(t *testing.T) {
	got, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseEncoding(t *testing.T) {
	got, err := ParseEncoding("Base58")
	require.NoError(t, err)
	assert.Equal(t, EncodingBase58, got)

	got, err = ParseEncoding("base64url")
	require.NoError(t, err)
	assert.Equal(t, EncodingBase64URL, got)

	_, err = ParseEncoding("hex")
	require.ErrorIs(t, err, errors.ErrUnknownEncoding)
}

func TestEncodeWith_UnknownEncoding(t *testing.T) {
	_, err := EncodeWith(Encoding(0), []byte{1})
	require.ErrorIs(t, err, errors.ErrUnknownEncoding)

	_, err = DecodeWith(Encoding(7), "abc")
	require.ErrorIs(t, err, errors.ErrUnknownEncoding)
}

func TestEncodingNames(t *testing.T) {
	names := EncodingNames()
	assert.Equal(t, []string{"base64url", "base58"}, names)
	assert.True(t, strings.EqualFold(EncodingBase64URL.String(), names[0]))
}
