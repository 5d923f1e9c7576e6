package encoding_test

import (
	"bytes"
	"io"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/MrJamesThe3rd/daftar/internal/encoding"
)

const chartCSV = "کد,عنوان,نوع\n1101,صندوق,asset\n1102,بانک‌ها,asset\n"

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	assert.Equal(t, chartCSV, readAll(t, []byte(chartCSV)))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, chartCSV...)
	assert.Equal(t, chartCSV, readAll(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()

	input, err := enc.Bytes([]byte("code,title,type\n1101,Cash,asset\n"))
	require.NoError(t, err)

	assert.Equal(t, "code,title,type\n1101,Cash,asset\n", readAll(t, input))
}

func TestNewUTF8Reader_Windows1256(t *testing.T) {
	line := "کد,عنوان,نوع\n"

	legacy, err := charmap.Windows1256.NewEncoder().Bytes([]byte(line))
	require.NoError(t, err)
	require.False(t, utf8.Valid(legacy))

	got := readAll(t, legacy)
	assert.True(t, utf8.ValidString(got))
	assert.NotEmpty(t, got)
}
