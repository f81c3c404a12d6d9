package services_test

import (
	"testing"

	"inspection-backend/devices/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func shiftJISBytes(t *testing.T, s string) []byte {
	t.Helper()
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return encoded
}

func TestDecodeShiftJIS_ASCIIPassesThrough(t *testing.T) {
	text, err := services.DecodeShiftJIS([]byte("device_name,customer_name\nweb01,Acme\n"))
	require.NoError(t, err)
	assert.Equal(t, "device_name,customer_name\nweb01,Acme\n", text)
}

func TestDecodeShiftJIS_JapaneseHeaders(t *testing.T) {
	raw := shiftJISBytes(t, "機器名,顧客名\nサーバ01,株式会社アクメ\n")

	text, err := services.DecodeShiftJIS(raw)
	require.NoError(t, err)
	assert.Equal(t, "機器名,顧客名\nサーバ01,株式会社アクメ\n", text)
}

func TestDecodeShiftJIS_InvalidBytesFailTheBatch(t *testing.T) {
	// 0xFF is not a valid Shift_JIS lead byte
	_, err := services.DecodeShiftJIS([]byte{0xFF, 0xFF, 0x41})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid Shift_JIS")
}

func TestDecodeShiftJIS_TruncatedMultibyteSequence(t *testing.T) {
	raw := shiftJISBytes(t, "機器名")
	_, err := services.DecodeShiftJIS(raw[:len(raw)-1])
	require.Error(t, err)
}
