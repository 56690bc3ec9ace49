package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLovelaceToADA(t *testing.T) {
	cases := map[uint64]string{
		0:              "0.000000",
		1:              "0.000001",
		999999:         "0.999999",
		1000000:        "1.000000",
		1500000:        "1.500000",
		45000000000000: "45000000.000000",
	}
	for lovelace, ada := range cases {
		assert.Equal(t, ada, LovelaceToADA(lovelace))
	}
}

func TestADAToLovelace(t *testing.T) {
	cases := map[string]uint64{
		"1":         1000000,
		"1.5":       1500000,
		" 0.000001": 1,
		".25":       250000,
		"2.1234567": 2123456, // truncated to 6 decimals
	}
	for ada, lovelace := range cases {
		got, err := ADAToLovelace(ada)
		require.NoError(t, err, ada)
		assert.Equal(t, lovelace, got, ada)
	}

	for _, bad := range []string{"", "abc", "1.2.3", "1.", "-1"} {
		_, err := ADAToLovelace(bad)
		assert.Error(t, err, bad)
	}
}

func TestCompareADAAmounts(t *testing.T) {
	cmp, err := CompareADAAmounts("1.5", "1.500000")
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	cmp, err = CompareADAAmounts("0.1", "0.2")
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = CompareADAAmounts("10", "9.999999")
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	_, err = CompareADAAmounts("x", "1")
	assert.ErrorContains(t, err, "failed to parse amount 'x'")
}

func TestAddressQR(t *testing.T) {
	png, err := AddressQR("addr1qx2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3n0d3vllmyqwsx5wktcd8cc3sq835lu7drv2xwl2wywfgse35a3x", 256)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	text, err := AddressQRTerminal("addr_test1vz")
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}
