package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+33 4 94 51 58 02", "04 94 51 58 02"},
		{"+33494515802", "04 94 51 58 02"},
		{"+33 494515802", "04 94 51 58 02"},
		{"0494515802", "04 94 51 58 02"},
		{"04 94 51 58 02", "04 94 51 58 02"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPhone(tt.in), tt.in)
	}
}

func TestFormatPhoneLink(t *testing.T) {
	assert.Equal(t, "+33494515802", FormatPhoneLink("+33 4 94 51 58 02"))
	assert.Equal(t, "0494515802", FormatPhoneLink("04 94 51\t58 02"))
	assert.Equal(t, "", FormatPhoneLink(" "))
}
