package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"justfetch/internal/errors"
)

func TestSubstituteColors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no_markup", "plain [host] text", "plain [host] text"},
		{"black", `rgb["x", 0, 0, 0]`, "<0,0,0>x</>"},
		{"white", `rgb["x", 255, 255, 255]`, "<255,255,255>x</>"},
		{"no_spaces", `rgb["x",1,2,3]`, "<1,2,3>x</>"},
		{"extra_spaces", "rgb[\"x\",  1,\t2,   3]", "<1,2,3>x</>"},
		{"comma_in_text", `rgb["Hello, I'm red!", 255, 0, 0]`, "<255,0,0>Hello, I'm red!</>"},
		{"empty_text", `[rgb["", 1, 2, 3]]`, "[<1,2,3></>]"},
		{"two_spans_one_line", `rgb["a", 1, 1, 1] and rgb["b", 2, 2, 2]`, "<1,1,1>a</> and <2,2,2>b</>"},
		{"surrounding_text", "Distro: rgb[\"Arch\", 23, 147, 209]\nKernel: 6.1\n", "Distro: <23,147,209>Arch</>\nKernel: 6.1\n"},
		{
			"repeated_text_outside_markup_is_untouched",
			`red rgb["red", 1, 2, 3] red`,
			"red <1,2,3>red</> red",
		},
		{
			"identical_spans_both_replaced",
			"rgb[\"ok\", 0, 255, 0]\nrgb[\"ok\", 0, 255, 0]",
			"<0,255,0>ok</>\n<0,255,0>ok</>",
		},
		{
			"opener_inside_text_is_part_of_span",
			`rgb["a rgb["b", 1, 2, 3]`,
			`<1,2,3>a rgb["b</>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(Options{})
			got, err := r.substituteColors(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubstituteColorsErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		code     errors.ErrorCode
		line     int
	}{
		{"channel_256", `rgb["x", 256, 0, 0]`, errors.ErrColorChannel, 1},
		{"channel_999_blue", "ok\nrgb[\"x\", 0, 0, 999]", errors.ErrColorChannel, 2},
		{"four_digits", `rgb["x", 1000, 0, 0]`, errors.ErrMalformedMarkup, 1},
		{"non_numeric", `rgb["x", red, 0, 0]`, errors.ErrMalformedMarkup, 1},
		{"missing_channel", `rgb["x", 1, 2]`, errors.ErrMalformedMarkup, 1},
		{"unterminated", "fine rgb[\"x\", 1, 2, 3]\nrgb[\"y", errors.ErrMalformedMarkup, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(Options{})
			got, err := r.substituteColors(tt.template)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.line, errors.Line(err))
		})
	}
}
