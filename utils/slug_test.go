package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"General Medicine!!", "general-medicine"},
		{"___", ""},
		{"Lab Tests", "lab-tests"},
		{"  X-Ray & MRI  ", "x-ray-mri"},
		{"Pediatrics", "pediatrics"},
		{"A!!B", "a-b"},
		{"", ""},
		{"--already-slugged--", "already-slugged"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, GenerateSlug(tc.in), "input %q", tc.in)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{
		"General Medicine!!",
		"Lab Tests",
		"___",
		"Crème Brûlée Clinic",
		"a  b   c",
		"",
	}

	for _, in := range inputs {
		once := GenerateSlug(in)
		require.Equal(t, once, GenerateSlug(once), "input %q", in)
	}
}
