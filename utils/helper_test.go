package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hero Shot.PNG", "hero-shot.png"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\résumé.pdf`, "r-sum-.pdf"},
		{"intro_video.final.mp4", "intro_video.final.mp4"},
		{"!!!", "file"},
		{"", "file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFileName(tt.in), tt.in)
	}
}

func TestSanitizeFileName_KeepsExtensionWhenTruncating(t *testing.T) {
	out := SanitizeFileName(strings.Repeat("a", 100) + ".png")
	assert.Len(t, out, maxFileNameLen)
	assert.True(t, strings.HasSuffix(out, ".png"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("sam@example.com"))
	assert.True(t, IsValidEmail("  sam@example.com "))
	assert.False(t, IsValidEmail("Sam <sam@example.com>"))
	assert.False(t, IsValidEmail("sam@localhost"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("https://cdn.example.com/a.png"))
	assert.True(t, IsAbsoluteURL("HTTP://cdn.example.com/a.png"))
	assert.False(t, IsAbsoluteURL("/images/a.png"))
	assert.False(t, IsAbsoluteURL("ftp://files.example.com/a.png"))
	assert.False(t, IsAbsoluteURL(""))
}
