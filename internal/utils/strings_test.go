package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		// Valid emails
		{"Simple valid email", "test@example.com", true},
		{"Email with subdomain", "user@mail.example.com", true},
		{"Email with numbers", "user123@example123.com", true},
		{"Email with dots in local part", "user.name@example.com", true},
		{"Email with plus", "user+tag@example.com", true},
		{"Email with dash in local part", "user-name@example.com", true},
		{"Email with underscore", "user_name@example.com", true},
		{"Email with percentage", "user%test@example.com", true},
		{"Long TLD", "user@example.museum", true},
		{"Two letter TLD", "user@example.co", true},
		{"Three letter TLD", "user@example.com", true},
		{"Email with dash in domain", "user@ex-ample.com", true},
		{"Email with numbers in domain", "user@example123.com", true},

		// Invalid emails
		{"Missing @", "userexample.com", false},
		{"Missing domain", "user@", false},
		{"Missing local part", "@example.com", false},
		{"Missing TLD", "user@example", false},
		{"Double @", "user@@example.com", false},
		{"Space in email", "user @example.com", false},
		{"Space in domain", "user@exam ple.com", false},
		{"Invalid characters", "user@example..com", false},
		{"Starts with dot", ".user@example.com", false},
		{"Ends with dot", "user.@example.com", false},
		{"Empty string", "", false},
		{"Only @", "@", false},
		{"TLD too short", "user@example.c", false},
		{"Domain starts with dash", "user@-example.com", false},
		{"Domain ends with dash", "user@example-.com", false},
		{"Special characters", "user@example!.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidEmail(tt.email)
			assert.Equal(t, tt.expected, result, "Email validation result should match expected")
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"String shorter than max", "hello", 10, "hello"},
		{"String equal to max", "hello", 5, "hello"},
		{"String longer than max", "hello world", 8, "hello..."},
		{"Empty string", "", 5, ""},
		{"Max length 0", "hello", 0, "..."},
		{"Max length 1", "hello", 1, "..."},
		{"Max length 2", "hello", 2, "..."},
		{"Max length 3", "hello", 3, "..."},
		{"Max length 4", "hello", 4, "h..."},
		{"Long string", "This is a very long string that needs to be truncated", 20, "This is a very lo..."},
		{"Unicode characters", "héllo wörld", 8, "héllo..."},
		{"Single character", "a", 5, "a"},
		{"Exactly at ellipsis boundary", "hello", 8, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLength)
			assert.Equal(t, tt.expected, result, "Truncated string should match expected")

			// Verify result length doesn't exceed maxLength
			// For maxLength 0, 1, 2, we return "..." which is 3 characters
			if tt.maxLength > 0 && tt.maxLength > 2 {
				assert.LessOrEqual(t, len([]rune(result)), tt.maxLength, "Result should not exceed max length")
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal string", "hello world", "hello world"},
		{"String with newlines", "hello\nworld", "hello world"},
		{"String with tabs", "hello\tworld", "hello world"},
		{"String with carriage returns", "hello\rworld", "hello world"},
		{"Mixed whitespace", "hello\n\t\rworld", "hello world"},
		{"Multiple spaces", "hello    world", "hello world"},
		{"Leading and trailing spaces", "  hello world  ", "hello world"},
		{"Only whitespace", "   \n\t\r   ", ""},
		{"Empty string", "", ""},
		{"Single word", "hello", "hello"},
		{"Multiple newlines", "hello\n\n\nworld", "hello world"},
		{"Complex mixed", "  hello\n\tworld\r\n  test  ", "hello world test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeString(tt.input)
			assert.Equal(t, tt.expected, result, "Sanitized string should match expected")

			// Verify no control characters remain
			for _, char := range result {
				assert.False(t, char == '\n' || char == '\t' || char == '\r',
					"Result should not contain control characters")
			}

			// Verify no leading/trailing spaces
			if len(result) > 0 {
				assert.NotEqual(t, ' ', result[0], "Result should not start with space")
				assert.NotEqual(t, ' ', result[len(result)-1], "Result should not end with space")
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestSanitizeOptional(t *testing.T) {
	assert.Nil(t, SanitizeOptional(nil))

	blank := " \n\t "
	assert.Nil(t, SanitizeOptional(&blank))

	text := "  Urban\n\nThreads  "
	got := SanitizeOptional(&text)
	if assert.NotNil(t, got) {
		assert.Equal(t, "Urban Threads", *got)
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ja**@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "jo@example.com", MaskEmail("jo@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func BenchmarkIsValidEmail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsValidEmail("customer@urbanthreads.shop")
	}
}
