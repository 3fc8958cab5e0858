package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@x.com", true},
		{"alice.smith@example.co.uk", true},
		{"", false},
		{"nodomain@", false},
		{"@nouser.com", false},
		{"spaces in@example.com", false},
		{"noat.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("alice"))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(""))
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "React"}, SplitSkills("Go, SQL ,React"))
	assert.Equal(t, []string{"Go"}, SplitSkills("Go,,  ,"))
	assert.Empty(t, SplitSkills("  "))
}
