package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid http",
			config: Config{APIBase: "http://localhost:8080/api"},
		},
		{
			name:   "valid https",
			config: Config{APIBase: "https://api.example.com"},
		},
		{
			name:    "empty api base",
			config:  Config{},
			wantErr: ErrAPIBaseEmpty,
		},
		{
			name:    "unsupported scheme",
			config:  Config{APIBase: "ftp://example.com"},
			wantErr: ErrAPIBaseInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCriteriaEmpty(t *testing.T) {
	assert.True(t, Criteria{}.Empty())
	assert.False(t, Criteria{Text: "curry"}.Empty())
	assert.False(t, Criteria{Ingredients: []string{"chili"}}.Empty())
	assert.False(t, Criteria{Categories: []string{"spicy"}}.Empty())
}
