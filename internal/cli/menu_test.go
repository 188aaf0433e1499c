package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dkterrors "github.com/mrz1836/docket/internal/errors"
)

func TestRunMenu_NonInteractive(t *testing.T) {
	// go test has no TTY on stdin, so the menu must refuse to start
	// instead of rendering an unusable form.
	setTestHome(t)
	var buf bytes.Buffer

	err := runMenu(context.Background(), testFlags(), &buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, dkterrors.ErrNonInteractiveMode)
}

func TestMenuOptions(t *testing.T) {
	opts := menuOptions()
	require.Len(t, opts, 8)

	values := make([]string, 0, len(opts))
	for _, opt := range opts {
		assert.NotEmpty(t, opt.Label)
		values = append(values, opt.Value)
	}
	assert.Contains(t, values, "list")
	assert.Contains(t, values, "add")
	assert.Contains(t, values, "quit")
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "3", false},
		{"valid with spaces", " 12 ", false},
		{"zero", "0", true},
		{"negative", "-1", true},
		{"non numeric", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, dkterrors.ErrInvalidTaskID)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSplitDescriptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "buy milk", []string{"buy milk"}},
		{"multiple", "buy milk; walk dog ;mow lawn", []string{"buy milk", "walk dog", "mow lawn"}},
		{"empty entries dropped", "buy milk;;  ;walk dog", []string{"buy milk", "walk dog"}},
		{"all empty", " ; ; ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitDescriptions(tt.input))
		})
	}
}
