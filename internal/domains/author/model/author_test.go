package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		firstName string
		lastName  string
		wantErr   bool
		failField string
	}{
		{
			name:      "valid name",
			firstName: "Sofija",
			lastName:  "Dokmanovic",
		},
		{
			name:      "first name at max length",
			firstName: strings.Repeat("a", MaxNameLength),
			lastName:  "Ivanovic",
		},
		{
			name:      "last name at max length",
			firstName: "Ana",
			lastName:  strings.Repeat("b", MaxNameLength),
		},
		{
			name:      "empty first name",
			firstName: "",
			lastName:  "Ivanovic",
			wantErr:   true,
			failField: "firstName",
		},
		{
			name:      "empty last name",
			firstName: "Ana",
			lastName:  "",
			wantErr:   true,
			failField: "lastName",
		},
		{
			name:      "first name over max length",
			firstName: strings.Repeat("a", MaxNameLength+1),
			lastName:  "Ivanovic",
			wantErr:   true,
			failField: "firstName",
		},
		{
			name:      "last name over max length",
			firstName: "Ana",
			lastName:  strings.Repeat("b", MaxNameLength+1),
			wantErr:   true,
			failField: "lastName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.firstName, tt.lastName)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			require.Contains(t, verrs, tt.failField)
		})
	}
}

func TestAuthorFullName(t *testing.T) {
	t.Parallel()

	a := Author{ID: 1, FirstName: "Sofija", LastName: "Dokmanovic"}
	require.Equal(t, "Sofija Dokmanovic", a.FullName())
}
