package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		want        string
		expectError bool
	}{
		{
			name:  "Valid Email",
			email: "user@example.com",
			want:  "user@example.com",
		},
		{
			name:  "Normalizes Case And Whitespace",
			email: "  User@Example.COM  ",
			want:  "user@example.com",
		},
		{
			name:        "Empty Email",
			email:       "",
			expectError: true,
		},
		{
			name:        "Missing At Sign",
			email:       "user.example.com",
			expectError: true,
		},
		{
			name:        "Missing Domain Dot",
			email:       "user@example",
			expectError: true,
		},
		{
			name:        "Contains Whitespace",
			email:       "us er@example.com",
			expectError: true,
		},
		{
			name:        "Single Letter TLD",
			email:       "user@example.c",
			expectError: true,
		},
		{
			name:        "Mistyped TLD con",
			email:       "user@example.con",
			expectError: true,
		},
		{
			name:        "Mistyped TLD cmo",
			email:       "user@example.cmo",
			expectError: true,
		},
		{
			name:        "Mistyped TLD xom",
			email:       "user@example.xom",
			expectError: true,
		},
		{
			name:        "Mistyped TLD co",
			email:       "user@example.co",
			expectError: true,
		},
		{
			name:        "Mistyped TLD cm",
			email:       "user@example.cm",
			expectError: true,
		},
		{
			name:  "Valid TLD Containing co",
			email: "user@example.com",
			want:  "user@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Email(tt.email)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDateOfBirth(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dob         string
		expectError bool
	}{
		{
			name: "Adult",
			dob:  "1990-04-02",
		},
		{
			name: "Exactly 18 Today",
			dob:  "2007-06-15",
		},
		{
			name:        "18th Birthday Tomorrow",
			dob:         "2007-06-16",
			expectError: true,
		},
		{
			name: "Exactly 120",
			dob:  "1905-06-15",
		},
		{
			name:        "Older Than 120",
			dob:         "1904-06-14",
			expectError: true,
		},
		{
			name:        "Future Date",
			dob:         "2030-01-01",
			expectError: true,
		},
		{
			name:        "Wrong Format",
			dob:         "02/04/1990",
			expectError: true,
		},
		{
			name:        "Not A Date",
			dob:         "yesterday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob, err := DateOfBirth(tt.dob, now)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, dob.IsZero())
			}
		})
	}
}

func TestAge(t *testing.T) {
	dob := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "Day Before Birthday",
			now:  time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC),
			want: 24,
		},
		{
			name: "On Birthday",
			now:  time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
			want: 25,
		},
		{
			name: "Day After Birthday",
			now:  time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC),
			want: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(dob, tt.now))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		want        string
		expectError bool
	}{
		{
			name:  "Plain Digits",
			phone: "5551234567",
			want:  "5551234567",
		},
		{
			name:  "Formatted",
			phone: "(555) 123-4567",
			want:  "5551234567",
		},
		{
			name:        "Too Short",
			phone:       "555123456",
			expectError: true,
		},
		{
			name:        "Too Long",
			phone:       "55512345678",
			expectError: true,
		},
		{
			name:        "Contains Letters",
			phone:       "555123456a",
			expectError: true,
		},
		{
			name:        "All Zeros",
			phone:       "000-000-0000",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Phone(tt.phone)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestState(t *testing.T) {
	tests := []struct {
		name        string
		state       string
		want        string
		expectError bool
	}{
		{
			name:  "Uppercase State",
			state: "CA",
			want:  "CA",
		},
		{
			name:  "Lowercase State",
			state: "ny",
			want:  "NY",
		},
		{
			name:  "District Of Columbia",
			state: "DC",
			want:  "DC",
		},
		{
			name:  "Territory",
			state: "PR",
			want:  "PR",
		},
		{
			name:        "Unknown Code",
			state:       "XX",
			expectError: true,
		},
		{
			name:        "Full Name",
			state:       "California",
			expectError: true,
		},
		{
			name:        "Empty",
			state:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := State(tt.state)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		want        string
		expectError bool
	}{
		{
			name:   "Integer",
			amount: "100",
			want:   "100",
		},
		{
			name:   "Two Decimal Places",
			amount: "10.50",
			want:   "10.5",
		},
		{
			name:   "One Decimal Place",
			amount: "10.5",
			want:   "10.5",
		},
		{
			name:   "Trailing Dot",
			amount: "10.",
			want:   "10",
		},
		{
			name:   "Zero",
			amount: "0",
			want:   "0",
		},
		{
			name:        "Leading Zero",
			amount:      "010.50",
			expectError: true,
		},
		{
			name:        "Three Decimal Places",
			amount:      "10.999",
			expectError: true,
		},
		{
			name:        "Negative",
			amount:      "-5",
			expectError: true,
		},
		{
			name:        "Not A Number",
			amount:      "ten",
			expectError: true,
		},
		{
			name:        "Empty",
			amount:      "",
			expectError: true,
		},
		{
			name:        "Bare Dot",
			amount:      ".50",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(tt.amount)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestFundingAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expectError bool
	}{
		{
			name:   "Positive",
			amount: "100.50",
		},
		{
			name:        "Zero",
			amount:      "0",
			expectError: true,
		},
		{
			name:        "Zero With Decimals",
			amount:      "0.00",
			expectError: true,
		},
		{
			name:        "Invalid Format",
			amount:      "01.00",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FundingAmount(tt.amount)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:     "Strong Password",
			password: "Str0ng!Pass",
		},
		{
			name:        "Too Short",
			password:    "Ab1!xyz",
			expectError: true,
		},
		{
			name:        "No Uppercase",
			password:    "weak1pass!",
			expectError: true,
		},
		{
			name:        "No Lowercase",
			password:    "WEAK1PASS!",
			expectError: true,
		},
		{
			name:        "No Digit",
			password:    "WeakPass!",
			expectError: true,
		},
		{
			name:        "No Special Character",
			password:    "WeakPass1",
			expectError: true,
		},
		{
			name:        "Common Password",
			password:    "Password123",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordCommonListCaseInsensitive(t *testing.T) {
	_, ok := commonPasswords["password123"]
	require.True(t, ok)

	err := Password("PASSWORD123")
	require.Error(t, err)
	assert.Equal(t, "password is too common", err.Error())
}

func TestSSN(t *testing.T) {
	tests := []struct {
		name        string
		ssn         string
		want        string
		expectError bool
	}{
		{
			name: "Plain Digits",
			ssn:  "123456789",
			want: "123456789",
		},
		{
			name: "Formatted",
			ssn:  "123-45-6789",
			want: "123456789",
		},
		{
			name:        "Too Short",
			ssn:         "12345678",
			expectError: true,
		},
		{
			name:        "All Zeros",
			ssn:         "000-00-0000",
			expectError: true,
		},
		{
			name:        "Contains Letters",
			ssn:         "12345678a",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SSN(tt.ssn)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRoutingNumber(t *testing.T) {
	tests := []struct {
		name        string
		routing     string
		want        string
		expectError bool
	}{
		{
			name:    "Valid",
			routing: "021000021",
			want:    "021000021",
		},
		{
			name:    "Formatted",
			routing: "021-000-021",
			want:    "021000021",
		},
		{
			name:        "Too Short",
			routing:     "12345678",
			expectError: true,
		},
		{
			name:        "Too Long",
			routing:     "1234567890",
			expectError: true,
		},
		{
			name:        "All Zeros",
			routing:     "000000000",
			expectError: true,
		},
		{
			name:        "Contains Letters",
			routing:     "02100002a",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoutingNumber(tt.routing)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
