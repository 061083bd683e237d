package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"user@domain.com",
		"first.last@sub.domain.org",
		"name-part@my-host.net",
	}
	invalid := []string{
		"",
		"plainaddress",
		"@no-user.com",
		"user@",
		"user@domain",
	}

	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), "expected valid: %s", email)
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), "expected invalid: %s", email)
	}
}

func TestPhonePattern(t *testing.T) {
	valid := []string{
		"0812345678",
		"+66812345678",
		"+12345678901234",
	}
	invalid := []string{
		"",
		"12345",
		"+123456789012345",
		"081-234-5678",
		"phone number",
	}

	for _, phone := range valid {
		assert.True(t, phonePattern.MatchString(phone), "expected valid: %s", phone)
	}
	for _, phone := range invalid {
		assert.False(t, phonePattern.MatchString(phone), "expected invalid: %s", phone)
	}
}

func TestValidateStructReportsEveryFailingField(t *testing.T) {
	req := registerRequest{}
	req.Email = "bad"
	req.PhoneNumber = "also bad"

	details := validateStruct(&req)
	assert.NotEmpty(t, details)

	byField := map[string]string{}
	for _, detail := range details {
		byField[detail.Field] = detail.Message
	}

	assert.Equal(t, "name is required", byField["name"])
	assert.Equal(t, "stdID is required", byField["stdID"])
	assert.Equal(t, "invalid email", byField["email"])
	assert.Equal(t, "invalid phone number", byField["phoneNumber"])
	assert.Equal(t, "password is required", byField["password"])
}

func TestValidateStructPassesForValidMember(t *testing.T) {
	req := registerRequest{
		memberFields: memberFields{
			Name:        "Alice Example",
			StdID:       "std-1001",
			Degree:      "Computer Science",
			Country:     "Thailand",
			Email:       "alice@example.com",
			PhoneNumber: "+6612345678901",
			Address:     "42 Campus Road",
		},
		Password: "s3cretpass",
	}
	assert.Nil(t, validateStruct(&req))
}
