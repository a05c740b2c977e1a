// Package types holds the request shapes shared by the handlers and the
// storage layer. Keeping them in one place prevents import cycles.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Text is a request field that decodes any JSON scalar into a string and
// treats JSON's "falsy" values (null, false, 0, "") as empty.
//
// Onboarding clients send identifiers such as service numbers either as
// strings or as bare numbers, so a plain string field would reject half of
// them at decode time.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n': // null
		*t = ""
	case 't': // true
		*t = "true"
	case 'f': // false
		*t = ""
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = Text(buf.String())
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		if f == 0 {
			*t = ""
			return nil
		}
		*t = Text(data)
	}
	return nil
}

// String returns the decoded text.
func (t Text) String() string { return string(t) }

// SimDetail is the body of POST /api/validate-sim.
//
// validate:"required" rejects the empty string, which is what every falsy
// JSON value decodes to.
type SimDetail struct {
	ServiceNumber Text `json:"service_number" validate:"required"`
	SimNumber     Text `json:"sim_number"     validate:"required"`
	SimStatus     Text `json:"sim_status"     validate:"required"`
}

// CustomerIdentity is the body of POST /api/validate-customer.
type CustomerIdentity struct {
	EmailAddress Text `json:"email_address" validate:"required"`
	DateOfBirth  Text `json:"date_of_birth" validate:"required"`
}

// OtpDetail is the body of POST /api/validate-otp.
type OtpDetail struct {
	Otp Text `json:"otp" validate:"required"`
}
