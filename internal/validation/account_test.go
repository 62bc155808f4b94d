package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/teller/internal/constants"
)

type holderInput struct {
	Holder     string `label:"holder name" validate:"required,max=100"`
	Contact    string `label:"contact" validate:"required,max=32,phone"`
	NationalID string `label:"national ID" validate:"max=20,nationalid"`
	Category   string `label:"category" validate:"required,oneof=Savings Current"`
}

func TestAccountValidatorAccepts(t *testing.T) {
	v := NewAccountValidator()
	in := holderInput{Holder: "Abebe Kebede", Contact: "+251 911-234567", Category: "Savings"}
	if err := v.Struct(in); err != nil {
		t.Fatalf("Struct returned error: %v", err)
	}
	in.NationalID = "AB12345"
	if err := v.Struct(in); err != nil {
		t.Fatalf("Struct returned error with national ID: %v", err)
	}
}

func TestAccountValidatorReportsEveryField(t *testing.T) {
	v := NewAccountValidator()
	err := v.Struct(holderInput{Contact: "call me", NationalID: "AB-12", Category: "Gold"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Struct error = %v, want *ValidationError", err)
	}

	want := map[string]string{
		"holder name": "holder name can't be empty",
		"contact":     "contact must be a phone number (digits, spaces, dashes, optional leading +)",
		"national ID": "national ID must contain only letters and digits",
		"category":    "category must be one of: Savings Current",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("got %d field errors (%v), want %d", len(verr.Fields), verr.Fields, len(want))
	}
	for _, f := range verr.Fields {
		if want[f.Field] != f.Message {
			t.Errorf("field %q message = %q, want %q", f.Field, f.Message, want[f.Field])
		}
	}
}

func TestValidateAmount(t *testing.T) {
	validate := ValidateAmount(2)
	for _, ok := range []string{"1", "0.01", "1,000.50", " 25 "} {
		if err := validate(ok); err != nil {
			t.Errorf("ValidateAmount(%q) returned error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "-5", "abc", "1.001", "12,50"} {
		if err := validate(bad); err == nil {
			t.Errorf("ValidateAmount(%q) accepted invalid input", bad)
		}
	}
}

func TestValidateAmountHonoursScale(t *testing.T) {
	tests := []struct {
		scale int32
		ok    []string
		bad   []string
	}{
		{3, []string{"1.005", "0.001", "1,000.125"}, []string{"1.0005"}},
		{0, []string{"1", "1,250"}, []string{"0.5", "10.01"}},
	}
	for _, tt := range tests {
		validate := ValidateAmount(tt.scale)
		for _, in := range tt.ok {
			if err := validate(in); err != nil {
				t.Errorf("scale %d: ValidateAmount(%q) returned error: %v", tt.scale, in, err)
			}
		}
		for _, in := range tt.bad {
			if err := validate(in); err == nil {
				t.Errorf("scale %d: ValidateAmount(%q) accepted invalid input", tt.scale, in)
			}
		}
	}
}

func TestValidateNationalID(t *testing.T) {
	for _, ok := range []string{"", "  ", "AB12345", "ab12345", strings.Repeat("9", constants.MaxNationalIDLen)} {
		if err := ValidateNationalID(ok); err != nil {
			t.Errorf("ValidateNationalID(%q) returned error: %v", ok, err)
		}
	}
	for _, bad := range []string{"AB-12", "12 34", strings.Repeat("9", constants.MaxNationalIDLen+1)} {
		if err := ValidateNationalID(bad); err == nil {
			t.Errorf("ValidateNationalID(%q) accepted invalid input", bad)
		}
	}
}

func TestValidateAccountNumber(t *testing.T) {
	validate := ValidateAccountNumber("ETH")
	for _, ok := range []string{"ETH1001", "eth1002", " ETH7 "} {
		if err := validate(ok); err != nil {
			t.Errorf("ValidateAccountNumber(%q) returned error: %v", ok, err)
		}
	}
	for _, bad := range []string{"", "ETH", "1001", "ETH10a1", "ABC1001"} {
		if err := validate(bad); err == nil {
			t.Errorf("ValidateAccountNumber(%q) accepted invalid input", bad)
		}
	}
}

func TestValidateHolderAndContact(t *testing.T) {
	if err := ValidateHolderName("  "); err == nil {
		t.Error("ValidateHolderName accepted a blank name")
	}
	if err := ValidateHolderName("Almaz"); err != nil {
		t.Errorf("ValidateHolderName returned error: %v", err)
	}
	if err := ValidateContact("0911234567"); err != nil {
		t.Errorf("ValidateContact returned error: %v", err)
	}
	if err := ValidateContact("12"); err == nil {
		t.Error("ValidateContact accepted a too-short number")
	}
}
