package models

import "testing"

func TestTicketPayloadRoundTrip(t *testing.T) {
	in := &TicketPayload{
		Version:       TicketPayloadVersion,
		BankEncrypted: "ZW5jcnlwdGVkLWJhbms=",
		IfscEncrypted: "ZW5jcnlwdGVkLWlmc2M=",
		RiskScore:     60,
		RiskLevel:     "HIGH",
		RiskFlags:     []string{"Pattern Anomaly: Suspicious Account Number sequence"},
	}

	encoded, err := in.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	out, ok := ParseTicketPayload(encoded)
	if !ok {
		t.Fatal("ParseTicketPayload rejected its own encoding")
	}
	if out.Version != in.Version || out.BankEncrypted != in.BankEncrypted ||
		out.IfscEncrypted != in.IfscEncrypted || out.RiskScore != in.RiskScore ||
		out.RiskLevel != in.RiskLevel || len(out.RiskFlags) != 1 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestParseTicketPayloadLegacyText(t *testing.T) {
	for _, desc := range []string{
		"Bank: 12345678901 | IFSC: SBIN0001234",
		"",
		"{}",
		`{"unrelated":"json"}`,
	} {
		if _, ok := ParseTicketPayload(desc); ok {
			t.Errorf("ParseTicketPayload(%q) should not parse as structured payload", desc)
		}
	}
}

func TestMaskAadhaar(t *testing.T) {
	if got := MaskAadhaar("123412341234"); got != "XXXX-XXXX-1234" {
		t.Errorf("MaskAadhaar = %q", got)
	}
	if got := MaskAadhaar("12"); got != "" {
		t.Errorf("short aadhaar should mask to empty, got %q", got)
	}
}
