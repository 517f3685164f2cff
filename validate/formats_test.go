package validate

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{
		"sales@litong.com",
		"first.last@sub.example.co",
	}
	for _, value := range valid {
		if !validEmail(value) {
			t.Fatalf("expected %q to be a valid email", value)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"two@@example.com",
		"a b@example.com",
		"@example.com",
		"user@domain",
		"user@.com",
		"user@domain.",
	}
	for _, value := range invalid {
		if validEmail(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestValidURL(t *testing.T) {
	if !validURL("https://www.litongtech.com/products") {
		t.Fatalf("expected absolute URL to pass")
	}
	for _, value := range []string{"not-a-url", "/relative/path", "www.example.com", ""} {
		if validURL(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"0755-8888-6666",
		"(0755) 8888 6666",
		"13800138000",
	}
	for _, value := range valid {
		if !validPhone(value) {
			t.Fatalf("expected %q to be a valid phone", value)
		}
	}

	invalid := []string{
		"",
		"555-1234",         // too few digits
		"+86 138 0013 8000", // plus sign not allowed
		"phone: 1380013800",
	}
	for _, value := range invalid {
		if validPhone(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestBalancedHTML(t *testing.T) {
	balanced := []string{
		"",
		"plain text",
		"<p>hello</p>",
		"<div><span class=\"x\">nested</span></div>",
		"self closing <br/> ignored <img src=\"a.png\"/>",
	}
	for _, value := range balanced {
		if !balancedHTML(value) {
			t.Fatalf("expected %q to be balanced", value)
		}
	}

	unbalanced := []string{
		"<p>missing close",
		"stray close</p>",
		"<div><p>one close</div>",
	}
	for _, value := range unbalanced {
		if balancedHTML(value) {
			t.Fatalf("expected %q to be unbalanced", value)
		}
	}
}
