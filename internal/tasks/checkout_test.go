package tasks

import (
	"os"
	"testing"
)

func TestCheckout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// No marker means nothing is checked out
	id, ok, err := ReadCheckout(dir)
	if err != nil {
		t.Fatalf("ReadCheckout failed: %v", err)
	}
	if ok || id != 0 {
		t.Errorf("Expected no checkout, got %d (ok=%v)", id, ok)
	}

	if err := WriteCheckout(dir, 5); err != nil {
		t.Fatalf("WriteCheckout failed: %v", err)
	}
	id, ok, err = ReadCheckout(dir)
	if err != nil || !ok || id != 5 {
		t.Errorf("Expected checkout 5, got %d (ok=%v, err=%v)", id, ok, err)
	}

	// Last write wins
	if err := WriteCheckout(dir, 7); err != nil {
		t.Fatal(err)
	}
	if id, _, _ := ReadCheckout(dir); id != 7 {
		t.Errorf("Expected checkout 7, got %d", id)
	}

	data, err := os.ReadFile(CheckoutPath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "7" {
		t.Errorf("Expected marker content %q, got %q", "7", string(data))
	}

	if err := Checkin(dir); err != nil {
		t.Fatalf("Checkin failed: %v", err)
	}
	if _, ok, _ := ReadCheckout(dir); ok {
		t.Error("Expected no checkout after checkin")
	}

	// Checkin without a checkout is not an error
	if err := Checkin(dir); err != nil {
		t.Errorf("Expected second checkin to succeed, got %v", err)
	}
}

func TestReadCheckoutMalformed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for _, content := range []string{"abc", "", "-3"} {
		if err := os.WriteFile(CheckoutPath(dir), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, ok, err := ReadCheckout(dir); err == nil || ok {
			t.Errorf("Expected error for marker %q", content)
		}
	}
}

func TestReadCheckoutTrailingNewline(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(CheckoutPath(dir), []byte("12\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if id, ok, err := ReadCheckout(dir); err != nil || !ok || id != 12 {
		t.Errorf("Expected checkout 12, got %d (ok=%v, err=%v)", id, ok, err)
	}
}
