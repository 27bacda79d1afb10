package goLaunch

import (
	"testing"
)

func TestUserBlobRoundTrip(t *testing.T) {
	in := User{
		ID:          "u1",
		Username:    "alice",
		DisplayName: "Alice",
		AvatarURL:   "https://cdn.example.com/a.png",
	}

	data, err := encodeUser(in)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if data[0] != userBlobVersion {
		t.Fatalf("expected version byte %d, got %d", userBlobVersion, data[0])
	}

	out, err := decodeUser(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestUserBlobRejectsTruncated(t *testing.T) {
	if _, err := decodeUser(nil); err == nil {
		t.Fatal("expected error for nil blob")
	}
	if _, err := decodeUser([]byte{userBlobVersion}); err == nil {
		t.Fatal("expected error for version-only blob")
	}
}

func TestUserBlobRejectsUnknownVersion(t *testing.T) {
	data, err := encodeUser(User{ID: "u1"})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	data[0] = 9

	if _, err := decodeUser(data); err == nil {
		t.Fatal("expected error for unknown version byte")
	}
}

func TestUserBlobRejectsGarbageBody(t *testing.T) {
	if _, err := decodeUser([]byte{userBlobVersion, '{', 'x'}); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
