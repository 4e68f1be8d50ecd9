package randomstringgenerator

import (
	"testing"

	"calremind/internal/core/domain/user"
)

func TestActivationTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	activationTokens := make(map[user.ActivationToken]struct{})
	for i := 0; i < 100; i++ {
		activationToken := generator.GenerateActivationToken()
		if string(activationToken) == "" {
			t.Fatal("activationToken must not be empty")
		}
		if _, ok := activationTokens[activationToken]; ok {
			t.Fatalf("activationToken %v already exists (%v)", activationToken, activationTokens)
		}
		activationTokens[activationToken] = struct{}{}
	}
}

func TestSessionTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	sessionTokens := make(map[user.SessionToken]struct{})
	for i := 0; i < 100; i++ {
		sessionToken := generator.GenerateSessionToken()
		if string(sessionToken) == "" {
			t.Fatal("sessionToken must not be empty")
		}
		if _, ok := sessionTokens[sessionToken]; ok {
			t.Fatalf("sessionToken %v already exists (%v)", sessionToken, sessionTokens)
		}
		sessionTokens[sessionToken] = struct{}{}
	}
}

func TestLinkCodeGenerator(t *testing.T) {
	generator := NewGenerator()
	codes := make(map[user.LinkCode]struct{})
	for i := 0; i < 100; i++ {
		code := generator.GenerateLinkCode()
		if string(code) == "" {
			t.Fatal("code must not be empty")
		}
		if _, ok := codes[code]; ok {
			t.Fatalf("code %v already exists (%v)", code, codes)
		}
		codes[code] = struct{}{}
	}
}
