package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGet(t *testing.T) {
	gokeyring.MockInit()

	tests := []struct {
		name   string
		secret Secret
		value  string
	}{
		{"database connection", DBConnection, "postgres://tracker@localhost:5432/quantumlife?sslmode=disable"},
		{"api token", APIToken, "tok_123"},
		{"telegram token", TelegramToken, "123456:ABC-DEF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Set(tt.secret, tt.value); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, err := Get(tt.secret)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("Get() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestSetEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(APIToken, ""); err == nil {
		t.Error("Set(\"\") should return an error")
	}
}

func TestGetNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = Delete(APIToken)

	if _, err := Get(APIToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := Set(DBConnection, "postgres://tracker@localhost/quantumlife"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := Delete(DBConnection); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := Get(DBConnection); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := Delete(DBConnection); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestResolvePrefersEnvironment(t *testing.T) {
	gokeyring.MockInit()
	if err := Set(APIToken, "from-keyring"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := Resolve(APIToken)
	if err != nil || got != "from-keyring" {
		t.Errorf("Resolve() without env = %q, %v; want from-keyring", got, err)
	}

	t.Setenv(APIToken.Env, "from-env")
	got, err = Resolve(APIToken)
	if err != nil || got != "from-env" {
		t.Errorf("Resolve() with env = %q, %v; want from-env", got, err)
	}
}

func TestResolveNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = Delete(TelegramToken)
	t.Setenv(TelegramToken.Env, "")

	if _, err := Resolve(TelegramToken); !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()
	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring, want true")
	}
}

func TestSecretsRegistry(t *testing.T) {
	for name, s := range Secrets {
		if s.User == "" || s.Env == "" {
			t.Errorf("secret %q is missing its keyring user or env var", name)
		}
	}
}
