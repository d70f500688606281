package account

import (
	"testing"

	platformerrors "github.com/soma-satoro/PyReach/internal/platform/errors"
)

func TestNewValidation(t *testing.T) {
	if _, err := New("  ", "", "password123"); err == nil {
		t.Error("blank name accepted")
	} else if platformerrors.CodeOf(err) != platformerrors.CodeAccountNameEmpty {
		t.Errorf("error code = %v", platformerrors.CodeOf(err))
	}

	if _, err := New("Beren", "", "short"); err == nil {
		t.Error("short password accepted")
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	acct, err := New("Beren", "beren@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("new account: %v", err)
	}

	if err := acct.CheckPassword("correct horse battery"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := acct.CheckPassword("wrong"); err == nil {
		t.Error("wrong password accepted")
	}

	if err := acct.SetPassword("a new long password"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := acct.CheckPassword("correct horse battery"); err == nil {
		t.Error("old password still accepted after change")
	}
	if err := acct.CheckPassword("a new long password"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}
